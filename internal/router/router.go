package router

import (
	"time"

	"ramenbar/internal/cart"
	"ramenbar/internal/catalog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with CORS, a health check, and the menu and
// cart routes mounted.
func New(catalogHandler *catalog.Handler, cartHandler *cart.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	catalogHandler.RegisterRoutes(r)
	cartHandler.RegisterRoutes(r)

	return r
}
