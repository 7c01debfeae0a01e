package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Uploader stores a menu item image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader) (string, error)
}

type Handler struct {
	service *Service
	storage Uploader // nil when object storage is not configured
}

func NewHandler(service *Service, storage Uploader) *Handler {
	return &Handler{service: service, storage: storage}
}

// RegisterRoutes mounts the menu endpoints.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	m := r.Group("/menu")
	{
		m.GET("", h.GetMenu)
		m.POST("/refresh", h.Refresh)
		m.GET("/items/:id", h.GetItem)
		m.POST("/items/:id/image", h.UploadImage)
	}
}

// --------------------------------------------------
// Full catalog, with source diagnostics
// --------------------------------------------------
func (h *Handler) GetMenu(c *gin.Context) {
	res := h.service.Load(c.Request.Context())

	resp := gin.H{
		"source":     res.Source,
		"categories": res.Data.Categories,
		"items":      res.Data.Items,
	}
	if res.LastError != "" {
		resp["last_error"] = res.LastError
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// Invalidate cache and refetch
// --------------------------------------------------
func (h *Handler) Refresh(c *gin.Context) {
	res := h.service.Refresh(c.Request.Context())

	resp := gin.H{"source": res.Source, "items": len(res.Data.Items)}
	if res.LastError != "" {
		resp["last_error"] = res.LastError
	}
	c.JSON(http.StatusOK, resp)
}

// --------------------------------------------------
// Single item lookup
// --------------------------------------------------
func (h *Handler) GetItem(c *gin.Context) {
	item, ok := h.service.Item(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// --------------------------------------------------
// Upload item image to object storage
// --------------------------------------------------
func (h *Handler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "object storage not configured"})
		return
	}

	itemID := c.Param("id")
	if _, ok := h.service.Item(itemID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := fmt.Sprintf("menu-items/%s/%s%s", itemID, uuid.New().String(), ext)

	url, err := h.storage.Upload(c.Request.Context(), key, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"object_key": key,
		"url":        url,
	})
}
