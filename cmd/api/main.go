package main

import (
	"context"
	"log"
	"os"

	"ramenbar/internal/cart"
	"ramenbar/internal/catalog"
	"ramenbar/internal/config"
	"ramenbar/internal/db"
	"ramenbar/internal/router"
	"ramenbar/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx := context.Background()

	// ───────────────────────── CART STORE ─────────────────────────
	var store cart.Store = cart.NewMemoryStore()
	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Postgres connection failed: %v", err)
		}
		defer pool.Close()

		pg := cart.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("❌ Cart store migration failed: %v", err)
		}
		store = pg
		log.Println("✅ Cart snapshots persisted to Postgres")
	} else {
		log.Println("⚠️ DATABASE_URL not set, cart snapshots kept in memory")
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var uploader catalog.Uploader
	r2opts := storage.Options{
		Endpoint:  cfg.R2.Endpoint,
		AccessKey: cfg.R2.AccessKey,
		SecretKey: cfg.R2.SecretKey,
		Bucket:    cfg.R2.Bucket,
		BaseURL:   cfg.R2.BaseURL,
	}
	if r2opts.Configured() {
		r2, err := storage.NewR2Client(ctx, r2opts)
		if err != nil {
			log.Fatalf("❌ R2 init failed: %v", err)
		}
		uploader = r2
	} else {
		log.Println("⚠️ R2 not configured, image uploads disabled")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalog.Config{
		Enabled:  cfg.WordPress.Enabled,
		BaseURL:  cfg.WordPress.BaseURL,
		MenuPath: cfg.WordPress.MenuPath,
		CacheTTL: cfg.WordPress.CacheTTL,
	})
	catalogService.Load(ctx)

	cartService := cart.NewService(ctx, catalogService, store)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.New(
		catalog.NewHandler(catalogService, uploader),
		cart.NewHandler(cartService),
	)

	log.Printf("🍜 ramenbar listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
