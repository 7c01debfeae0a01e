package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ramenbar/internal/cart"
	"ramenbar/internal/catalog"

	"github.com/gin-gonic/gin"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogService := catalog.NewService(catalog.Config{})
	cartService := cart.NewService(context.Background(), catalogService, cart.NewMemoryStore())

	return New(
		catalog.NewHandler(catalogService, nil),
		cart.NewHandler(cartService),
	)
}

func TestHealthCheck(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestMenuRouteMounted(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"source":"static"`) {
		t.Fatalf("menu response missing source: %s", w.Body.String())
	}
}

func TestImageUploadWithoutStorage(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/menu/items/tonkotsu/image", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without storage, got %d", w.Code)
	}
}

func TestCartRouteMounted(t *testing.T) {
	r := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"item_count":0`) {
		t.Fatalf("empty cart view wrong: %s", w.Body.String())
	}
}
