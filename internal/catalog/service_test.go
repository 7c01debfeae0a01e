package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const remoteMenu = `{
	"categories": [
		{"id": "bowls", "name": "Bowls", "description": "From the kitchen"}
	],
	"items": [
		{
			"id": "wp-tonkotsu",
			"name": "Tonkotsu",
			"description": "From WordPress",
			"image": "https://cdn.example.com/tonkotsu.jpg",
			"base_price": 16.5,
			"category_id": "bowls",
			"dietary_badges": ["S"],
			"option_groups": [
				{
					"id": "toppings",
					"name": "Toppings",
					"type": "multiple",
					"required": false,
					"min_select": 0,
					"max_select": 6,
					"allow_quantity": true,
					"options": [
						{"id": "egg", "label": "Egg", "price_delta": 2, "max_quantity": 3}
					]
				}
			]
		}
	]
}`

func newRemote(t *testing.T, hits *int32, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if r.URL.Path != DefaultMenuPath {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestLoadStaticWhenDisabled(t *testing.T) {
	s := NewService(Config{Enabled: false})

	res := s.Load(context.Background())
	if res.Source != SourceStatic {
		t.Fatalf("expected static source, got %s", res.Source)
	}
	if len(res.Data.Items) == 0 {
		t.Fatalf("static catalog empty")
	}
}

func TestLoadStaticWithoutBaseURL(t *testing.T) {
	// enabled flag alone must not trigger remote fetches
	s := NewService(Config{Enabled: true, BaseURL: ""})

	if res := s.Load(context.Background()); res.Source != SourceStatic {
		t.Fatalf("expected static source, got %s", res.Source)
	}
}

func TestLoadFromWordPress(t *testing.T) {
	var hits int32
	srv := newRemote(t, &hits, http.StatusOK, remoteMenu)
	defer srv.Close()

	s := NewService(Config{Enabled: true, BaseURL: srv.URL})
	res := s.Load(context.Background())

	if res.Source != SourceWordPress {
		t.Fatalf("expected wordpress source, got %s (err %s)", res.Source, res.LastError)
	}
	if res.LastError != "" {
		t.Fatalf("unexpected last error: %s", res.LastError)
	}

	item, ok := res.Data.Item("wp-tonkotsu")
	if !ok {
		t.Fatalf("remote item missing")
	}
	if item.BasePrice != 16.5 || item.CategoryID != "bowls" {
		t.Fatalf("snake_case fields not normalized: %+v", item)
	}
	group, ok := item.Group("toppings")
	if !ok || !group.AllowQuantity || group.MaxSelect != 6 {
		t.Fatalf("group fields not normalized: %+v", group)
	}
	opt, _ := group.Option("egg")
	if opt.PriceDelta != 2 || opt.MaxQuantity != 3 {
		t.Fatalf("option fields not normalized: %+v", opt)
	}
}

func TestLoadUsesCacheWithinTTL(t *testing.T) {
	var hits int32
	srv := newRemote(t, &hits, http.StatusOK, remoteMenu)
	defer srv.Close()

	s := NewService(Config{Enabled: true, BaseURL: srv.URL, CacheTTL: time.Hour})
	s.Load(context.Background())
	s.Load(context.Background())
	s.Load(context.Background())

	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("expected 1 remote hit, got %d", got)
	}
}

func TestRefreshBypassesCache(t *testing.T) {
	var hits int32
	srv := newRemote(t, &hits, http.StatusOK, remoteMenu)
	defer srv.Close()

	s := NewService(Config{Enabled: true, BaseURL: srv.URL, CacheTTL: time.Hour})
	s.Load(context.Background())
	s.Refresh(context.Background())

	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Fatalf("expected refresh to refetch, got %d hits", got)
	}
}

func TestFetchFailureFallsBackToStatic(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		var hits int32
		srv := newRemote(t, &hits, http.StatusInternalServerError, "boom")
		defer srv.Close()

		s := NewService(Config{Enabled: true, BaseURL: srv.URL})
		res := s.Load(context.Background())

		if res.Source != SourceStatic {
			t.Fatalf("expected static fallback, got %s", res.Source)
		}
		if res.LastError == "" {
			t.Fatalf("expected last error to be recorded")
		}
		if _, ok := res.Data.Item("tonkotsu"); !ok {
			t.Fatalf("static data not served on fallback")
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		var hits int32
		srv := newRemote(t, &hits, http.StatusOK, "{not json")
		defer srv.Close()

		s := NewService(Config{Enabled: true, BaseURL: srv.URL})
		if res := s.Load(context.Background()); res.Source != SourceStatic || res.LastError == "" {
			t.Fatalf("malformed payload not masked: %+v", res.Source)
		}
	})

	t.Run("unreachable host", func(t *testing.T) {
		s := NewService(Config{Enabled: true, BaseURL: "http://127.0.0.1:1"})
		if res := s.Load(context.Background()); res.Source != SourceStatic || res.LastError == "" {
			t.Fatalf("network failure not masked")
		}
	})
}

func TestItemTracksLastLoad(t *testing.T) {
	var hits int32
	srv := newRemote(t, &hits, http.StatusOK, remoteMenu)
	defer srv.Close()

	s := NewService(Config{Enabled: true, BaseURL: srv.URL})

	// before any load, static data answers lookups
	if _, ok := s.Item("tonkotsu"); !ok {
		t.Fatalf("static lookup failed before first load")
	}

	s.Load(context.Background())
	if _, ok := s.Item("wp-tonkotsu"); !ok {
		t.Fatalf("lookup did not follow the remote load")
	}
}

func TestValidateImageExtension(t *testing.T) {
	if err := ValidateImageExtension("tonkotsu.jpg"); err != nil {
		t.Fatalf("jpg rejected: %v", err)
	}
	if err := ValidateImageExtension("menu.pdf"); err == nil {
		t.Fatalf("pdf accepted")
	}
	if err := ValidateImageExtension("noext"); err == nil {
		t.Fatalf("missing extension accepted")
	}
}
