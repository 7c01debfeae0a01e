package catalog

import (
	"context"
	"log"
	"sync"
	"time"

	"ramenbar/internal/menu"
)

// Source indicates which dataset a load ended up serving.
type Source string

const (
	SourceStatic    Source = "static"
	SourceWordPress Source = "wordpress"
)

// Config controls the remote source. The remote is consulted only when
// Enabled is true AND BaseURL is set; otherwise every load is static.
type Config struct {
	Enabled  bool
	BaseURL  string
	MenuPath string
	CacheTTL time.Duration
}

const defaultCacheTTL = 5 * time.Minute

// Result is what a load hands to callers: the data plus advisory state
// about where it came from. The fetch error, if any, is masked into
// LastError for diagnostic display; callers never see it as a failure.
type Result struct {
	Data      menu.Data
	Source    Source
	LastError string
}

// Service loads the catalog from the remote source with a time-bounded
// cache, falling back to the bundled static dataset on any failure.
type Service struct {
	cfg    Config
	client *Client
	static menu.Data

	mu       sync.Mutex
	cached   *menu.Data
	cachedAt time.Time
	current  Result
}

func NewService(cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	s := &Service{
		cfg:     cfg,
		static:  menu.StaticData,
		current: Result{Data: menu.StaticData, Source: SourceStatic},
	}
	if cfg.Enabled && cfg.BaseURL != "" {
		s.client = NewClient(cfg.BaseURL, cfg.MenuPath)
	}
	return s
}

// Load returns the catalog. Remote fetches are cached for the configured
// TTL; a fetch failure is logged as a warning and masked by the static
// dataset for that load cycle.
func (s *Service) Load(ctx context.Context) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		s.current = Result{Data: s.static, Source: SourceStatic}
		return s.current
	}

	if s.cached != nil && time.Since(s.cachedAt) < s.cfg.CacheTTL {
		s.current = Result{Data: *s.cached, Source: SourceWordPress}
		return s.current
	}

	data, err := s.client.FetchMenu(ctx)
	if err != nil {
		log.Printf("⚠️ catalog: wordpress fetch failed, using static menu: %v", err)
		s.current = Result{Data: s.static, Source: SourceStatic, LastError: err.Error()}
		return s.current
	}

	s.cached = &data
	s.cachedAt = time.Now()
	s.current = Result{Data: data, Source: SourceWordPress}
	return s.current
}

// Refresh invalidates the cache and reloads. Overlapping refreshes simply
// race; the catalog is read-only to consumers, so the last write wins.
func (s *Service) Refresh(ctx context.Context) Result {
	s.mu.Lock()
	s.cached = nil
	s.cachedAt = time.Time{}
	s.mu.Unlock()

	return s.Load(ctx)
}

// Item looks up an item in the most recently loaded catalog. The cart
// depends on this and never on which source supplied the data.
func (s *Service) Item(id string) (menu.Item, bool) {
	s.mu.Lock()
	data := s.current.Data
	s.mu.Unlock()

	return data.Item(id)
}
