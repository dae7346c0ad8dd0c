// Package leaderboard scrapes project names from the public leaderboard page.
package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/antekerwin/jeki/internal/adapters/outbound/cache"
	"github.com/antekerwin/jeki/internal/adapters/outbound/metrics"
	"github.com/antekerwin/jeki/internal/domain"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	cacheKey     = "projects"
	maxBodyBytes = 5 << 20
	userAgent    = "jeki/1.0 (+leaderboard)"
)

// Fetch outcomes reported to metrics.
const (
	OutcomeOK       = "ok"
	OutcomeCached   = "cached"
	OutcomeFallback = "fallback"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrNoProjects       = errors.New("no projects found")
)

// projectPattern lists the tickers recognised on the page. Alternation is
// leftmost-first, so order matters for overlapping names.
var projectPattern = regexp.MustCompile(`MOMENTUM|LIMITLESS|POLYMARKET|SENTIENT|MONAD|OPENSEA|BASE|ALLORA|YIELDBASIS|CYSIC|BILLIONS|MET|WALLCHAIN|IRYS|RECALL|KITE|MASK|EVERLYN|DZ|TALUS|BERACHAIN|STORY`)

var categories = map[string]string{
	"LIMITLESS":  "AI Tools",
	"SENTIENT":   "AI Agents",
	"POLYMARKET": "Prediction Markets",
	"MONAD":      "Layer 1",
	"BASE":       "Layer 2",
	"OPENSEA":    "NFT Marketplace",
}

const defaultCategory = "DeFi"

var displayOverrides = map[string]string{"MASK": "MetaMask"}

// Fetcher implements domain.LeaderboardSource. It never fails: any error
// yields domain.FallbackProjects.
type Fetcher struct {
	client  *http.Client
	url     string
	limit   int
	breaker *gobreaker.CircuitBreaker
	cache   *cache.Store[[]domain.Project]
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New builds a fetcher from config. m may be nil.
func New(cfg domain.LeaderboardConfig, logger *zap.Logger, m *metrics.Metrics) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := cfg.MaxProjects
	if limit <= 0 {
		limit = 20
	}
	return &Fetcher{
		client:  &http.Client{Timeout: cfg.Timeout},
		url:     cfg.URL,
		limit:   limit,
		breaker: newBreaker("leaderboard"),
		cache:   cache.New[[]domain.Project](cfg.CacheTTL),
		logger:  logger,
		metrics: m,
	}
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	st := gobreaker.Settings{Name: name}
	st.Interval = 60 * time.Second
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		return counts.ConsecutiveFailures >= 3
	}
	return gobreaker.NewCircuitBreaker(st)
}

// Projects returns the cached list, a fresh scrape, or the fallback list.
func (f *Fetcher) Projects(ctx context.Context) []domain.Project {
	if projects, ok := f.cache.Load(cacheKey); ok {
		f.metrics.RecordCacheHit()
		f.metrics.RecordLeaderboardFetch(OutcomeCached)
		return clone(projects)
	}
	f.metrics.RecordCacheMiss()

	res, err := f.breaker.Execute(func() (interface{}, error) {
		return f.fetch(ctx)
	})
	if err != nil {
		f.logger.Warn("leaderboard unavailable, using fallback",
			zap.String("url", f.url),
			zap.Error(err))
		f.metrics.RecordLeaderboardFetch(OutcomeFallback)
		return domain.FallbackProjects()
	}

	projects := res.([]domain.Project)
	f.cache.Save(cacheKey, projects)
	f.metrics.RecordLeaderboardFetch(OutcomeOK)
	f.logger.Debug("leaderboard fetched", zap.Int("projects", len(projects)))
	return clone(projects)
}

func (f *Fetcher) fetch(ctx context.Context) ([]domain.Project, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	projects := Parse(string(body), f.limit)
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}
	return projects, nil
}

// Parse extracts distinct project names in first-seen order, keeping at most
// limit of them.
func Parse(html string, limit int) []domain.Project {
	var projects []domain.Project
	seen := make(map[string]bool)
	for _, match := range projectPattern.FindAllString(html, -1) {
		if len(projects) >= limit {
			break
		}
		if seen[match] {
			continue
		}
		seen[match] = true
		projects = append(projects, domain.Project{
			Name:      DisplayName(match),
			Mindshare: "High",
			Category:  CategoryFor(match),
		})
	}
	return projects
}

// DisplayName title-cases a ticker, with a few fixed overrides.
func DisplayName(ticker string) string {
	if name, ok := displayOverrides[ticker]; ok {
		return name
	}
	// Casers are stateful; one per call keeps Parse goroutine-safe.
	return cases.Title(language.Und).String(ticker)
}

// CategoryFor returns the category of a ticker, DeFi when unknown.
func CategoryFor(ticker string) string {
	if c, ok := categories[ticker]; ok {
		return c
	}
	return defaultCategory
}

func clone(p []domain.Project) []domain.Project {
	return append([]domain.Project(nil), p...)
}
