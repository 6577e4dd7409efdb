package scraper

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/render"
)

// Enumeration caps per fetch.
const (
	DefaultMaxPosts     = 20
	DefaultMaxEmployees = 50
)

// errEmptyCard marks a card with nothing extractable on it.
var errEmptyCard = errors.New("card has no extractable fields")

// Section hints used for best-effort navigation.
const (
	sectionAbout  = "about"
	sectionPosts  = "posts"
	sectionPeople = "people"
)

// Config holds scraper settings.
type Config struct {
	BaseURL      string `mapstructure:"base_url" yaml:"base_url"`
	MaxPosts     int    `mapstructure:"max_posts" yaml:"max_posts"`
	MaxEmployees int    `mapstructure:"max_employees" yaml:"max_employees"`
}

// FetchResult bundles everything one fetch produced.
type FetchResult struct {
	Page      *domain.Page
	Posts     []domain.Post
	Employees []domain.Employee
}

// Fetcher is the live-fetch entry point consumed by the cache gateway.
type Fetcher interface {
	FetchAll(ctx context.Context, pageID string) (*FetchResult, error)
}

// Scraper sequences navigation and record building over one render session
// per fetch. Steps within a fetch are strictly sequential because they
// share the session's document context; independent fetches run side by
// side on their own sessions.
type Scraper struct {
	sessions render.SessionFactory
	nav      *render.Navigator
	sel      Selectors
	cfg      Config
	log      logger.Interface
	now      func() time.Time
}

// New creates a scraper.
func New(sessions render.SessionFactory, nav *render.Navigator, cfg Config, log logger.Interface) *Scraper {
	if cfg.MaxPosts <= 0 {
		cfg.MaxPosts = DefaultMaxPosts
	}
	if cfg.MaxEmployees <= 0 {
		cfg.MaxEmployees = DefaultMaxEmployees
	}
	return &Scraper{
		sessions: sessions,
		nav:      nav,
		sel:      DefaultSelectors(),
		cfg:      cfg,
		log:      log.WithComponent("scraper"),
		now:      time.Now,
	}
}

// FetchAll produces one page record plus bounded post and employee batches
// for the given key. Only session acquisition fails hard; every failure
// below that is contained: navigation misses leave the pipeline extracting
// from whatever view is loaded, and card or field misses are skipped.
func (s *Scraper) FetchAll(ctx context.Context, pageID string) (*FetchResult, error) {
	session, err := s.sessions.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire render session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			s.log.Warn("Failed to close render session", "page_id", pageID, "error", closeErr)
		}
	}()

	pageURL := s.pageURL(pageID)
	log := s.log.WithPageID(pageID)

	if !s.nav.Open(ctx, session, pageURL) {
		log.Warn("Main view did not load cleanly, extracting from partial state", "url", pageURL)
	}
	s.nav.WaitFor(ctx, session, s.sel.PageName.Selector)

	page := s.buildPage(session, pageID, pageURL)

	if s.nav.GoToSection(ctx, session, sectionAbout) {
		s.enrichAbout(session, page)
	}

	posts := s.fetchPosts(ctx, session, pageID)
	employees := s.fetchEmployees(ctx, session, pageID)

	log.Info("Fetch complete",
		"page_name", page.PageName,
		"posts", len(posts),
		"employees", len(employees),
	)

	return &FetchResult{
		Page:      page,
		Posts:     posts,
		Employees: employees,
	}, nil
}

// fetchPosts navigates to the content feed, scrolls to trigger lazy
// loading and builds up to the post cap. Malformed cards are skipped.
func (s *Scraper) fetchPosts(ctx context.Context, session render.Session, pageID string) []domain.Post {
	s.nav.GoToSection(ctx, session, sectionPosts)
	s.nav.ScrollFeed(ctx, session)

	cards, err := session.QuerySelectorAll(s.sel.PostCard)
	if err != nil {
		s.log.Debug("Post card enumeration failed", "page_id", pageID, "error", err)
		return nil
	}
	if len(cards) > s.cfg.MaxPosts {
		cards = cards[:s.cfg.MaxPosts]
	}

	fetchedAt := s.now()
	posts := make([]domain.Post, 0, len(cards))
	for idx, card := range cards {
		post, buildErr := s.buildPost(card, pageID, idx, fetchedAt)
		if buildErr != nil {
			s.log.Debug("Skipping post card", "page_id", pageID, "index", idx, "error", buildErr)
			continue
		}
		posts = append(posts, *post)
	}
	return posts
}

// fetchEmployees navigates to the people view and builds up to the
// employee cap, dropping cards without a resolvable name. When the people
// view is unreachable there is nothing to enumerate.
func (s *Scraper) fetchEmployees(ctx context.Context, session render.Session, pageID string) []domain.Employee {
	if !s.nav.GoToSection(ctx, session, sectionPeople) {
		return nil
	}

	cards, err := session.QuerySelectorAll(s.sel.EmployeeCard)
	if err != nil {
		s.log.Debug("Employee card enumeration failed", "page_id", pageID, "error", err)
		return nil
	}
	if len(cards) > s.cfg.MaxEmployees {
		cards = cards[:s.cfg.MaxEmployees]
	}

	employees := make([]domain.Employee, 0, len(cards))
	for idx, card := range cards {
		employee, ok := s.buildEmployee(card, pageID, idx)
		if !ok {
			s.log.Debug("Skipping employee card without a name", "page_id", pageID, "index", idx)
			continue
		}
		employees = append(employees, *employee)
	}
	return employees
}

// pageURL builds the canonical main view URL for a key.
func (s *Scraper) pageURL(pageID string) string {
	return fmt.Sprintf("%s/company/%s/", strings.TrimRight(s.cfg.BaseURL, "/"), pageID)
}
