// Package service implements the cache gateway: the read-through cache
// between the HTTP surface and the scraping pipeline, plus filtered,
// paginated listings over stored records.
package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/logger"
	"github.com/jonesrussell/pageinsights/internal/scraper"
	"github.com/jonesrussell/pageinsights/internal/storage"
)

// ErrPageNotFound is returned when a requested key has no stored page.
var ErrPageNotFound = errors.New("page not found")

// followerNote accompanies every follower summary: the property does not
// expose the full follower list without authentication.
const followerNote = "Full follower list requires the provider API or authentication"

// InsightsService is the cache gateway. All collaborators are injected at
// construction; the service holds no global state beyond the in-process
// fetch de-duplication group.
type InsightsService struct {
	pages     storage.PageRepository
	posts     storage.PostRepository
	employees storage.EmployeeRepository
	fetcher   scraper.Fetcher
	log       logger.Interface

	// fetches collapses concurrent misses for the same key into one
	// live fetch; the store's unique key index backstops this across
	// processes.
	fetches singleflight.Group
}

// New creates the cache gateway.
func New(
	pages storage.PageRepository,
	posts storage.PostRepository,
	employees storage.EmployeeRepository,
	fetcher scraper.Fetcher,
	log logger.Interface,
) *InsightsService {
	return &InsightsService{
		pages:     pages,
		posts:     posts,
		employees: employees,
		fetcher:   fetcher,
		log:       log.WithComponent("service"),
	}
}

// GetPage is the read-through path: a stored page is returned as-is, a
// miss triggers one live fetch whose results are persisted before the page
// is returned. The cache is write-once per key; this path never re-fetches
// an already-stored key.
func (s *InsightsService) GetPage(ctx context.Context, pageID string) (*domain.Page, error) {
	page, err := s.pages.FindByID(ctx, pageID)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	result, fetchErr, shared := s.fetches.Do(pageID, func() (any, error) {
		// The fetch outlives the triggering request. A caller disconnect
		// must not abort the pipeline mid-write: with write-once keys, a
		// partially extracted record would be served forever. Joined
		// callers share this one execution, so it cannot be tied to any
		// single caller's context either.
		return s.fetchAndPersist(context.WithoutCancel(ctx), pageID)
	})
	if fetchErr != nil {
		return nil, fetchErr
	}
	if shared {
		s.log.Debug("Joined in-flight fetch", "page_id", pageID)
	}
	return result.(*domain.Page), nil
}

// fetchAndPersist runs the fetch orchestrator for a cache miss and writes
// the whole result through to the store. Post and employee batches are
// skipped when empty; nothing is ever persisted twice for one fetch.
func (s *InsightsService) fetchAndPersist(ctx context.Context, pageID string) (*domain.Page, error) {
	result, err := s.fetcher.FetchAll(ctx, pageID)
	if err != nil {
		s.log.Error("Fetch failed", "page_id", pageID, "error", err)
		return nil, fmt.Errorf("fetch page %q: %w", pageID, err)
	}

	if insertErr := s.pages.Insert(ctx, result.Page); insertErr != nil {
		if errors.Is(insertErr, storage.ErrDuplicateKey) {
			// Another writer won the race; serve its record.
			s.log.Warn("Concurrent insert for key, serving stored record", "page_id", pageID)
			return s.pages.FindByID(ctx, pageID)
		}
		return nil, insertErr
	}

	if len(result.Posts) > 0 {
		if insertErr := s.posts.InsertMany(ctx, result.Posts); insertErr != nil {
			return nil, insertErr
		}
	}
	if len(result.Employees) > 0 {
		if insertErr := s.employees.InsertMany(ctx, result.Employees); insertErr != nil {
			return nil, insertErr
		}
	}

	s.log.Info("Persisted fetch result",
		"page_id", pageID,
		"posts", len(result.Posts),
		"employees", len(result.Employees),
	)
	return result.Page, nil
}

// ListPages returns one offset page of stored pages matching the filter.
// Total is counted independently of the page fetch.
func (s *InsightsService) ListPages(ctx context.Context, filter domain.PageFilter, page, pageSize int) (*domain.Paged[domain.Page], error) {
	total, err := s.pages.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.pages.List(ctx, filter, offset(page, pageSize), int64(pageSize))
	if err != nil {
		return nil, err
	}

	return domain.NewPaged(items, total, page, pageSize), nil
}

// ListPosts returns one offset page of posts for a stored key, or
// ErrPageNotFound when the owning page does not exist.
func (s *InsightsService) ListPosts(ctx context.Context, pageID string, page, pageSize int) (*domain.Paged[domain.Post], error) {
	if err := s.requirePage(ctx, pageID); err != nil {
		return nil, err
	}

	total, err := s.posts.CountByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	items, err := s.posts.ListByPage(ctx, pageID, offset(page, pageSize), int64(pageSize))
	if err != nil {
		return nil, err
	}

	return domain.NewPaged(items, total, page, pageSize), nil
}

// ListEmployees returns one offset page of employees for a stored key, or
// ErrPageNotFound when the owning page does not exist.
func (s *InsightsService) ListEmployees(ctx context.Context, pageID string, page, pageSize int) (*domain.Paged[domain.Employee], error) {
	if err := s.requirePage(ctx, pageID); err != nil {
		return nil, err
	}

	total, err := s.employees.CountByPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	items, err := s.employees.ListByPage(ctx, pageID, offset(page, pageSize), int64(pageSize))
	if err != nil {
		return nil, err
	}

	return domain.NewPaged(items, total, page, pageSize), nil
}

// FollowerSummary returns the follower count view of a stored page, or
// ErrPageNotFound.
func (s *InsightsService) FollowerSummary(ctx context.Context, pageID string) (*domain.FollowerSummary, error) {
	page, err := s.pages.FindByID(ctx, pageID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.FollowerSummary{
		PageID:        pageID,
		FollowerCount: page.FollowerCount,
		Note:          followerNote,
	}, nil
}

// requirePage maps a missing parent page to ErrPageNotFound.
func (s *InsightsService) requirePage(ctx context.Context, pageID string) error {
	_, err := s.pages.FindByID(ctx, pageID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrPageNotFound
	}
	return err
}

// offset computes the skip for 1-based offset pagination.
func offset(page, pageSize int) int64 {
	return int64(page-1) * int64(pageSize)
}
