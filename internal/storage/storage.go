// Package storage persists scraped records in a document-collection store.
// The rest of the application depends only on the repository interfaces;
// the mongo implementation lives behind them.
package storage

import (
	"context"
	"errors"

	"github.com/jonesrussell/pageinsights/internal/domain"
)

// Common errors returned by repositories.
var (
	// ErrNotFound is returned when no document matches the lookup.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when an insert violates key uniqueness.
	ErrDuplicateKey = errors.New("duplicate key")
)

// PageRepository stores entity page records keyed by page_id.
type PageRepository interface {
	// FindByID returns the page for the key, or ErrNotFound.
	FindByID(ctx context.Context, pageID string) (*domain.Page, error)
	// List returns one offset page of records matching the filter.
	List(ctx context.Context, filter domain.PageFilter, skip, limit int64) ([]domain.Page, error)
	// Count returns the number of records matching the filter.
	Count(ctx context.Context, filter domain.PageFilter) (int64, error)
	// Insert stores a new page record. ErrDuplicateKey when the key exists.
	Insert(ctx context.Context, page *domain.Page) error
}

// PostRepository stores post batches owned by an entity page.
type PostRepository interface {
	ListByPage(ctx context.Context, pageID string, skip, limit int64) ([]domain.Post, error)
	CountByPage(ctx context.Context, pageID string) (int64, error)
	InsertMany(ctx context.Context, posts []domain.Post) error
}

// EmployeeRepository stores employee batches owned by an entity page.
type EmployeeRepository interface {
	ListByPage(ctx context.Context, pageID string, skip, limit int64) ([]domain.Employee, error)
	CountByPage(ctx context.Context, pageID string) (int64, error)
	InsertMany(ctx context.Context, employees []domain.Employee) error
}
