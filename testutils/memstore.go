package testutils

import (
	"context"
	"strings"
	"sync"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/storage"
)

// MemoryPageRepo is an in-memory storage.PageRepository.
type MemoryPageRepo struct {
	mu    sync.Mutex
	pages []domain.Page
}

// NewMemoryPageRepo returns an empty in-memory page repository.
func NewMemoryPageRepo() *MemoryPageRepo {
	return &MemoryPageRepo{}
}

// FindByID implements storage.PageRepository.
func (r *MemoryPageRepo) FindByID(ctx context.Context, pageID string) (*domain.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pages {
		if r.pages[i].PageID == pageID {
			page := r.pages[i]
			return &page, nil
		}
	}
	return nil, storage.ErrNotFound
}

// List implements storage.PageRepository.
func (r *MemoryPageRepo) List(ctx context.Context, filter domain.PageFilter, skip, limit int64) ([]domain.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.matched(filter)
	if skip >= int64(len(matched)) {
		return []domain.Page{}, nil
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

// Count implements storage.PageRepository.
func (r *MemoryPageRepo) Count(ctx context.Context, filter domain.PageFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.matched(filter))), nil
}

// Insert implements storage.PageRepository.
func (r *MemoryPageRepo) Insert(ctx context.Context, page *domain.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.pages {
		if r.pages[i].PageID == page.PageID {
			return storage.ErrDuplicateKey
		}
	}
	r.pages = append(r.pages, *page)
	return nil
}

func (r *MemoryPageRepo) matched(filter domain.PageFilter) []domain.Page {
	matched := make([]domain.Page, 0, len(r.pages))
	for _, page := range r.pages {
		if matchesFilter(page, filter) {
			matched = append(matched, page)
		}
	}
	return matched
}

func matchesFilter(page domain.Page, filter domain.PageFilter) bool {
	if filter.Name != "" && !containsFold(page.PageName, filter.Name) {
		return false
	}
	if filter.Industry != "" && !containsFold(page.Industry, filter.Industry) {
		return false
	}
	if filter.FollowerCountMin != nil && page.FollowerCount < *filter.FollowerCountMin {
		return false
	}
	if filter.FollowerCountMax != nil && page.FollowerCount > *filter.FollowerCountMax {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// MemoryPostRepo is an in-memory storage.PostRepository.
type MemoryPostRepo struct {
	mu    sync.Mutex
	posts []domain.Post
}

// NewMemoryPostRepo returns an empty in-memory post repository.
func NewMemoryPostRepo() *MemoryPostRepo {
	return &MemoryPostRepo{}
}

// ListByPage implements storage.PostRepository.
func (r *MemoryPostRepo) ListByPage(ctx context.Context, pageID string, skip, limit int64) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.Post, 0, len(r.posts))
	for _, post := range r.posts {
		if post.PageID == pageID {
			matched = append(matched, post)
		}
	}
	if skip >= int64(len(matched)) {
		return []domain.Post{}, nil
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountByPage implements storage.PostRepository.
func (r *MemoryPostRepo) CountByPage(ctx context.Context, pageID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, post := range r.posts {
		if post.PageID == pageID {
			total++
		}
	}
	return total, nil
}

// InsertMany implements storage.PostRepository.
func (r *MemoryPostRepo) InsertMany(ctx context.Context, posts []domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append(r.posts, posts...)
	return nil
}

// MemoryEmployeeRepo is an in-memory storage.EmployeeRepository.
type MemoryEmployeeRepo struct {
	mu        sync.Mutex
	employees []domain.Employee
}

// NewMemoryEmployeeRepo returns an empty in-memory employee repository.
func NewMemoryEmployeeRepo() *MemoryEmployeeRepo {
	return &MemoryEmployeeRepo{}
}

// ListByPage implements storage.EmployeeRepository.
func (r *MemoryEmployeeRepo) ListByPage(ctx context.Context, pageID string, skip, limit int64) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]domain.Employee, 0, len(r.employees))
	for _, employee := range r.employees {
		if employee.PageID == pageID {
			matched = append(matched, employee)
		}
	}
	if skip >= int64(len(matched)) {
		return []domain.Employee{}, nil
	}
	matched = matched[skip:]
	if limit < int64(len(matched)) {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountByPage implements storage.EmployeeRepository.
func (r *MemoryEmployeeRepo) CountByPage(ctx context.Context, pageID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int64
	for _, employee := range r.employees {
		if employee.PageID == pageID {
			total++
		}
	}
	return total, nil
}

// InsertMany implements storage.EmployeeRepository.
func (r *MemoryEmployeeRepo) InsertMany(ctx context.Context, employees []domain.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees = append(r.employees, employees...)
	return nil
}
