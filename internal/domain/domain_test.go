package domain_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/pageinsights/internal/domain"
)

func TestNewPageDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	page := domain.NewPage("globex", "https://example.com/company/globex/", now)

	assert.Equal(t, "globex", page.PageID)
	assert.Equal(t, "https://example.com/company/globex/", page.PageURL)
	assert.NotNil(t, page.Specialties)
	assert.Empty(t, page.Specialties)
	assert.Equal(t, now, page.ScrapedAt)
	assert.Equal(t, now, page.UpdatedAt)
	assert.Zero(t, page.FollowerCount)
}

func TestNewPostIdentity(t *testing.T) {
	t.Parallel()

	fetchedAt := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	post := domain.NewPost("globex", 3, fetchedAt)

	assert.Equal(t, fmt.Sprintf("globex_post_3_%d", fetchedAt.Unix()), post.PostID)
	assert.Equal(t, "globex", post.PageID)
	assert.NotNil(t, post.MediaURLs)

	// A later fetch of the same ordinal yields a distinct identity.
	later := domain.NewPost("globex", 3, fetchedAt.Add(time.Hour))
	assert.NotEqual(t, post.PostID, later.PostID)
}

func TestNewEmployeeIdentity(t *testing.T) {
	t.Parallel()

	employee := domain.NewEmployee("globex", 7)
	assert.Equal(t, "globex_user_7", employee.UserID)
	assert.Equal(t, "globex", employee.PageID)
}

func TestCapContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		wantLen int
	}{
		{name: "short text untouched", text: "hello", wantLen: 5},
		{name: "exactly at cap", text: strings.Repeat("a", 500), wantLen: 500},
		{name: "over cap truncated", text: strings.Repeat("a", 501), wantLen: 500},
		{name: "multibyte runes counted as runes", text: strings.Repeat("é", 600), wantLen: 500},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, []rune(domain.CapContent(tt.text)), tt.wantLen)
		})
	}
}

func TestNewPaged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		total          int64
		page           int
		pageSize       int
		wantTotalPages int
	}{
		{name: "even division", total: 20, page: 1, pageSize: 10, wantTotalPages: 2},
		{name: "remainder rounds up", total: 31, page: 1, pageSize: 10, wantTotalPages: 4},
		{name: "single partial page", total: 3, page: 1, pageSize: 10, wantTotalPages: 1},
		{name: "empty result", total: 0, page: 1, pageSize: 10, wantTotalPages: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := domain.NewPaged([]string{}, tt.total, tt.page, tt.pageSize)
			assert.Equal(t, tt.wantTotalPages, result.TotalPages)
			assert.Equal(t, tt.total, result.Total)
			assert.Equal(t, tt.page, result.Page)
			assert.Equal(t, tt.pageSize, result.PageSize)
		})
	}

	t.Run("nil items normalized", func(t *testing.T) {
		t.Parallel()

		result := domain.NewPaged[string](nil, 0, 1, 10)
		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
	})
}
