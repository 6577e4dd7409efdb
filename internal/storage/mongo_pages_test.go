package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jonesrussell/pageinsights/internal/domain"
)

func TestPageDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	scraped := time.Date(2026, 8, 27, 10, 30, 0, 123456789, time.UTC)
	page := domain.NewPage("globex", "https://example.com/company/globex/", scraped)
	page.PageName = "Globex Corp"
	page.FollowerCount = 12345
	page.Specialties = []string{"Energy", "Logistics"}

	doc := newPageDocument(page)
	assert.Equal(t, "2026-08-27T10:30:00.123456789Z", doc.ScrapedAt)
	assert.Equal(t, doc.ScrapedAt, doc.UpdatedAt)

	got := doc.toDomain()
	assert.Equal(t, *page, got)
}

func TestPageDocumentTimestampsAsText(t *testing.T) {
	t.Parallel()

	// The domain time fields are excluded from the stored shape; only the
	// RFC 3339 text fields are marshalled.
	now := time.Now().UTC()
	doc := newPageDocument(domain.NewPage("globex", "https://example.com/company/globex/", now))

	raw, err := bson.Marshal(doc)
	require.NoError(t, err)

	var fields bson.M
	require.NoError(t, bson.Unmarshal(raw, &fields))

	scraped, ok := fields["scraped_at"].(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339Nano, scraped)
	assert.NoError(t, err)
}

func TestPageDocumentBadTimestamps(t *testing.T) {
	t.Parallel()

	doc := pageDocument{
		Page:      domain.Page{PageID: "globex", PageURL: "https://example.com/company/globex/"},
		ScrapedAt: "not-a-timestamp",
		UpdatedAt: "",
	}

	got := doc.toDomain()
	assert.True(t, got.ScrapedAt.IsZero())
	assert.True(t, got.UpdatedAt.IsZero())
	assert.NotNil(t, got.Specialties)
}

func TestPageFilterQuery(t *testing.T) {
	t.Parallel()

	t.Run("empty filter matches everything", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, bson.M{}, pageFilterQuery(domain.PageFilter{}))
	})

	t.Run("name and industry as case-insensitive regex", func(t *testing.T) {
		t.Parallel()

		query := pageFilterQuery(domain.PageFilter{Name: "globex", Industry: "software"})
		assert.Equal(t, primitive.Regex{Pattern: "globex", Options: "i"}, query["page_name"])
		assert.Equal(t, primitive.Regex{Pattern: "software", Options: "i"}, query["industry"])
	})

	t.Run("follower bounds inclusive", func(t *testing.T) {
		t.Parallel()

		min, max := 100, 5000
		query := pageFilterQuery(domain.PageFilter{FollowerCountMin: &min, FollowerCountMax: &max})
		assert.Equal(t, bson.M{"$gte": 100, "$lte": 5000}, query["follower_count"])
	})

	t.Run("single bound", func(t *testing.T) {
		t.Parallel()

		min := 100
		query := pageFilterQuery(domain.PageFilter{FollowerCountMin: &min})
		assert.Equal(t, bson.M{"$gte": 100}, query["follower_count"])
		assert.NotContains(t, query, "page_name")
	})
}
