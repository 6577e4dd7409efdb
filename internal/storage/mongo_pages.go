package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonesrussell/pageinsights/internal/domain"
)

// pageDocument is the stored shape of a page record. Timestamps are
// persisted as RFC 3339 text and parsed back to time.Time on read.
type pageDocument struct {
	domain.Page `bson:",inline"`
	ScrapedAt   string `bson:"scraped_at"`
	UpdatedAt   string `bson:"updated_at"`
}

// newPageDocument converts a domain page to its stored shape.
func newPageDocument(page *domain.Page) pageDocument {
	return pageDocument{
		Page:      *page,
		ScrapedAt: page.ScrapedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: page.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// toDomain converts a stored page back to the domain shape. Unparseable
// timestamps stay at their zero value rather than failing the read.
func (d pageDocument) toDomain() domain.Page {
	page := d.Page
	if t, err := time.Parse(time.RFC3339Nano, d.ScrapedAt); err == nil {
		page.ScrapedAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, d.UpdatedAt); err == nil {
		page.UpdatedAt = t
	}
	if page.Specialties == nil {
		page.Specialties = []string{}
	}
	return page
}

// mongoPageRepository implements PageRepository on a mongo collection.
type mongoPageRepository struct {
	coll *mongo.Collection
}

// FindByID returns the page for the key, or ErrNotFound.
func (r *mongoPageRepository) FindByID(ctx context.Context, pageID string) (*domain.Page, error) {
	var doc pageDocument
	err := r.coll.FindOne(ctx, bson.M{"page_id": pageID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find page %q: %w", pageID, err)
	}

	page := doc.toDomain()
	return &page, nil
}

// List returns one offset page of records matching the filter.
func (r *mongoPageRepository) List(ctx context.Context, filter domain.PageFilter, skip, limit int64) ([]domain.Page, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, pageFilterQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []pageDocument
	if decodeErr := cursor.All(ctx, &docs); decodeErr != nil {
		return nil, fmt.Errorf("decode pages: %w", decodeErr)
	}

	pages := make([]domain.Page, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, doc.toDomain())
	}
	return pages, nil
}

// Count returns the number of records matching the filter.
func (r *mongoPageRepository) Count(ctx context.Context, filter domain.PageFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, pageFilterQuery(filter))
	if err != nil {
		return 0, fmt.Errorf("count pages: %w", err)
	}
	return total, nil
}

// Insert stores a new page record.
func (r *mongoPageRepository) Insert(ctx context.Context, page *domain.Page) error {
	_, err := r.coll.InsertOne(ctx, newPageDocument(page))
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	if err != nil {
		return fmt.Errorf("insert page %q: %w", page.PageID, err)
	}
	return nil
}

// pageFilterQuery translates the optional predicates into a mongo query.
// Name and industry match as case-insensitive substrings, the follower
// bounds are inclusive.
func pageFilterQuery(filter domain.PageFilter) bson.M {
	query := bson.M{}

	if filter.Name != "" {
		query["page_name"] = primitive.Regex{Pattern: filter.Name, Options: "i"}
	}
	if filter.Industry != "" {
		query["industry"] = primitive.Regex{Pattern: filter.Industry, Options: "i"}
	}

	if filter.FollowerCountMin != nil || filter.FollowerCountMax != nil {
		bounds := bson.M{}
		if filter.FollowerCountMin != nil {
			bounds["$gte"] = *filter.FollowerCountMin
		}
		if filter.FollowerCountMax != nil {
			bounds["$lte"] = *filter.FollowerCountMax
		}
		query["follower_count"] = bounds
	}

	return query
}
