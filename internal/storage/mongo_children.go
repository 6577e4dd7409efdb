package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonesrussell/pageinsights/internal/domain"
)

// mongoPostRepository implements PostRepository on a mongo collection.
type mongoPostRepository struct {
	coll *mongo.Collection
}

// ListByPage returns one offset page of posts owned by the key.
func (r *mongoPostRepository) ListByPage(ctx context.Context, pageID string, skip, limit int64) ([]domain.Post, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"page_id": pageID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts for %q: %w", pageID, err)
	}
	defer cursor.Close(ctx)

	var posts []domain.Post
	if decodeErr := cursor.All(ctx, &posts); decodeErr != nil {
		return nil, fmt.Errorf("decode posts: %w", decodeErr)
	}
	return posts, nil
}

// CountByPage returns the number of posts owned by the key.
func (r *mongoPostRepository) CountByPage(ctx context.Context, pageID string) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"page_id": pageID})
	if err != nil {
		return 0, fmt.Errorf("count posts for %q: %w", pageID, err)
	}
	return total, nil
}

// InsertMany stores a post batch.
func (r *mongoPostRepository) InsertMany(ctx context.Context, posts []domain.Post) error {
	docs := make([]any, 0, len(posts))
	for i := range posts {
		docs = append(docs, posts[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert posts: %w", err)
	}
	return nil
}

// mongoEmployeeRepository implements EmployeeRepository on a mongo collection.
type mongoEmployeeRepository struct {
	coll *mongo.Collection
}

// ListByPage returns one offset page of employees owned by the key.
func (r *mongoEmployeeRepository) ListByPage(ctx context.Context, pageID string, skip, limit int64) ([]domain.Employee, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"page_id": pageID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list employees for %q: %w", pageID, err)
	}
	defer cursor.Close(ctx)

	var employees []domain.Employee
	if decodeErr := cursor.All(ctx, &employees); decodeErr != nil {
		return nil, fmt.Errorf("decode employees: %w", decodeErr)
	}
	return employees, nil
}

// CountByPage returns the number of employees owned by the key.
func (r *mongoEmployeeRepository) CountByPage(ctx context.Context, pageID string) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{"page_id": pageID})
	if err != nil {
		return 0, fmt.Errorf("count employees for %q: %w", pageID, err)
	}
	return total, nil
}

// InsertMany stores an employee batch.
func (r *mongoEmployeeRepository) InsertMany(ctx context.Context, employees []domain.Employee) error {
	docs := make([]any, 0, len(employees))
	for i := range employees {
		docs = append(docs, employees[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert employees: %w", err)
	}
	return nil
}
