package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonesrussell/pageinsights/internal/logger"
)

// Collection names.
const (
	pagesCollection     = "pages"
	postsCollection     = "posts"
	employeesCollection = "employees"
)

const defaultConnectTimeout = 10 * time.Second

// MongoConfig holds the store connection settings.
type MongoConfig struct {
	URI            string        `mapstructure:"uri" yaml:"uri"`
	Database       string        `mapstructure:"database" yaml:"database"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" yaml:"connect_timeout"`
}

// Store owns the process-wide mongo client and hands out repositories. It
// is constructed at startup and closed on graceful shutdown; nothing else
// in the process holds the raw client.
type Store struct {
	client    *mongo.Client
	pages     *mongoPageRepository
	posts     *mongoPostRepository
	employees *mongoEmployeeRepository
	log       logger.Interface
}

// Connect establishes the mongo connection, verifies it with a ping and
// ensures the unique page key index exists.
func Connect(ctx context.Context, cfg MongoConfig, log logger.Interface) (*Store, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = defaultConnectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	if pingErr := client.Ping(connectCtx, nil); pingErr != nil {
		return nil, fmt.Errorf("ping store: %w", pingErr)
	}

	db := client.Database(cfg.Database)
	store := &Store{
		client:    client,
		pages:     &mongoPageRepository{coll: db.Collection(pagesCollection)},
		posts:     &mongoPostRepository{coll: db.Collection(postsCollection)},
		employees: &mongoEmployeeRepository{coll: db.Collection(employeesCollection)},
		log:       log.WithComponent("storage"),
	}

	if indexErr := store.ensureIndexes(connectCtx); indexErr != nil {
		// Not fatal: the store still works, only the duplicate-insert
		// backstop is weaker.
		store.log.Warn("Failed to ensure indexes", "error", indexErr)
	}

	store.log.Info("Connected to store", "database", cfg.Database)
	return store, nil
}

// ensureIndexes creates the unique index on the page key. It backstops the
// in-process fetch de-duplication against concurrent writers in other
// processes.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.pages.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "page_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Pages returns the page repository.
func (s *Store) Pages() PageRepository { return s.pages }

// Posts returns the post repository.
func (s *Store) Posts() PostRepository { return s.posts }

// Employees returns the employee repository.
func (s *Store) Employees() EmployeeRepository { return s.employees }

// Close disconnects the mongo client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
