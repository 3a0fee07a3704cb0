// Package mongo implements the repositories on MongoDB. It is selected with
// DB_DRIVER=mongo.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arcadia-esports/cms-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

const (
	collectionUsers        = "users"
	collectionTeams        = "teams"
	collectionEvents       = "events"
	collectionStaff        = "staff"
	collectionLeadership   = "leadership"
	collectionSponsors     = "sponsors"
	collectionApplications = "hiring_applications"
	collectionContact      = "contact_messages"
)

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Store owns the client and the selected database.
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect establishes a client, verifies connectivity with a ping and selects
// the database.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Store{Client: client, DB: client.Database(cfg.Database)}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index and the sort indexes used by
// the list queries. It is the Mongo counterpart of the SQL migrations.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	users := []mongo.IndexModel{{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}}
	if _, err := s.DB.Collection(collectionUsers).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("ensure %s indexes: %w", collectionUsers, err)
	}

	sorted := map[string]string{
		collectionTeams:        "created_at",
		collectionEvents:       "date",
		collectionStaff:        "created_at",
		collectionLeadership:   "created_at",
		collectionSponsors:     "created_at",
		collectionApplications: "date_submitted",
		collectionContact:      "date_sent",
	}
	for coll, field := range sorted {
		idx := mongo.IndexModel{Keys: bson.D{{Key: field, Value: -1}}}
		if _, err := s.DB.Collection(coll).Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("ensure %s indexes: %w", coll, err)
		}
	}
	return nil
}

func storeErr(op string, err error) error {
	return domain.StoreFailure(op, err)
}
