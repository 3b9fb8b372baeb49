package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobi-backend/internal/repository"
)

const connectTimeout = 10 * time.Second

// Store bundles the repositories backed by one MongoDB database.
type Store struct {
	client *mongo.Client

	Registrations repository.RegistrationRepository
}

// Connect dials MongoDB, verifies the connection, and returns a Store bound
// to the named database.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(database)
	return &Store{
		client:        client,
		Registrations: NewRegistrationRepository(db),
	}, nil
}

// EnsureIndexes creates the indexes the engine depends on, most importantly
// the unique phone index that is the authoritative dedup guard.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if r, ok := s.Registrations.(*registrationRepository); ok {
		return r.ensureIndexes(ctx)
	}
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
