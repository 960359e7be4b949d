package repository

import (
	"context"

	"catalog-backend/internal/domains/publisher/model"

	"github.com/google/uuid"
)

// RepositoryInterface defines all data access operations for Publisher domain.
// Lookups return (nil, nil) when the record is absent. Writes run
// Publisher.Validate first and return INVALID_PUBLISHER_NAME on failure.
type RepositoryInterface interface {
	// Find returns every publisher ordered by name ascending
	Find(ctx context.Context) ([]*model.Publisher, error)

	// FindByID retrieves a publisher by ID
	FindByID(ctx context.Context, id uuid.UUID) (*model.Publisher, error)

	// FindOneByName retrieves the publisher whose name matches exactly
	FindOneByName(ctx context.Context, name string) (*model.Publisher, error)

	// Save inserts a new record; the store assigns ID and timestamps
	Save(ctx context.Context, publisher *model.Publisher) (*model.Publisher, error)

	// FindByIDAndUpdate replaces the name of an existing record
	FindByIDAndUpdate(ctx context.Context, id uuid.UUID, publisher *model.Publisher) (*model.Publisher, error)

	// FindByIDAndRemove deletes a record. Removing an absent id is not an error
	FindByIDAndRemove(ctx context.Context, id uuid.UUID) error

	// Ping checks the store is reachable
	Ping(ctx context.Context) error
}
