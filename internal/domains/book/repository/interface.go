package repository

import (
	"context"

	"catalog-backend/internal/domains/book/model"

	"github.com/google/uuid"
)

// RepositoryInterface is the part of the book store the catalog reads from
type RepositoryInterface interface {
	// FindByPublisher returns books referencing publisherID, ordered by title
	FindByPublisher(ctx context.Context, publisherID uuid.UUID) ([]*model.Book, error)
}
