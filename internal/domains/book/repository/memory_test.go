package repository

import (
	"context"
	"testing"

	"catalog-backend/internal/domains/book/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_FindByPublisher(t *testing.T) {
	repo := NewMemoryRepository()
	pubA, pubB := uuid.New(), uuid.New()

	repo.Add(model.Book{Title: "Zen and the Art", PublisherID: pubA})
	repo.Add(model.Book{Title: "Anathem", PublisherID: pubA})
	other := repo.Add(model.Book{Title: "Dune", PublisherID: pubB})

	books, err := repo.FindByPublisher(context.Background(), pubA)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Anathem", books[0].Title)
	assert.Equal(t, "Zen and the Art", books[1].Title)

	repo.Remove(other.ID)
	books, err = repo.FindByPublisher(context.Background(), pubB)
	require.NoError(t, err)
	assert.Empty(t, books)
	assert.NotNil(t, books)
}
