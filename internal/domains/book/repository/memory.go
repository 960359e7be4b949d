package repository

import (
	"context"
	"sort"
	"sync"

	"catalog-backend/internal/domains/book/model"

	"github.com/google/uuid"
)

// MemoryRepository giữ books trong RAM, dùng cho STORE_DRIVER=memory và tests
type MemoryRepository struct {
	mu    sync.RWMutex
	books map[uuid.UUID]*model.Book
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{books: make(map[uuid.UUID]*model.Book)}
}

// Add seeds a book, assigning an ID when missing
func (r *MemoryRepository) Add(b model.Book) *model.Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.books[b.ID] = &b
	out := b
	return &out
}

// Remove drops a book by id
func (r *MemoryRepository) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.books, id)
}

func (r *MemoryRepository) FindByPublisher(_ context.Context, publisherID uuid.UUID) ([]*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]*model.Book, 0)
	for _, b := range r.books {
		if b.PublisherID == publisherID {
			cp := *b
			books = append(books, &cp)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })

	return books, nil
}
