package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"catalog-backend/internal/domains/publisher/model"

	"github.com/google/uuid"
)

// MemoryRepository giữ publishers trong RAM, dùng cho STORE_DRIVER=memory và tests.
// Validate() chạy trước mỗi lần ghi, tương đương CHECK constraint của bảng publishers
type MemoryRepository struct {
	mu         sync.RWMutex
	publishers map[uuid.UUID]model.Publisher
	now        func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		publishers: make(map[uuid.UUID]model.Publisher),
		now:        time.Now,
	}
}

func (r *MemoryRepository) Find(_ context.Context) ([]*model.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Publisher, 0, len(r.publishers))
	for _, p := range r.publishers {
		cp := p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Name < out[j].Name
	})

	return out, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*model.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.publishers[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *MemoryRepository) FindOneByName(_ context.Context, name string) (*model.Publisher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *model.Publisher
	for _, p := range r.publishers {
		if p.Name != name {
			continue
		}
		if found == nil || p.CreatedAt.Before(found.CreatedAt) {
			cp := p
			found = &cp
		}
	}
	return found, nil
}

func (r *MemoryRepository) Save(_ context.Context, pub *model.Publisher) (*model.Publisher, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	p := model.Publisher{
		ID:        uuid.New(),
		Name:      pub.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.publishers[p.ID] = p

	return &p, nil
}

func (r *MemoryRepository) FindByIDAndUpdate(_ context.Context, id uuid.UUID, pub *model.Publisher) (*model.Publisher, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.publishers[id]
	if !ok {
		return nil, nil
	}
	p.Name = pub.Name
	p.UpdatedAt = r.now()
	r.publishers[id] = p

	return &p, nil
}

func (r *MemoryRepository) FindByIDAndRemove(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.publishers, id)
	return nil
}

func (r *MemoryRepository) Ping(_ context.Context) error {
	return nil
}
