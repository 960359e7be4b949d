package repository

import (
	"context"
	"time"

	"catalog-backend/internal/domains/publisher/model"
	"catalog-backend/pkg/cache"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ListCacheKey holds the sorted publisher list
const ListCacheKey = "publishers:list"

// cachedRepository caches Find() and drops the entry on every write.
// Cache errors never fail a request.
type cachedRepository struct {
	RepositoryInterface
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedRepository wraps next with a read-through list cache
func NewCachedRepository(next RepositoryInterface, c cache.Cache, ttl time.Duration) RepositoryInterface {
	return &cachedRepository{
		RepositoryInterface: next,
		cache:               c,
		ttl:                 ttl,
	}
}

func (r *cachedRepository) Find(ctx context.Context) ([]*model.Publisher, error) {
	var cached []*model.Publisher
	found, err := r.cache.Get(ctx, ListCacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("publisher list cache read failed")
	} else if found {
		return cached, nil
	}

	publishers, err := r.RepositoryInterface.Find(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, ListCacheKey, publishers, r.ttl); err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("publisher list cache write failed")
	}
	return publishers, nil
}

func (r *cachedRepository) Save(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	created, err := r.RepositoryInterface.Save(ctx, pub)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *cachedRepository) FindByIDAndUpdate(ctx context.Context, id uuid.UUID, pub *model.Publisher) (*model.Publisher, error) {
	updated, err := r.RepositoryInterface.FindByIDAndUpdate(ctx, id, pub)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *cachedRepository) FindByIDAndRemove(ctx context.Context, id uuid.UUID) error {
	if err := r.RepositoryInterface.FindByIDAndRemove(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *cachedRepository) invalidate(ctx context.Context) {
	if err := r.cache.Delete(ctx, ListCacheKey); err != nil {
		log.Warn().Err(err).Str("key", ListCacheKey).Msg("publisher list cache invalidation failed")
	}
}
