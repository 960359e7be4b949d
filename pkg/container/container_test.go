package container

import (
	"context"
	"testing"

	"catalog-backend/internal/domains/publisher/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_MemoryStore(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CACHE_ENABLED", "false")

	c, err := NewContainer()
	require.NoError(t, err)
	defer c.Cleanup()

	assert.Nil(t, c.DB)
	assert.Nil(t, c.Cache)
	require.NotNil(t, c.PublisherHandler)

	res, err := c.PublisherService.Create(context.Background(), service.FormInput{Name: "Container Press"})
	require.NoError(t, err)
	require.True(t, res.Valid())

	list, err := c.PublisherService.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.NoError(t, c.PublisherService.Ping(context.Background()))
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := NewContainer()
	assert.Error(t, err)
}
