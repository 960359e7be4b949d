package container

import (
	"context"
	"fmt"
	"time"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/telemetry"
	"catalog-backend/pkg/cache"

	bookRepo "catalog-backend/internal/domains/book/repository"
	publisherHandler "catalog-backend/internal/domains/publisher/handler"
	publisherRepo "catalog-backend/internal/domains/publisher/repository"
	publisherService "catalog-backend/internal/domains/publisher/service"

	"github.com/rs/zerolog/log"
)

// Container chứa TẤT CẢ dependencies của application
// Thứ tự khởi tạo: Config -> Infrastructure -> Repositories -> Services -> Handlers
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB // nil khi STORE_DRIVER=memory
	Cache  cache.Cache          // nil khi cache tắt hoặc Redis không kết nối được

	// Repositories
	PublisherRepo publisherRepo.RepositoryInterface
	BookRepo      bookRepo.RepositoryInterface

	// Services
	PublisherService publisherService.ServiceInterface

	// Handlers
	PublisherHandler *publisherHandler.PublisherHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI Container...")

	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Str("store", cfg.Store.Driver).Msg("Config loaded")

	telemetry.Initialize(cfg.Metrics.Enabled)

	// STEP 2: DATABASE
	if cfg.Store.Driver == config.StoreDriverPostgres {
		if err := c.initDatabase(); err != nil {
			return nil, err
		}
	}

	// STEP 3: CACHE
	if cfg.Cache.Enabled {
		c.initCache()
	}

	// STEP 4-6
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI Container initialized successfully")
	return c, nil
}

func (c *Container) initDatabase() error {
	log.Info().Msg("Connecting to PostgreSQL...")

	dbConfig := c.Config.Database
	db := database.NewPostgresDB(&dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	return nil
}

// initCache: Redis failure không critical - log warning và chạy không có cache
func (c *Container) initCache() {
	cfg := c.Config
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rc := redisCache.(*infraCache.RedisCache)
	if err := rc.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed (non-critical), list cache disabled")
		_ = rc.Close()
		return
	}

	c.Cache = redisCache
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.PublisherRepo = publisherRepo.NewPostgresRepository(c.DB.Pool)
		c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	} else {
		c.PublisherRepo = publisherRepo.NewMemoryRepository()
		c.BookRepo = bookRepo.NewMemoryRepository()
	}

	if c.Cache != nil {
		c.PublisherRepo = publisherRepo.NewCachedRepository(c.PublisherRepo, c.Cache, c.Config.Cache.TTL)
	}
}

func (c *Container) initServices() {
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo, c.BookRepo)
}

func (c *Container) initHandlers() {
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close database")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		} else {
			log.Info().Msg("Redis connections closed")
		}
	}

	log.Info().Msg("Cleanup completed")
}
