package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"

	"library-backend/internal/domains/author"
	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"

	"library-backend/internal/domains/genre"
	genreHandler "library-backend/internal/domains/genre/handler"
	genreRepo "library-backend/internal/domains/genre/repository"
	genreService "library-backend/internal/domains/genre/service"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
)

// Container holds the application dependency graph. Everything here is
// a singleton built once at startup, wired bottom-up: config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Counter cache.Counter // nil when Redis is disabled

	AuthorRepo author.Repository
	GenreRepo  genre.Repository
	BookRepo   book.Repository

	AuthorService author.Service
	GenreService  genre.Service
	BookService   book.Service

	AuthorHandler *authorHandler.AuthorHandler
	GenreHandler  *genreHandler.GenreHandler
	BookHandler   *bookHandler.BookHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCounter()

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initDatabase() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if err := database.EnsureSchema(ctx, db.Pool); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	c.DB = db
	logger.Info("Database connected", map[string]interface{}{
		"host": dbConfig.Host,
		"name": dbConfig.DBName,
	})
	return nil
}

// initCounter wires the Redis-backed rate limit counter. Redis being
// down or disabled is not fatal: the counter stays nil and the router
// skips rate limiting.
func (c *Container) initCounter() {
	if !c.Config.Redis.Enabled {
		return
	}

	counter := infraCache.NewRedisCounter(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := counter.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed, rate limiting disabled", err)
		return
	}

	c.Counter = counter
	logger.Info("Redis connected", map[string]interface{}{"host": c.Config.Redis.Host})
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.GenreRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if counter, ok := c.Counter.(*infraCache.RedisCounter); ok && counter != nil {
		if err := counter.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", err)
		}
	}
}
