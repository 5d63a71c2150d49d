package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	"github.com/wojtowpj/beerlog-backend/internal/adapter/postgres"
	beerrepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/beer"
	favoriterepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/favorite"
	glassrepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/glass"
	reviewrepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/review"
	userrepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/user"
	"github.com/wojtowpj/beerlog-backend/internal/auth"
	"github.com/wojtowpj/beerlog-backend/internal/config"
	authservice "github.com/wojtowpj/beerlog-backend/internal/service/auth"
	catalogservice "github.com/wojtowpj/beerlog-backend/internal/service/catalog"
	favoriteservice "github.com/wojtowpj/beerlog-backend/internal/service/favorite"
	reviewservice "github.com/wojtowpj/beerlog-backend/internal/service/review"
	userservice "github.com/wojtowpj/beerlog-backend/internal/service/user"
	"github.com/wojtowpj/beerlog-backend/internal/transport/middleware"
	"github.com/wojtowpj/beerlog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, applies
// pending migrations, wires the dependency graph, and serves HTTP until
// the context is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	initCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(initCtx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := runMigrations(initCtx, cfg.Database, logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Repositories.
	users := userrepo.New(pool)
	glasses := glassrepo.New(pool)
	beers := beerrepo.New(pool)
	reviews := reviewrepo.New(pool)
	favorites := favoriterepo.New(pool)
	txm := postgres.NewTxManager(pool)

	// Auth primitives.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	// Services.
	authSvc := authservice.NewService(logger, users, hasher, jwtManager)
	userSvc := userservice.NewService(logger, users, hasher)
	catalogSvc := catalogservice.NewService(logger, beers, glasses, users, txm, cfg.Limits.BeerAddWindow)
	reviewSvc := reviewservice.NewService(logger, reviews, beers, txm, cfg.Limits.ReviewWindow, cfg.Limits.SummaryRetryAttempts)
	favoriteSvc := favoriteservice.NewService(logger, favorites, beers)

	// Middleware.
	global := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		global = append(global, limiter.Limit(cfg.RateLimit.MaxPerMinute))
	}

	router := rest.Router{
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
		Auth:      rest.NewAuthHandler(authSvc, logger),
		Users:     rest.NewUserHandler(userSvc, logger),
		Glasses:   rest.NewGlassHandler(catalogSvc, logger),
		Beers:     rest.NewBeerHandler(catalogSvc, logger, cfg.Limits.DescriptionMaxLen),
		Reviews:   rest.NewReviewHandler(reviewSvc, logger),
		Favorites: rest.NewFavoriteHandler(favoriteSvc, logger),

		Global: global,
		Authn:  middleware.Auth(jwtManager, authSvc),
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("application stopped")
	return nil
}

// runMigrations applies pending goose migrations from the configured
// directory. Goose requires database/sql, so a separate short-lived
// connection is opened alongside the pgx pool.
func runMigrations(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) error {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	if len(results) > 0 {
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}
	return nil
}
