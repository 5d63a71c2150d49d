// Command seeder populates the catalog with the standard glassware types
// and optionally creates an initial admin user. It is idempotent: entries
// that already exist are skipped. Intended to be run once after migrations,
// not as part of the main server.
//
// Flags:
//
//	--admin-user      username for the initial admin user (skip if empty)
//	--admin-password  password for the initial admin user
//	--dry-run         log what would be created without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/wojtowpj/beerlog-backend/internal/adapter/postgres"
	glassrepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/glass"
	userrepo "github.com/wojtowpj/beerlog-backend/internal/adapter/postgres/user"
	"github.com/wojtowpj/beerlog-backend/internal/app"
	"github.com/wojtowpj/beerlog-backend/internal/auth"
	"github.com/wojtowpj/beerlog-backend/internal/config"
	"github.com/wojtowpj/beerlog-backend/internal/domain"
)

// standardGlasses is the default glassware catalog. Capacities are in
// milliliters.
var standardGlasses = []struct {
	name        string
	description string
	capacity    float64
}{
	{"Pint", "Classic pub glass with a slight taper, suited to ales and lagers", 568},
	{"Pilsner", "Tall slender glass that showcases carbonation and clarity", 400},
	{"Weizen", "Curved wheat beer glass with room for a generous head", 500},
	{"Tulip", "Bulbous body with a flared lip, traps aroma for strong ales", 330},
	{"Snifter", "Short stemmed bowl for barrel-aged and high-ABV styles", 350},
	{"Goblet", "Wide-mouthed stemmed glass for Belgian abbey styles", 330},
	{"Stange", "Narrow cylinder traditionally used for Kolsch", 200},
	{"Mug", "Heavy handled glass for session drinking", 500},
}

func main() {
	adminUserFlag := flag.String("admin-user", "", "username for the initial admin user (skip if empty)")
	adminPassFlag := flag.String("admin-password", "", "password for the initial admin user")
	dryRunFlag := flag.Bool("dry-run", false, "log what would be created without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if *adminUserFlag != "" && *adminPassFlag == "" {
		logger.Error("--admin-password is required when --admin-user is set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	glasses := glassrepo.New(pool)
	users := userrepo.New(pool)

	created, skipped := 0, 0
	for _, g := range standardGlasses {
		if *dryRunFlag {
			logger.Info("would create glass", slog.String("name", g.name))
			continue
		}

		desc := g.description
		capacity := g.capacity
		now := time.Now()
		_, err := glasses.Create(ctx, &domain.BeerGlass{
			ID:          uuid.New(),
			Name:        g.name,
			Description: &desc,
			Capacity:    &capacity,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			skipped++
		case err != nil:
			logger.Error("create glass",
				slog.String("name", g.name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		default:
			created++
		}
	}

	logger.Info("glassware seeded", slog.Int("created", created), slog.Int("skipped", skipped))

	if *adminUserFlag != "" {
		if err := seedAdmin(ctx, logger, users, cfg.Auth, *adminUserFlag, *adminPassFlag, *dryRunFlag); err != nil {
			logger.Error("seed admin user", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

func seedAdmin(
	ctx context.Context,
	logger *slog.Logger,
	users *userrepo.Repo,
	authCfg config.AuthConfig,
	username, password string,
	dryRun bool,
) error {
	if dryRun {
		logger.Info("would create admin user", slog.String("username", username))
		return nil
	}

	hash, err := auth.NewPasswordHasher(authCfg.BcryptCost).Hash(password)
	if err != nil {
		return err
	}

	now := time.Now()
	_, err = users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		logger.Info("admin user already exists", slog.String("username", username))
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("admin user created", slog.String("username", username))
	return nil
}
