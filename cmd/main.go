package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mesa-market/db/migrations"
	httpadapter "mesa-market/internal/adapter/http"
	"mesa-market/internal/adapter/postgres"
	"mesa-market/internal/adapter/redis"
	"mesa-market/internal/adapter/session"
	"mesa-market/internal/adapter/usecase"
	"mesa-market/internal/config"
	"mesa-market/internal/db"
)

// main loads configuration, prepares the database, wires the marketplace
// use cases behind the HTTP router and serves until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if err = run(cfg, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Psql.RunMigrations {
		from, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied",
			slog.Uint64("from_version", uint64(from)),
			slog.Uint64("version", uint64(migrations.Version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	infra := httpadapter.Infra{
		Sessions:   session.NewJWTValidator(cfg.Auth),
		CookieName: cfg.Auth.CookieName,
		DB:         pool,
		RateLimit:  cfg.RateLimit,
	}
	if cfg.RateLimit.Active(cfg.Redis.Address) {
		rdb, err := redis.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		infra.Limiter = redis.NewTokenBucket(rdb)
		logger.Info("rate limiting enabled",
			slog.Float64("rate", cfg.RateLimit.Rate),
			slog.Int("burst", cfg.RateLimit.Burst))
	}

	var (
		sponsors   = postgres.NewSponsorRepository(pool)
		publishers = postgres.NewPublisherRepository(pool)
		slots      = postgres.NewAdSlotRepository(pool)
		campaigns  = postgres.NewCampaignRepository(pool)
		placements = postgres.NewPlacementRepository(pool)
		quotes     = postgres.NewQuoteRepository(pool)
		newsletter = postgres.NewNewsletterRepository(pool)
		owner      = usecase.NewOwnershipResolver(sponsors, publishers)
	)
	svc := httpadapter.Services{
		Auth:       owner,
		AdSlots:    usecase.NewAdSlotUseCase(slots, placements, publishers, owner, logger),
		Quotes:     usecase.NewQuoteUseCase(quotes, slots, owner),
		Campaigns:  usecase.NewCampaignUseCase(campaigns, placements, owner),
		Sponsors:   usecase.NewSponsorUseCase(sponsors, campaigns),
		Publishers: usecase.NewPublisherUseCase(publishers, slots),
		Placements: usecase.NewPlacementUseCase(placements, campaigns, slots, owner),
		Dashboard:  usecase.NewDashboardUseCase(sponsors, publishers, campaigns, placements),
		Newsletter: usecase.NewNewsletterUseCase(newsletter, logger),
	}

	handler := httpadapter.NewHandler(svc, infra, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
