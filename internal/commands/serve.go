package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/SscSPs/garage_books/internal/adapters/events"
	"github.com/SscSPs/garage_books/internal/core/ledger"
	portsrepo "github.com/SscSPs/garage_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/garage_books/internal/core/ports/services"
	"github.com/SscSPs/garage_books/internal/core/services"
	"github.com/SscSPs/garage_books/internal/handlers"
	"github.com/SscSPs/garage_books/internal/middleware"
	"github.com/SscSPs/garage_books/internal/platform/config"
	"github.com/SscSPs/garage_books/internal/platform/metrics"
	"github.com/SscSPs/garage_books/internal/repositories/database/pgsql"
	"github.com/SscSPs/garage_books/pkg/database"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := newLogger(os.Stdout, cfg.LogLevel)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, logger)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	m := metrics.New()

	var store *ledgerStore
	if cfg.DatabaseURL != "" {
		var err error
		store, err = openLedgerStore(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer store.Close()
	} else {
		logger.Warn("PGSQL_URL not set; running with an in-memory ledger")
	}

	l, err := newLedger(ctx, cfg, store)
	if err != nil {
		return err
	}
	accounts, entries := l.Counts()
	logger.Info("Ledger ready", slog.Int("accounts", accounts), slog.Int("entries", entries))
	m.RegisterLedgerGauges(l.Counts)

	if cfg.SeedDefaultChart {
		created, err := services.SeedDefaultChart(ctx, l, cfg.DefaultCurrency)
		if err != nil {
			return fmt.Errorf("seeding chart of accounts: %w", err)
		}
		logger.Info("Default chart seeded", slog.Int("created", created), slog.String("currency", cfg.DefaultCurrency))
	}

	svcOpts := []services.ServiceOption{services.WithMetrics(m)}
	if cfg.AMQPURL != "" {
		pub, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
		if err != nil {
			return fmt.Errorf("connecting to AMQP broker: %w", err)
		}
		defer func() {
			if cerr := pub.Close(); cerr != nil {
				logger.Error("Error closing AMQP publisher", slog.String("error", cerr.Error()))
			}
		}()
		svcOpts = append(svcOpts, services.WithEventPublisher(pub))
		logger.Info("Publishing posted entries", slog.String("exchange", cfg.AMQPExchange))
	}

	repos := portsrepo.RepositoryProvider{Ledger: l}
	if store != nil {
		repos.LedgerRepo = store.repo
	}
	svc := services.NewServiceContainer(repos, svcOpts...)

	router, err := newRouter(cfg, logger, svc, m)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}

// ledgerStore is the Postgres backing of the ledger.
type ledgerStore struct {
	repo portsrepo.LedgerRepositoryFacade
	done func()
}

func openLedgerStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ledgerStore, error) {
	changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, database.MigrateUp)
	if err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	if changed {
		logger.Info("Database migrations applied successfully")
	} else {
		logger.Info("No new migrations to apply")
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("initializing database pool: %w", err)
	}
	db := database.OpenDB(pool)
	return &ledgerStore{
		repo: pgsql.NewLedgerRepository(db),
		done: func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing database handle", slog.String("error", err.Error()))
			}
			database.ClosePgxPool(pool)
		},
	}, nil
}

func (s *ledgerStore) Close() {
	s.done()
}

// newLedger builds the in-memory ledger. With a store, recorded state is
// restored first and every later change is written through before it applies.
func newLedger(ctx context.Context, cfg *config.Config, store *ledgerStore) (*ledger.Ledger, error) {
	if store == nil {
		return ledger.New(), nil
	}

	recorder := pgsql.NewRecorder(context.WithoutCancel(ctx), store.repo, cfg.StoreTimeout)
	l := ledger.New(ledger.WithRecorder(recorder))

	accounts, entries, err := store.repo.LoadLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	if err := l.Restore(accounts, entries); err != nil {
		return nil, fmt.Errorf("restoring ledger: %w", err)
	}
	return l, nil
}

// newRouter assembles the gin engine with the global middleware chain.
func newRouter(cfg *config.Config, logger *slog.Logger, svc *portssvc.ServiceContainer, m *metrics.Metrics) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
		middleware.Prometheus(m),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("setting trusted proxies: %w", err)
	}

	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, fmt.Errorf("configuring rate limit %q: %w", cfg.RateLimit, err)
	}
	handlers.RegisterRoutes(r, cfg, svc, m, middleware.RateLimit(lim))
	return r, nil
}
