// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/sprintboard/internal/adapters/http"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/sprintboard/internal/adapters/principal"
	"github.com/jsamuelsen11/sprintboard/internal/adapters/store"
	"github.com/jsamuelsen11/sprintboard/internal/app"
	"github.com/jsamuelsen11/sprintboard/internal/platform/config"
	"github.com/jsamuelsen11/sprintboard/internal/platform/database"
	"github.com/jsamuelsen11/sprintboard/internal/platform/health"
	"github.com/jsamuelsen11/sprintboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/sprintboard/internal/platform/logging"
	"github.com/jsamuelsen11/sprintboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/sprintboard/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// otelShutdownTimeout bounds the final telemetry flush.
const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, err := config.ProfileFromEnv(os.Getenv)
	if err != nil {
		return err
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	// Resolving the server wires the whole graph.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	db := do.MustInvoke[*database.DB](injector)
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()
	do.MustInvoke[ports.HealthRegistry](injector).Register(db)

	logger.Info("sprintboard starting",
		slog.String("profile", profile),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.String("driver", cfg.Database.Driver),
	)

	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Storage.
	do.Provide(injector, func(_ do.Injector) (*database.DB, error) {
		ctx := context.Background()
		db, err := database.Open(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Database.Migrate {
			if err := db.Migrate(ctx); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("migrating schema: %w", err)
			}
		}
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return store.NewUserRepository(do.MustInvoke[*database.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.BoardRepository, error) {
		return store.NewBoardRepository(do.MustInvoke[*database.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SprintRepository, error) {
		return store.NewSprintRepository(do.MustInvoke[*database.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TicketRepository, error) {
		return store.NewTicketRepository(do.MustInvoke[*database.DB](i)), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(do.MustInvoke[ports.UserRepository](i), logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.BoardService, error) {
		return app.NewBoardService(do.MustInvoke[ports.BoardRepository](i), logger,
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i))), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.SprintService, error) {
		return app.NewSprintService(
			do.MustInvoke[ports.BoardRepository](i),
			do.MustInvoke[ports.SprintRepository](i),
			do.MustInvoke[ports.TicketRepository](i),
			do.MustInvoke[*database.DB](i),
			logger,
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TicketService, error) {
		return app.NewTicketService(
			do.MustInvoke[ports.BoardRepository](i),
			do.MustInvoke[ports.SprintRepository](i),
			do.MustInvoke[ports.TicketRepository](i),
			do.MustInvoke[*database.DB](i),
			logger,
			app.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	// Authentication.
	do.Provide(injector, func(i do.Injector) (ports.PrincipalResolver, error) {
		return newPrincipalResolver(i, cfg, logger)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(cfg.Server.HealthCheckTimeout), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return adapthttp.Handlers{
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			User:   handlers.NewUserHandler(),
			Board:  handlers.NewBoardHandler(do.MustInvoke[ports.BoardService](i)),
			Sprint: handlers.NewSprintHandler(do.MustInvoke[ports.SprintService](i)),
			Ticket: handlers.NewTicketHandler(do.MustInvoke[ports.TicketService](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		resolver := do.MustInvoke[ports.PrincipalResolver](i)
		// API routes get a fresh memoization scope before the principal is
		// resolved, so the user lookup is shared with the services.
		guard := middleware.Chain(
			middleware.AppContext(),
			middleware.Principal(resolver, do.MustInvoke[ports.UserService](i)),
		)

		var corsHeaders []string
		if hr, ok := resolver.(*principal.HeaderResolver); ok {
			corsHeaders = hr.Headers()
		}

		return adapthttp.NewRouter(h, guard,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.CORS(cfg.CORS, corsHeaders...),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// newPrincipalResolver builds the resolver for the configured auth mode.
// Session mode also registers its introspection client as a readiness check.
func newPrincipalResolver(i do.Injector, cfg *config.Config, logger *slog.Logger) (ports.PrincipalResolver, error) {
	switch cfg.Auth.Mode {
	case config.AuthModeJWT:
		return principal.NewJWTResolver(&cfg.Auth.JWT)
	case config.AuthModeSession:
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		client := httpclient.New(&cfg.Auth.Session.Client, "session-api", metrics, logger)
		resolver := principal.NewSessionResolver(client, &cfg.Auth.Session, logger)
		do.MustInvoke[ports.HealthRegistry](i).Register(resolver)
		return resolver, nil
	default:
		return principal.NewHeaderResolver(cfg.Auth.HeaderName), nil
	}
}
