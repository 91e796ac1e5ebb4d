package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/praxora/praxis-backend/internal/adapter/notify"
	"github.com/praxora/praxis-backend/internal/adapter/postgres"
	reportrepo "github.com/praxora/praxis-backend/internal/adapter/postgres/report"
	stamprepo "github.com/praxora/praxis-backend/internal/adapter/postgres/stamp"
	blockrepo "github.com/praxora/praxis-backend/internal/adapter/postgres/timeblock"
	"github.com/praxora/praxis-backend/internal/auth"
	"github.com/praxora/praxis-backend/internal/config"
	"github.com/praxora/praxis-backend/internal/service/attendance"
	"github.com/praxora/praxis-backend/internal/service/timesheet"
	"github.com/praxora/praxis-backend/internal/transport/middleware"
	"github.com/praxora/praxis-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services into the HTTP router, and
// serves until SIGINT/SIGTERM.
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

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	stamps := stamprepo.New(pool)
	blocks := blockrepo.New(pool)
	reports := reportrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	attendanceSvc := attendance.NewService(logger, stamps, blocks, txm, cfg.Attendance)
	timesheetSvc := timesheet.NewService(logger, blocks, reports, notify.NewLogSink(logger), cfg.Attendance)

	tokens := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:     logger,
		Tokens:     tokens,
		Limiter:    limiter,
		CORS:       cfg.CORS,
		RatePerMin: cfg.Server.RateLimitPerMin,

		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Attendance: rest.NewAttendanceHandler(attendanceSvc, logger),
		Reports:    rest.NewReportHandler(timesheetSvc, logger),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
