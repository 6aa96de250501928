package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/scatterviz/internal/adapters/http/api"
	"github.com/okian/scatterviz/internal/adapters/http/swagger"
	repository "github.com/okian/scatterviz/internal/adapters/repository"
	app "github.com/okian/scatterviz/internal/app"
	"github.com/okian/scatterviz/internal/config"
	"github.com/okian/scatterviz/internal/domain/dataset"
	"github.com/okian/scatterviz/pkg/logger"
	"github.com/okian/scatterviz/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 30 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

// stdoutPath selects standard output as the render destination.
const stdoutPath = "-"

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout); err != nil {
		logger.Get().Error(ctx, "scatterviz failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	loggerInstance := logger.Get()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(ctx, cfg, loggerInstance)
	if err != nil {
		return err
	}

	if cfg.Serve {
		return serve(ctx, cfg, svc, loggerInstance)
	}
	return renderOnce(ctx, cfg, svc, stdout)
}

func newService(ctx context.Context, cfg *config.Config, l logger.Logger) (*app.Service, error) {
	svc, err := app.New(ctx,
		app.WithLogger(l),
		app.WithStore(repository.NewMemoryStore(repository.WithMaxDatasets(cfg.MaxDatasets))),
		app.WithCanvas(cfg.Canvas()),
		app.WithDefaultVariant(cfg.Variant),
	)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

// renderOnce renders the configured dataset to cfg.OutputPath. The chart is
// built in memory so a failed render never truncates an existing file.
func renderOnce(ctx context.Context, cfg *config.Config, svc *app.Service, stdout io.Writer) error {
	id := svc.BuiltinID()
	if cfg.DatasetPath != "" {
		ds, err := dataset.Load(ctx, cfg.DatasetPath)
		if err != nil {
			return err
		}
		stored, err := svc.AddDataset(ctx, ds)
		if err != nil {
			return err
		}
		id = stored.ID
	}

	var buf bytes.Buffer
	if err := svc.Render(ctx, &buf, id, cfg.Variant, cfg.Format); err != nil {
		return err
	}

	if cfg.OutputPath == stdoutPath {
		if _, err := buf.WriteTo(stdout); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0o644); err != nil { //nolint:gosec // charts are public artifacts
		return fmt.Errorf("write chart: %w", err)
	}
	logger.Get().Info(ctx, "chart written",
		logger.String("path", cfg.OutputPath),
		logger.String("format", cfg.Format),
		logger.String("variant", cfg.Variant),
	)
	return nil
}

func newMux(ctx context.Context, svc *app.Service) *http.ServeMux {
	mux := http.NewServeMux()
	swagger.Register(ctx, mux)
	api.NewServer(svc).Register(ctx, mux)
	return mux
}

func serve(ctx context.Context, cfg *config.Config, svc *app.Service, l logger.Logger) error {
	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newMux(ctx, svc),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	// Wait for shutdown signal or a listener failure.
	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	l.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	l.Info(ctx, "server stopped")
	return nil
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
