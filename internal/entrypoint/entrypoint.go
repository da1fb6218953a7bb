package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/config"
	"github.com/mrlokans/bookmarks/internal/extractors"
	http_controllers "github.com/mrlokans/bookmarks/internal/http"
	"github.com/mrlokans/bookmarks/internal/scheduler"
	"github.com/mrlokans/bookmarks/internal/snapshot"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server on listener until ctx is cancelled, then shuts
// it down, waiting at most timeout for in-flight requests.
func Serve(ctx context.Context, router *gin.Engine, listener net.Listener, timeout time.Duration, onShutdown ShutdownFunc, logger zerolog.Logger) error {
	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("address", listener.Addr().String()).Msg("Starting server")
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Dur("timeout", timeout).Msg("Shutdown server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info().Msg("Server exiting")
	return nil
}

// Run extracts paths into a snapshot, keeps it fresh on cfg's schedule and
// serves it over HTTP until ctx is cancelled. A failing first extraction
// aborts startup.
func Run(ctx context.Context, cfg *config.Config, paths []string, version string, logger zerolog.Logger) error {
	logger.Info().Str("version", version).Strs("paths", paths).Msg("Starting bookmarks server")

	dispatcher := extractors.NewDispatcher(
		extractors.NewRegistry(extractors.DefaultProbes()),
		extractors.DefaultExtractors(cfg.Schemeless, logger),
		logger,
	)
	store := snapshot.NewStore(extractors.NewPipeline(dispatcher, logger), paths, logger)

	if err := store.Refresh(); err != nil {
		return err
	}

	refreshScheduler := scheduler.NewRefreshScheduler(store, cfg.Schedule, logger)
	if err := refreshScheduler.Start(ctx); err != nil {
		return err
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Snapshot:  store,
		Scheduler: refreshScheduler,
		Version:   version,
	})

	listener, err := net.Listen("tcp", cfg.HTTP.Address())
	if err != nil {
		refreshScheduler.Stop()
		return fmt.Errorf("listen: %w", err)
	}

	onShutdown := func(context.Context) {
		refreshScheduler.Stop()
	}

	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	return Serve(ctx, router, listener, timeout, onShutdown, logger)
}
