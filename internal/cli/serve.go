package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/drills"
	httpAdapter "github.com/aretw0/drills/internal/adapters/http"
	"github.com/aretw0/drills/pkg/adapters/mcp"
	"github.com/aretw0/drills/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout bounds the graceful shutdown of the servers.
const ShutdownTimeout = 5 * time.Second

// NewWidgetHandler builds the widget page handler for d.
func NewWidgetHandler(d *drills.Drills, reg *prometheus.Registry) http.Handler {
	return httpAdapter.NewHandler(d.Fetcher(), d.Config().Bindings,
		httpAdapter.WithLogger(d.Logger()),
		httpAdapter.WithMetrics(observability.NewMetrics(reg), reg),
	)
}

// Serve runs the widget server on addr until ctx is cancelled.
func Serve(ctx context.Context, d *drills.Drills, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewWidgetHandler(d, prometheus.NewRegistry()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Logger().Info("widget server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			d.Logger().Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		return nil
	})
	return g.Wait()
}

// ServeMCP exposes the scripts over MCP on the given transport. The stdio
// transport always carries the file scripts; over SSE they need allowFiles.
func ServeMCP(ctx context.Context, d *drills.Drills, transport, addr string, allowFiles bool) error {
	srv := mcp.NewServer(d,
		mcp.WithLogger(d.Logger()),
		mcp.WithMetrics(observability.NewMetrics(prometheus.NewRegistry())),
		mcp.WithFileAccess(allowFiles || transport == "stdio"),
	)
	switch transport {
	case "stdio":
		return srv.ServeStdio()
	case "sse":
		err := srv.ServeSSE(ctx, addr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
	}
}
