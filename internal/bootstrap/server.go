package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/flightbooking/api"
	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Run serves the HTTP API and blocks until ctx is canceled or the server
// fails. Cancellation triggers a graceful shutdown bounded by the configured
// timeout.
func Run(ctx context.Context, cfg *config.Config, services api.Services) error {
	lis, err := net.Listen("tcp", cfg.HTTP.Address)
	if err != nil {
		return fmt.Errorf("listen HTTP %s: %w", cfg.HTTP.Address, err)
	}

	handler := api.NewRouter(services, cfg.HTTP.SwaggerFile)
	return Serve(ctx, lis, handler, time.Duration(cfg.HTTP.ShutdownSeconds)*time.Second)
}

func Serve(ctx context.Context, lis net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	httpSrv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logging.FromContext(ctx).WithField("address", lis.Addr().String()).Info("HTTP server listening")
		if err := httpSrv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve HTTP: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logging.FromContext(ctx).Info("shutting down HTTP server")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
