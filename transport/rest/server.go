package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - routes the health check and the game socket.
func NewRouter(sessions sessionCounter, gameSocket http.Handler) http.Handler {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	ping := NewPingHandler(sessions)
	router.GET("/ping", ping.Ping)
	router.GET("/ws", echo.WrapHandler(gameSocket))

	return router
}

// Start - serves handler on addr until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, addr string, handler http.Handler) error {
	log := logger.With("component", "http")

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}
