package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/session"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/tui"
	"github.com/rocketscienceinc/tictactoe-history/internal/view"
	"github.com/rocketscienceinc/tictactoe-history/transport/rest"
	"github.com/rocketscienceinc/tictactoe-history/transport/websocket"
)

// RunServer - serves the game to browsers until SIGINT or SIGTERM.
func RunServer(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := rest.Start(ctx, logger, conf.Addr(), NewHandler(logger, conf)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// NewHandler - builds the HTTP handler serving the game socket and health check.
func NewHandler(logger *slog.Logger, conf *config.Config) *Handler {
	sessions := session.NewManager(logger)
	gameSocket := websocket.New(logger, sessions, NewRenderer(conf))

	return &Handler{
		Handler:  rest.NewRouter(sessions, gameSocket),
		Sessions: sessions,
	}
}

// Handler exposes the session manager next to the router for callers that need to inspect it.
type Handler struct {
	http.Handler
	Sessions *session.Manager
}

// RunTUI - plays one game in the terminal until the user quits.
func RunTUI(logger *slog.Logger, conf *config.Config) error {
	ui := tui.New(logger, tictactoe.NewEngine(), NewRenderer(conf))

	logger.Info("Starting terminal UI")

	if err := ui.Run(); err != nil {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	return nil
}

func NewRenderer(conf *config.Config) *view.Renderer {
	return view.NewRenderer(view.Glyphs{
		First:  conf.Glyphs.First,
		Second: conf.Glyphs.Second,
		Empty:  conf.Glyphs.Empty,
	})
}
