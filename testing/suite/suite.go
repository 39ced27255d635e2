package suite

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	application "github.com/rocketscienceinc/tictactoe-history/internal"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/session"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Server   *httptest.Server
	Sessions *session.Manager
}

// New boots the whole HTTP stack on a local port. Everything is torn down with the test.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(cancel)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	conf := &config.Config{
		LogLevel: "warn",
		Glyphs: config.Glyphs{
			First:  "X",
			Second: "O",
		},
	}

	handler := application.NewHandler(logger, conf)
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Server:   server,
		Sessions: handler.Sessions,
	}
}

// Dial opens a game socket. The connection is closed with the test.
func (that *Suite) Dial(ctx context.Context) *websocket.Conn {
	that.Helper()

	url := "ws" + strings.TrimPrefix(that.Server.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		that.Fatalf("could not dial game socket: %v", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err = conn.SetReadDeadline(deadline); err != nil {
			that.Fatalf("could not set read deadline: %v", err)
		}
	}

	that.Cleanup(func() {
		conn.Close()
	})

	return conn
}
