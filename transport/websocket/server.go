package websocket

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

const writeWait = 10 * time.Second

type gameSessions interface {
	Create() (string, tictactoe.Snapshot)
	Move(id string, cell int) (tictactoe.Snapshot, error)
	Jump(id string, step int) (tictactoe.Snapshot, error)
	State(id string) (tictactoe.Snapshot, error)
	Close(id string)
}

type renderer interface {
	Render(snapshot tictactoe.Snapshot) view.View
}

type handlerFunc func(sessionID string, msg *Message) (tictactoe.Snapshot, error)

// Server serves one game per websocket connection.
type Server struct {
	logger   *slog.Logger
	sessions gameSessions
	renderer renderer
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, sessions gameSessions, renderer renderer) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		renderer: renderer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[ActionState] = server.handleState
	server.handlers[ActionMove] = server.handleMove
	server.handlers[ActionJump] = server.handleJump

	return server
}

// ServeHTTP - upgrades the connection and runs the game loop until the client leaves.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	sessionID, snapshot := that.sessions.Create()
	defer that.sessions.Close(sessionID)

	log = log.With("sessionID", sessionID)
	log.Info("WebSocket connection established")

	if err = that.sendGame(conn, ActionState, sessionID, snapshot); err != nil {
		log.Error("failed to send initial state", "error", err)
		return
	}

	if err = that.handleMessages(conn, sessionID); err != nil {
		log.Error("error handling messages", "error", err)
		return
	}

	log.Info("WebSocket connection closed")
}

// handleMessages - processes messages from the client until the socket closes.
func (that *Server) handleMessages(conn *websocket.Conn, sessionID string) error {
	log := that.logger.With("method", "handleMessages", "sessionID", sessionID)

	for {
		_, reader, err := conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.NewDecoder(reader).Decode(&message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)

			if err = that.sendError(conn, ActionError, err); err != nil {
				return err
			}

			continue
		}

		if err = that.dispatch(conn, sessionID, &message); err != nil {
			return err
		}
	}
}

// dispatch runs the handler for the message and writes its reply.
// The returned error is a write failure; handler errors are sent to the client.
func (that *Server) dispatch(conn *websocket.Conn, sessionID string, message *Message) error {
	log := that.logger.With("method", "dispatch", "sessionID", sessionID, "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Warn("unknown action")
		return that.sendError(conn, message.Action, errUnknownAction(message.Action))
	}

	snapshot, err := handler(sessionID, message)
	if err != nil {
		log.Info("request rejected", "error", err)
		return that.sendError(conn, message.Action, err)
	}

	return that.sendGame(conn, message.Action, sessionID, snapshot)
}

func (that *Server) sendGame(conn *websocket.Conn, action, sessionID string, snapshot tictactoe.Snapshot) error {
	game := that.renderer.Render(snapshot)

	return that.send(conn, Response{
		Action: action,
		Payload: ResponsePayload{
			Session: sessionID,
			Game:    &game,
		},
	})
}

func (that *Server) sendError(conn *websocket.Conn, action string, err error) error {
	return that.send(conn, Response{
		Action:  action,
		Payload: ResponsePayload{Error: err.Error()},
	})
}

func (that *Server) send(conn *websocket.Conn, response Response) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return conn.WriteJSON(response)
}
