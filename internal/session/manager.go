package session

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

// Manager keeps one engine per connected client. Sessions live in memory only
// and are gone once closed or when the process exits.
type Manager struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*gameSession
}

// gameSession serializes access to an engine that may be reached from several goroutines.
type gameSession struct {
	mu     sync.Mutex
	engine *tictactoe.Engine
}

func NewManager(logger *slog.Logger) *Manager {
	return &Manager{
		logger:   logger.With("component", "session"),
		sessions: make(map[string]*gameSession),
	}
}

// Create starts a new game and returns its session id with the initial state.
func (that *Manager) Create() (string, tictactoe.Snapshot) {
	id := uuid.NewString()
	engine := tictactoe.NewEngine()

	that.mu.Lock()
	that.sessions[id] = &gameSession{engine: engine}
	that.mu.Unlock()

	that.logger.Debug("session created", "sessionID", id)

	return id, engine.Snapshot()
}

// Move applies a move in the session's game. Illegal moves leave the game unchanged
// and are not errors; only a cell outside the board is rejected.
func (that *Manager) Move(id string, cell int) (tictactoe.Snapshot, error) {
	log := that.logger.With("method", "Move", "sessionID", id)

	if !tictactoe.IsValidCell(cell) {
		return tictactoe.Snapshot{}, fmt.Errorf("%w: %d", apperror.ErrInvalidCell, cell)
	}

	var snapshot tictactoe.Snapshot
	err := that.withEngine(id, func(engine *tictactoe.Engine) error {
		if !engine.ApplyMove(cell) {
			log.Debug("move ignored", "cell", cell, "step", engine.StepNumber())
		}

		snapshot = engine.Snapshot()

		return nil
	})
	if err != nil {
		return tictactoe.Snapshot{}, err
	}

	return snapshot, nil
}

func (that *Manager) Jump(id string, step int) (tictactoe.Snapshot, error) {
	var snapshot tictactoe.Snapshot
	err := that.withEngine(id, func(engine *tictactoe.Engine) error {
		if err := engine.JumpTo(step); err != nil {
			return fmt.Errorf("failed to jump: %w", err)
		}

		snapshot = engine.Snapshot()

		return nil
	})
	if err != nil {
		return tictactoe.Snapshot{}, err
	}

	return snapshot, nil
}

func (that *Manager) State(id string) (tictactoe.Snapshot, error) {
	var snapshot tictactoe.Snapshot
	err := that.withEngine(id, func(engine *tictactoe.Engine) error {
		snapshot = engine.Snapshot()
		return nil
	})
	if err != nil {
		return tictactoe.Snapshot{}, err
	}

	return snapshot, nil
}

// Close drops the session. Closing an unknown session does nothing.
func (that *Manager) Close(id string) {
	that.mu.Lock()
	delete(that.sessions, id)
	that.mu.Unlock()

	that.logger.Debug("session closed", "sessionID", id)
}

// Count returns the number of open sessions.
func (that *Manager) Count() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.sessions)
}

func (that *Manager) withEngine(id string, fn func(engine *tictactoe.Engine) error) error {
	that.mu.RLock()
	gs, ok := that.sessions[id]
	that.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrSessionNotFound, id)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	return fn(gs.engine)
}
