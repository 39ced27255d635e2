package session

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

func newTestManager() *Manager {
	return NewManager(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestManager_Create(t *testing.T) {
	// Given: a session manager
	manager := newTestManager()

	// When: two sessions are created
	firstID, firstState := manager.Create()
	secondID, _ := manager.Create()

	// Then: they get distinct ids and start on an empty board
	assert.NotEmpty(t, firstID)
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, 0, firstState.StepNumber)
	assert.Equal(t, tictactoe.NextTurn(tictactoe.First), firstState.Status)
	assert.Equal(t, 2, manager.Count())
}

func TestManager_Move(t *testing.T) {
	t.Run("Move is applied to its own session only", func(t *testing.T) {
		// Given: two sessions
		manager := newTestManager()
		id, _ := manager.Create()
		otherID, _ := manager.Create()

		// When: a move is made in the first one
		state, err := manager.Move(id, 4)

		// Then: only that game changes
		require.NoError(t, err)
		assert.Equal(t, tictactoe.First, state.Board[4])
		other, err := manager.State(otherID)
		require.NoError(t, err)
		assert.Equal(t, 0, other.StepNumber)
	})

	t.Run("Illegal move returns unchanged state", func(t *testing.T) {
		// Given: a session where cell 4 is taken
		manager := newTestManager()
		id, _ := manager.Create()
		before, err := manager.Move(id, 4)
		require.NoError(t, err)

		// When: cell 4 is played again
		after, err := manager.Move(id, 4)

		// Then: no error and no change
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Invalid cell", func(t *testing.T) {
		manager := newTestManager()
		id, _ := manager.Create()

		_, err := manager.Move(id, 9)

		require.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Unknown session", func(t *testing.T) {
		manager := newTestManager()

		_, err := manager.Move("missing", 0)

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestManager_Jump(t *testing.T) {
	t.Run("Jump", func(t *testing.T) {
		// Given: a session with two moves
		manager := newTestManager()
		id, _ := manager.Create()
		_, err := manager.Move(id, 0)
		require.NoError(t, err)
		_, err = manager.Move(id, 1)
		require.NoError(t, err)

		// When: jumping back to the start
		state, err := manager.Jump(id, 0)

		// Then: the empty board is shown and history is kept
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Board{}, state.Board)
		assert.Len(t, state.History, 3)
	})

	t.Run("Out of range", func(t *testing.T) {
		manager := newTestManager()
		id, _ := manager.Create()

		_, err := manager.Jump(id, 1)

		require.ErrorIs(t, err, apperror.ErrStepOutOfRange)
	})

	t.Run("Unknown session", func(t *testing.T) {
		manager := newTestManager()

		_, err := manager.Jump("missing", 0)

		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestManager_Close(t *testing.T) {
	// Given: an open session
	manager := newTestManager()
	id, _ := manager.Create()

	// When: it is closed twice
	manager.Close(id)
	manager.Close(id)

	// Then: it is gone
	_, err := manager.State(id)
	require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	assert.Equal(t, 0, manager.Count())
}

func TestManager_ConcurrentMoves(t *testing.T) {
	// Given: one session hit from many goroutines
	manager := newTestManager()
	id, _ := manager.Create()

	// When: every cell is played concurrently
	var wg sync.WaitGroup
	for cell := 0; cell < tictactoe.BoardSize; cell++ {
		wg.Add(1)
		go func(cell int) {
			defer wg.Done()
			_, err := manager.Move(id, cell)
			assert.NoError(t, err)
		}(cell)
	}
	wg.Wait()

	// Then: the history stays consistent with one mark per step
	state, err := manager.State(id)
	require.NoError(t, err)
	for step, turn := range state.History {
		assert.Equal(t, step, turn.Board.Occupied())
	}
	assert.Equal(t, len(state.History)-1, state.StepNumber)
}
