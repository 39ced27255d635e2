package websocket

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

func (that *Server) handleState(sessionID string, _ *Message) (tictactoe.Snapshot, error) {
	snapshot, err := that.sessions.State(sessionID)
	if err != nil {
		return tictactoe.Snapshot{}, fmt.Errorf("failed to get state: %w", err)
	}

	return snapshot, nil
}

func (that *Server) handleMove(sessionID string, msg *Message) (tictactoe.Snapshot, error) {
	var payload MovePayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return tictactoe.Snapshot{}, fmt.Errorf("%w: %w", apperror.ErrInvalidCell, err)
	}

	if payload.Cell == nil {
		return tictactoe.Snapshot{}, fmt.Errorf("%w: cell is required", apperror.ErrInvalidCell)
	}

	snapshot, err := that.sessions.Move(sessionID, *payload.Cell)
	if err != nil {
		return tictactoe.Snapshot{}, fmt.Errorf("failed to make move: %w", err)
	}

	return snapshot, nil
}

func (that *Server) handleJump(sessionID string, msg *Message) (tictactoe.Snapshot, error) {
	var payload JumpPayload
	if err := decodePayload(msg.Payload, &payload); err != nil {
		return tictactoe.Snapshot{}, fmt.Errorf("%w: %w", apperror.ErrStepOutOfRange, err)
	}

	if payload.Step == nil {
		return tictactoe.Snapshot{}, fmt.Errorf("%w: step is required", apperror.ErrStepOutOfRange)
	}

	snapshot, err := that.sessions.Jump(sessionID, *payload.Step)
	if err != nil {
		return tictactoe.Snapshot{}, fmt.Errorf("failed to jump: %w", err)
	}

	return snapshot, nil
}

func errUnknownAction(action string) error {
	return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, action)
}
