package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

// Engine holds the move history of one game and the step currently displayed.
// It is not safe for concurrent use.
type Engine struct {
	history    []Turn
	stepNumber int
	onChange   func()
}

// Snapshot is a read-only copy of the engine state.
type Snapshot struct {
	History    []Turn
	StepNumber int
	Board      Board
	Status     Status
}

func NewEngine() *Engine {
	return &Engine{
		history: []Turn{{}},
	}
}

// OnChange registers fn to be called after every applied move or jump.
func (that *Engine) OnChange(fn func()) {
	that.onChange = fn
}

// ApplyMove places the next mark at cell. The call does nothing and returns false
// when the current board is already won, the cell is occupied or the cell is off the board.
// Any history after the current step is discarded before the new turn is appended.
func (that *Engine) ApplyMove(cell int) bool {
	current := that.CurrentBoard()

	if Evaluate(current) != None || !current.IsEmpty(cell) {
		return false
	}

	next := current.With(cell, that.NextMark())

	that.history = append(that.history[:that.stepNumber+1:that.stepNumber+1], Turn{Board: next})
	that.stepNumber = len(that.history) - 1

	that.changed()

	return true
}

// JumpTo makes step the current step. History is left intact until the next move.
func (that *Engine) JumpTo(step int) error {
	if step < 0 || step >= len(that.history) {
		return fmt.Errorf("%w: %d not in [0, %d)", apperror.ErrStepOutOfRange, step, len(that.history))
	}

	that.stepNumber = step

	that.changed()

	return nil
}

func (that *Engine) CurrentStatus() Status {
	if winner := Evaluate(that.CurrentBoard()); winner != None {
		return Winner(winner)
	}

	return NextTurn(that.NextMark())
}

func (that *Engine) NextMark() Mark {
	return MarkForStep(that.stepNumber)
}

func (that *Engine) StepNumber() int {
	return that.stepNumber
}

func (that *Engine) CurrentBoard() Board {
	return that.history[that.stepNumber].Board
}

// History returns a copy of every turn, starting with the empty board.
func (that *Engine) History() []Turn {
	history := make([]Turn, len(that.history))
	copy(history, that.history)

	return history
}

func (that *Engine) Snapshot() Snapshot {
	return Snapshot{
		History:    that.History(),
		StepNumber: that.stepNumber,
		Board:      that.CurrentBoard(),
		Status:     that.CurrentStatus(),
	}
}

func (that *Engine) changed() {
	if that.onChange != nil {
		that.onChange()
	}
}
