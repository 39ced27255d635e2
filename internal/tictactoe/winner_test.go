package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Every line wins for either mark", func(t *testing.T) {
		for _, mark := range []Mark{First, Second} {
			for _, combo := range WinCombos {
				// Given: a board where only one line is filled with the same mark
				var board Board
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: the board is evaluated
				winner := Evaluate(board)

				// Then: the mark owning the line wins
				require.Equal(t, mark, winner, "combo %v", combo)
			}
		}
	})

	t.Run("Empty board", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: the board is evaluated
		winner := Evaluate(board)

		// Then: there is no winner
		assert.Equal(t, None, winner)
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board without a complete line
		board := Board{First, Second, First, None, Second, None, First, None, None}

		// When: the board is evaluated
		winner := Evaluate(board)

		// Then: there is no winner
		assert.Equal(t, None, winner)
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a full board where nobody completed a line
		board := Board{Second, First, Second, Second, First, First, First, Second, First}

		// When: the board is evaluated
		winner := Evaluate(board)

		// Then: there is no winner
		assert.Equal(t, None, winner)
	})

	t.Run("Mixed line is not a win", func(t *testing.T) {
		// Given: a row holding both marks
		board := Board{First, First, Second, None, None, None, None, None, None}

		// When: the board is evaluated
		winner := Evaluate(board)

		// Then: there is no winner
		assert.Equal(t, None, winner)
	})

	t.Run("Lines are checked in order", func(t *testing.T) {
		// Given: a board where the top row belongs to First and the bottom row to Second
		board := Board{First, First, First, None, None, None, Second, Second, Second}

		// When: the board is evaluated
		winner := Evaluate(board)

		// Then: the top row is checked first and decides
		assert.Equal(t, First, winner)
	})
}

func TestMark(t *testing.T) {
	assert.Equal(t, First, MarkForStep(0))
	assert.Equal(t, Second, MarkForStep(1))
	assert.Equal(t, First, MarkForStep(8))
}

func TestBoard(t *testing.T) {
	t.Run("With leaves the original untouched", func(t *testing.T) {
		// Given: an empty board
		var board Board

		// When: a mark is placed on a copy
		next := board.With(4, First)

		// Then: only the copy holds the mark
		assert.Equal(t, None, board[4])
		assert.Equal(t, First, next[4])
		assert.Equal(t, 0, board.Occupied())
		assert.Equal(t, 1, next.Occupied())
	})

	t.Run("IsEmpty rejects cells off the board", func(t *testing.T) {
		var board Board

		assert.True(t, board.IsEmpty(0))
		assert.True(t, board.IsEmpty(8))
		assert.False(t, board.IsEmpty(-1))
		assert.False(t, board.IsEmpty(9))
	})
}
