// Package view turns engine snapshots into what a screen shows: glyphs, status text and move labels.
package view

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const (
	DefaultFirstGlyph  = "❌"
	DefaultSecondGlyph = "⭕"
)

// Glyphs maps marks to the text drawn in a square.
type Glyphs struct {
	First  string
	Second string
	Empty  string
}

// Move is one entry of the history list.
type Move struct {
	Step    int    `json:"step"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

// View is everything a presentation layer needs to draw one frame.
type View struct {
	Squares    [tictactoe.BoardSize]string `json:"squares"`
	Status     string                      `json:"status"`
	Winner     bool                        `json:"winner"`
	StepNumber int                         `json:"step_number"`
	Moves      []Move                      `json:"moves"`
}

type Renderer struct {
	glyphs Glyphs
}

func NewRenderer(glyphs Glyphs) *Renderer {
	if glyphs.First == "" {
		glyphs.First = DefaultFirstGlyph
	}

	if glyphs.Second == "" {
		glyphs.Second = DefaultSecondGlyph
	}

	return &Renderer{glyphs: glyphs}
}

func (that *Renderer) Render(snapshot tictactoe.Snapshot) View {
	result := View{
		Status:     that.StatusText(snapshot.Status),
		Winner:     snapshot.Status.IsWinner(),
		StepNumber: snapshot.StepNumber,
		Moves:      make([]Move, 0, len(snapshot.History)),
	}

	for i, mark := range snapshot.Board {
		result.Squares[i] = that.Glyph(mark)
	}

	for step := range snapshot.History {
		result.Moves = append(result.Moves, Move{
			Step:    step,
			Label:   MoveLabel(step),
			Current: step == snapshot.StepNumber,
		})
	}

	return result
}

func (that *Renderer) Glyph(mark tictactoe.Mark) string {
	switch mark {
	case tictactoe.First:
		return that.glyphs.First
	case tictactoe.Second:
		return that.glyphs.Second
	default:
		return that.glyphs.Empty
	}
}

func (that *Renderer) StatusText(status tictactoe.Status) string {
	if status.IsWinner() {
		return "Winner: " + that.Glyph(status.Mark)
	}

	return "Next player: " + that.Glyph(status.Mark)
}

// MoveLabel is the caption of the history button for step.
func MoveLabel(step int) string {
	if step == 0 {
		return "Go to game start"
	}

	return fmt.Sprintf("Go to move #%d", step)
}
