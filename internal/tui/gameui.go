// Package tui draws the game in a terminal with tview: the board, a status line and the
// list of past moves that can be jumped to.
package tui

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

const boardSide = 3

type GameUI struct {
	app    *tview.Application
	flex   *tview.Flex
	board  *tview.Table
	status *tview.TextView
	moves  *tview.List
	hint   *tview.TextView

	engine   *tictactoe.Engine
	renderer *view.Renderer
	logger   *slog.Logger
}

// New builds the screen for engine. The screen redraws itself whenever the engine changes.
func New(logger *slog.Logger, engine *tictactoe.Engine, renderer *view.Renderer) *GameUI {
	g := &GameUI{
		app:      tview.NewApplication(),
		engine:   engine,
		renderer: renderer,
		logger:   logger.With("component", "tui"),
	}

	// Board (left panel)
	g.board = tview.NewTable()
	g.board.SetBorders(true)
	g.board.SetSelectable(true, true)
	for row := 0; row < boardSide; row++ {
		for col := 0; col < boardSide; col++ {
			g.board.SetCell(row, col, tview.NewTableCell("").
				SetAlign(tview.AlignCenter).
				SetExpansion(1))
		}
	}
	g.board.Select(0, 0)
	g.board.SetSelectedFunc(func(row, col int) {
		g.play(row*boardSide + col)
	})

	// Status line under the board
	g.status = tview.NewTextView()
	g.status.SetTextAlign(tview.AlignCenter)

	// Move history (right panel)
	g.moves = tview.NewList()
	g.moves.SetBorder(true)
	g.moves.SetTitle(" Moves ")
	g.moves.ShowSecondaryText(false)
	g.moves.SetHighlightFullLine(true)
	g.moves.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		g.jump(index)
	})

	g.hint = tview.NewTextView()
	g.hint.SetDynamicColors(true)
	g.hint.SetText("  [dimgray]1-9[-] mark  [dimgray]enter[-] select  [dimgray]tab[-] board/moves  [dimgray]q[-] quit")

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(g.board, 7, 0, true).
		AddItem(g.status, 1, 0, false)

	top := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(left, 25, 0, true).
		AddItem(g.moves, 0, 1, false)

	g.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 1, true).
		AddItem(g.hint, 1, 0, false)

	g.app.SetInputCapture(g.handleInput)

	engine.OnChange(g.refresh)
	g.refresh()

	return g
}

// Run blocks until the user quits.
func (g *GameUI) Run() error {
	return g.app.SetRoot(g.flex, true).SetFocus(g.board).Run()
}

func (g *GameUI) Stop() {
	g.app.Stop()
}

// handleInput processes keys that work regardless of which panel has focus.
func (g *GameUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		g.Stop()
		return nil
	case tcell.KeyTab:
		g.toggleFocus()
		return nil
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r == 'q':
			g.Stop()
			return nil
		case r >= '1' && r <= '9':
			g.play(int(r - '1'))
			return nil
		}
	}

	return event
}

func (g *GameUI) toggleFocus() {
	if g.app.GetFocus() == g.moves {
		g.app.SetFocus(g.board)
		return
	}

	g.app.SetFocus(g.moves)
}

func (g *GameUI) play(cell int) {
	if !g.engine.ApplyMove(cell) {
		g.logger.Debug("move ignored", "cell", cell, "step", g.engine.StepNumber())
	}
}

func (g *GameUI) jump(step int) {
	if err := g.engine.JumpTo(step); err != nil {
		g.logger.Warn("failed to jump", "step", step, "error", err)
	}
}

// refresh redraws every widget from the engine state.
func (g *GameUI) refresh() {
	v := g.renderer.Render(g.engine.Snapshot())

	for i, square := range v.Squares {
		g.board.GetCell(i/boardSide, i%boardSide).SetText(square)
	}

	g.status.SetText(v.Status)

	g.moves.Clear()
	for _, move := range v.Moves {
		g.moves.AddItem(move.Label, "", 0, nil)
	}
	g.moves.SetCurrentItem(v.StepNumber)
}
