package tictactoe

// BoardSize is the number of cells on the board, indexed 0..8 in row-major order.
const BoardSize = 9

// Mark is the content of a single cell. None marks an empty cell.
type Mark uint8

const (
	None Mark = iota
	First
	Second
)

func (m Mark) String() string {
	switch m {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

// MarkForStep returns the mark to play at the given step: First on even steps, Second on odd.
func MarkForStep(step int) Mark {
	if step%2 == 0 {
		return First
	}
	return Second
}

// Board is a 3x3 grid. It is an array, so every copy is independent of the original.
type Board [BoardSize]Mark

// IsValidCell reports whether cell indexes a square on the board.
func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// IsEmpty reports whether the cell holds no mark. Cells outside the board are never empty.
func (b Board) IsEmpty(cell int) bool {
	return IsValidCell(cell) && b[cell] == None
}

// With returns a copy of the board with mark placed at cell.
func (b Board) With(cell int, mark Mark) Board {
	b[cell] = mark
	return b
}

// Occupied counts the cells holding a mark.
func (b Board) Occupied() int {
	count := 0
	for _, cell := range b {
		if cell != None {
			count++
		}
	}
	return count
}

// Turn is the state of the game after a number of moves.
type Turn struct {
	Board Board
}
