package tictactoe

type StatusKind uint8

const (
	StatusNextTurn StatusKind = iota
	StatusWinner
)

// Status is what the status line shows: either the winner or whose turn is next.
type Status struct {
	Kind StatusKind
	Mark Mark
}

func Winner(mark Mark) Status {
	return Status{Kind: StatusWinner, Mark: mark}
}

func NextTurn(mark Mark) Status {
	return Status{Kind: StatusNextTurn, Mark: mark}
}

func (that Status) IsWinner() bool {
	return that.Kind == StatusWinner
}
