package websocket

import (
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Create() (string, tictactoe.Snapshot) {
	args := m.Called()
	return args.String(0), args.Get(1).(tictactoe.Snapshot)
}

func (m *mockSessions) Move(id string, cell int) (tictactoe.Snapshot, error) {
	args := m.Called(id, cell)
	return args.Get(0).(tictactoe.Snapshot), args.Error(1)
}

func (m *mockSessions) Jump(id string, step int) (tictactoe.Snapshot, error) {
	args := m.Called(id, step)
	return args.Get(0).(tictactoe.Snapshot), args.Error(1)
}

func (m *mockSessions) State(id string) (tictactoe.Snapshot, error) {
	args := m.Called(id)
	return args.Get(0).(tictactoe.Snapshot), args.Error(1)
}

func (m *mockSessions) Close(id string) {
	m.Called(id)
}
