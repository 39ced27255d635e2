package websocket

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/rocketscienceinc/tictactoe-history/internal/view"
)

const (
	ActionState = "game:state"
	ActionMove  = "game:move"
	ActionJump  = "game:jump"
	ActionError = "error"
)

// Message is the envelope sent by the client.
type Message struct {
	Action  string         `json:"action"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Response is the envelope sent back to the client.
type Response struct {
	Action  string          `json:"action"`
	Payload ResponsePayload `json:"payload"`
}

type ResponsePayload struct {
	Session string     `json:"session,omitempty"`
	Game    *view.View `json:"game,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type MovePayload struct {
	Cell *int `mapstructure:"cell"`
}

type JumpPayload struct {
	Step *int `mapstructure:"step"`
}

// decodePayload copies the loosely typed payload into target.
func decodePayload(payload map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(rejectFractions),
		ErrorUnused: true,
		Result:      target,
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err = decoder.Decode(payload); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	return nil
}

// rejectFractions stops mapstructure from truncating JSON numbers such as 2.5 into integers.
func rejectFractions(from reflect.Type, _ reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}

	value := reflect.ValueOf(data).Float()
	if math.IsInf(value, 0) || math.Trunc(value) != value {
		return nil, fmt.Errorf("%v is not a whole number", data)
	}

	return data, nil
}
