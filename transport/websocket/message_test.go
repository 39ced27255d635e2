package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePayload(t *testing.T) {
	decode := func(t *testing.T, raw string) (MovePayload, error) {
		t.Helper()

		var message Message
		require.NoError(t, json.Unmarshal([]byte(raw), &message))

		var payload MovePayload
		err := decodePayload(message.Payload, &payload)

		return payload, err
	}

	t.Run("Whole number", func(t *testing.T) {
		payload, err := decode(t, `{"action":"game:move","payload":{"cell":2}}`)

		require.NoError(t, err)
		require.NotNil(t, payload.Cell)
		assert.Equal(t, 2, *payload.Cell)
	})

	t.Run("Whole number written as float", func(t *testing.T) {
		payload, err := decode(t, `{"action":"game:move","payload":{"cell":4.0}}`)

		require.NoError(t, err)
		require.NotNil(t, payload.Cell)
		assert.Equal(t, 4, *payload.Cell)
	})

	t.Run("Fraction is rejected", func(t *testing.T) {
		payload, err := decode(t, `{"action":"game:move","payload":{"cell":2.7}}`)

		require.Error(t, err)
		assert.Nil(t, payload.Cell)
	})

	t.Run("Missing cell", func(t *testing.T) {
		payload, err := decode(t, `{"action":"game:move","payload":{}}`)

		require.NoError(t, err)
		assert.Nil(t, payload.Cell)
	})
}
