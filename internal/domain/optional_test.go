package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalUnmarshal(t *testing.T) {
	t.Run("absent field", func(t *testing.T) {
		var req UpdateRsvpRequest
		require.NoError(t, json.Unmarshal([]byte(`{"will_attend": true}`), &req))
		assert.False(t, req.Message.Set)
		assert.Nil(t, req.Message.Ptr())
	})

	t.Run("explicit null", func(t *testing.T) {
		var req UpdateRsvpRequest
		require.NoError(t, json.Unmarshal([]byte(`{"message": null}`), &req))
		assert.True(t, req.Message.Set)
		assert.False(t, req.Message.Valid)
		assert.Nil(t, req.Message.Ptr())
	})

	t.Run("value", func(t *testing.T) {
		var req UpdateRsvpRequest
		require.NoError(t, json.Unmarshal([]byte(`{"message": "see you there"}`), &req))
		assert.True(t, req.Message.Set)
		assert.True(t, req.Message.Valid)
		require.NotNil(t, req.Message.Ptr())
		assert.Equal(t, "see you there", *req.Message.Ptr())
	})

	t.Run("empty string is a value, not a clear", func(t *testing.T) {
		var req UpdateRsvpRequest
		require.NoError(t, json.Unmarshal([]byte(`{"message": ""}`), &req))
		assert.True(t, req.Message.Valid)
		require.NotNil(t, req.Message.Ptr())
		assert.Equal(t, "", *req.Message.Ptr())
	})

	t.Run("wrong type errors", func(t *testing.T) {
		var req UpdateRsvpRequest
		assert.Error(t, json.Unmarshal([]byte(`{"message": 7}`), &req))
	})

	t.Run("null resets value on reuse", func(t *testing.T) {
		o := Optional[string]{Set: true, Valid: true, Value: "old"}
		require.NoError(t, o.UnmarshalJSON([]byte(`null`)))
		assert.True(t, o.Set)
		assert.False(t, o.Valid)
		assert.Empty(t, o.Value)
	})
}
