package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validState() map[string]any {
	return map[string]any{
		"player_id": "player1",
		"position":  map[string]any{"x": 1.0, "y": 2.0, "z": 3.0},
		"rotation":  map[string]any{"x": 0.0, "y": 90.0, "z": 0.0},
		"velocity":  map[string]any{"x": 0.0, "y": 0.0, "z": 0.0},
		"animation": "run",
		"sound":     "footstep",
		"objects": []any{
			map[string]any{"id": "obj1", "state": map[string]any{"active": true}},
		},
	}
}

func marshalState(t *testing.T, state map[string]any) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(state)
	require.NoError(t, err)
	return data
}

func TestParseStatePayloadValid(t *testing.T) {
	payload, err := ParseStatePayload(marshalState(t, validState()))
	require.NoError(t, err)

	assert.Equal(t, "player1", payload.PlayerID)
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, payload.Position)
	assert.Equal(t, Vector3{X: 0, Y: 90, Z: 0}, payload.Rotation)
	assert.Equal(t, "run", payload.Animation)
	assert.Equal(t, "footstep", payload.Sound)
	require.Len(t, payload.Objects, 1)
	assert.Equal(t, "obj1", payload.Objects[0].ID)
	assert.Equal(t, map[string]any{"active": true}, payload.Objects[0].State)
}

func TestParseStatePayloadEmptyObjectsAllowed(t *testing.T) {
	state := validState()
	state["objects"] = []any{}

	payload, err := ParseStatePayload(marshalState(t, state))
	require.NoError(t, err)
	assert.Empty(t, payload.Objects)
}

func TestParseStatePayloadIgnoresUnknownFields(t *testing.T) {
	state := validState()
	state["extra"] = "ignored"

	_, err := ParseStatePayload(marshalState(t, state))
	require.NoError(t, err)
}

func TestParseStatePayloadMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
		detail string
	}{
		{
			name:   "missing player_id",
			mutate: func(s map[string]any) { delete(s, "player_id") },
			detail: `state field "player_id" is required`,
		},
		{
			name:   "missing position",
			mutate: func(s map[string]any) { delete(s, "position") },
			detail: `state field "position" is required`,
		},
		{
			name:   "missing animation",
			mutate: func(s map[string]any) { delete(s, "animation") },
			detail: `state field "animation" is required`,
		},
		{
			name:   "missing sound",
			mutate: func(s map[string]any) { delete(s, "sound") },
			detail: `state field "sound" is required`,
		},
		{
			name:   "missing objects",
			mutate: func(s map[string]any) { delete(s, "objects") },
			detail: `state field "objects" is required`,
		},
		{
			name: "position missing z",
			mutate: func(s map[string]any) {
				s["position"] = map[string]any{"x": 1.0, "y": 2.0}
			},
			detail: `position missing field "z"`,
		},
		{
			name: "velocity missing x",
			mutate: func(s map[string]any) {
				s["velocity"] = map[string]any{"y": 0.0, "z": 0.0}
			},
			detail: `velocity missing field "x"`,
		},
		{
			name: "object missing id",
			mutate: func(s map[string]any) {
				s["objects"] = []any{map[string]any{"state": map[string]any{}}}
			},
			detail: `objects[0] missing field "id"`,
		},
		{
			name: "object missing state",
			mutate: func(s map[string]any) {
				s["objects"] = []any{map[string]any{"id": "obj1"}}
			},
			detail: `objects[0] missing field "state"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := validState()
			tt.mutate(state)

			_, err := ParseStatePayload(marshalState(t, state))
			require.Error(t, err)
			assert.Equal(t, tt.detail, err.Error())
		})
	}
}

func TestParseStatePayloadWrongShapes(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{
			name:   "position is a string",
			mutate: func(s map[string]any) { s["position"] = "nope" },
		},
		{
			name: "coordinate is a string",
			mutate: func(s map[string]any) {
				s["rotation"] = map[string]any{"x": "0", "y": 0.0, "z": 0.0}
			},
		},
		{
			name:   "objects is not a sequence",
			mutate: func(s map[string]any) { s["objects"] = map[string]any{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := validState()
			tt.mutate(state)

			_, err := ParseStatePayload(marshalState(t, state))
			require.Error(t, err)
		})
	}
}

func TestParseStatePayloadNilState(t *testing.T) {
	_, err := ParseStatePayload(nil)
	require.Error(t, err)
}
