package model

import (
	"encoding/json"
	"fmt"
)

// Vector3 is a 3D vector used for position, rotation and velocity.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ObjectState describes one synchronized world object.
type ObjectState struct {
	ID    string         `json:"id"`
	State map[string]any `json:"state"`
}

// StatePayload is the structural contract for a player's synchronized
// transform, animation, sound and object states. Validation is shape-only;
// no semantic checks (numeric ranges etc.) are performed.
type StatePayload struct {
	PlayerID  string        `json:"player_id"`
	Position  Vector3       `json:"position"`
	Rotation  Vector3       `json:"rotation"`
	Velocity  Vector3       `json:"velocity"`
	Animation string        `json:"animation"`
	Sound     string        `json:"sound"`
	Objects   []ObjectState `json:"objects"`
}

// Intermediate forms with pointer fields so that absent keys are
// distinguishable from zero values.

type rawVector struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

type rawObject struct {
	ID    *string        `json:"id"`
	State map[string]any `json:"state"`
}

type rawStatePayload struct {
	PlayerID  *string      `json:"player_id"`
	Position  *rawVector   `json:"position"`
	Rotation  *rawVector   `json:"rotation"`
	Velocity  *rawVector   `json:"velocity"`
	Animation *string      `json:"animation"`
	Sound     *string      `json:"sound"`
	Objects   *[]rawObject `json:"objects"`
}

// ParseStatePayload validates the structural shape of a state_update
// payload and returns the parsed payload. Unknown fields are ignored. A
// missing field or a field of the wrong shape yields an error describing
// the offending field.
func ParseStatePayload(raw json.RawMessage) (*StatePayload, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("state is required")
	}

	var rp rawStatePayload
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, fmt.Errorf("state is not a valid object: %w", err)
	}

	if rp.PlayerID == nil {
		return nil, fmt.Errorf("state field %q is required", "player_id")
	}
	if rp.Animation == nil {
		return nil, fmt.Errorf("state field %q is required", "animation")
	}
	if rp.Sound == nil {
		return nil, fmt.Errorf("state field %q is required", "sound")
	}

	position, err := parseVector("position", rp.Position)
	if err != nil {
		return nil, err
	}
	rotation, err := parseVector("rotation", rp.Rotation)
	if err != nil {
		return nil, err
	}
	velocity, err := parseVector("velocity", rp.Velocity)
	if err != nil {
		return nil, err
	}

	if rp.Objects == nil {
		return nil, fmt.Errorf("state field %q is required", "objects")
	}
	objects := make([]ObjectState, 0, len(*rp.Objects))
	for i, obj := range *rp.Objects {
		if obj.ID == nil {
			return nil, fmt.Errorf("objects[%d] missing field %q", i, "id")
		}
		if obj.State == nil {
			return nil, fmt.Errorf("objects[%d] missing field %q", i, "state")
		}
		objects = append(objects, ObjectState{ID: *obj.ID, State: obj.State})
	}

	return &StatePayload{
		PlayerID:  *rp.PlayerID,
		Position:  position,
		Rotation:  rotation,
		Velocity:  velocity,
		Animation: *rp.Animation,
		Sound:     *rp.Sound,
		Objects:   objects,
	}, nil
}

func parseVector(field string, rv *rawVector) (Vector3, error) {
	if rv == nil {
		return Vector3{}, fmt.Errorf("state field %q is required", field)
	}
	if rv.X == nil {
		return Vector3{}, fmt.Errorf("%s missing field %q", field, "x")
	}
	if rv.Y == nil {
		return Vector3{}, fmt.Errorf("%s missing field %q", field, "y")
	}
	if rv.Z == nil {
		return Vector3{}, fmt.Errorf("%s missing field %q", field, "z")
	}
	return Vector3{X: *rv.X, Y: *rv.Y, Z: *rv.Z}, nil
}
