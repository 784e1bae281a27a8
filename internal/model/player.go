package model

import "time"

// PlayerID is the opaque identifier a client supplies when it binds a
// connection. It is not authenticated against the credential store;
// uniqueness within a process run is the caller's responsibility.
type PlayerID string

// Credential is a registered username/password pair. Registration and
// verification are plain request/response operations, separate from the
// realtime socket protocol.
type Credential struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
