package model

import "errors"

// Common errors used across the application
var (
	// Lobby errors
	ErrLobbyNotFound = errors.New("lobby not found")

	// Registry errors
	ErrPlayerAlreadyBound    = errors.New("player already bound to another connection")
	ErrConnectionNotRegistered = errors.New("connection is not registered")

	// Credential errors
	ErrCredentialNotFound = errors.New("credential not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
