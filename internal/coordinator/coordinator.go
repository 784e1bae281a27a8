package coordinator

import (
	"log/slog"
	"sync"

	"github.com/chronosync/chronosync/internal/dependencies/clock"
	"github.com/chronosync/chronosync/internal/dependencies/random"
	"github.com/chronosync/chronosync/internal/model"
)

// Sender delivers one serialized event to a connection. Implementations
// must not block; delivery failure is reported via the error and treated
// as best-effort by the coordinator.
type Sender interface {
	Send(payload []byte) error
}

// Session is the coordinator's handle for one registered connection. The
// bound player identity is guarded by the coordinator's lock; read it via
// Coordinator.PlayerID.
type Session struct {
	id       string
	playerID model.PlayerID
	sender   Sender
}

// ID returns the opaque connection handle.
func (s *Session) ID() string {
	return s.id
}

// Coordinator owns all shared session state: the connection registry, the
// lobby directory and per-lobby chat history. Every read-modify-write
// sequence runs under one lock; connection goroutines never touch the
// maps directly.
type Coordinator struct {
	logger *slog.Logger
	clock  clock.Clock
	random random.Random

	mu       sync.Mutex
	sessions map[string]*Session
	bound    map[model.PlayerID]*Session
	lobbies  map[string]*model.Lobby
}

// New creates a Coordinator with no connections and no lobbies.
func New(clk clock.Clock, rnd random.Random, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		logger:   logger.With(slog.String("component", "coordinator")),
		clock:    clk,
		random:   rnd,
		sessions: make(map[string]*Session),
		bound:    make(map[model.PlayerID]*Session),
		lobbies:  make(map[string]*model.Lobby),
	}
}

// Register adds a connection at accept time. The returned session has no
// player identity until Bind succeeds.
func (c *Coordinator) Register(sender Sender) *Session {
	s := &Session{
		id:     c.random.ID("conn_"),
		sender: sender,
	}

	c.mu.Lock()
	c.sessions[s.id] = s
	count := len(c.sessions)
	c.mu.Unlock()

	c.logger.Info("connection registered",
		slog.String("connection_id", s.id),
		slog.Int("total_connections", count))
	return s
}

// Bind associates a player identity with a session. Binding a second
// session to an identity that is still bound elsewhere is rejected with
// ErrPlayerAlreadyBound; the existing binding is untouched. Rebinding the
// same session overwrites its prior identity.
func (c *Coordinator) Bind(s *Session, playerID model.PlayerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.sessions[s.id]; !ok {
		return model.ErrConnectionNotRegistered
	}
	if other, ok := c.bound[playerID]; ok && other != s {
		return model.ErrPlayerAlreadyBound
	}

	if s.playerID != "" {
		delete(c.bound, s.playerID)
	}
	s.playerID = playerID
	c.bound[playerID] = s
	return nil
}

// Unbind clears a session's player identity without removing the
// connection. Returns the identity that was bound, if any.
func (c *Coordinator) Unbind(s *Session) model.PlayerID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unbindLocked(s)
}

func (c *Coordinator) unbindLocked(s *Session) model.PlayerID {
	prev := s.playerID
	if prev != "" && c.bound[prev] == s {
		delete(c.bound, prev)
	}
	s.playerID = ""
	return prev
}

// Deregister removes a connection entirely. Safe to call for a session
// that was never bound, and safe to call more than once.
func (c *Coordinator) Deregister(s *Session) {
	c.mu.Lock()
	c.unbindLocked(s)
	delete(c.sessions, s.id)
	count := len(c.sessions)
	c.mu.Unlock()

	c.logger.Info("connection deregistered",
		slog.String("connection_id", s.id),
		slog.Int("total_connections", count))
}

// PlayerID returns the identity currently bound to the session, or empty.
func (c *Coordinator) PlayerID(s *Session) model.PlayerID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return s.playerID
}

// ConnectionCount returns the number of registered connections.
func (c *Coordinator) ConnectionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Disconnect runs the full cleanup path for a closing connection: unbind
// identity, leave all lobbies, deregister, then broadcast the directory.
// Idempotent with respect to the registry, so an explicit
// player_disconnected event followed by transport close is harmless.
func (c *Coordinator) Disconnect(s *Session) {
	c.mu.Lock()
	playerID := c.unbindLocked(s)
	if playerID != "" {
		c.leaveAllLocked(playerID)
	}
	delete(c.sessions, s.id)
	c.broadcastDirectoryLocked()
	c.mu.Unlock()

	c.logger.Info("connection closed",
		slog.String("connection_id", s.id),
		slog.String("player_id", string(playerID)))
}
