package coordinator

import (
	"sort"
	"time"

	"github.com/chronosync/chronosync/internal/model"
)

// StartMatch creates the lobby if absent, with empty chat history, and
// appends the player to its member list. Members are insertion-ordered
// and not deduplicated.
func (c *Coordinator) StartMatch(lobbyName string, playerID model.PlayerID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby, ok := c.lobbies[lobbyName]
	if !ok {
		lobby = &model.Lobby{Name: lobbyName, Chat: []model.ChatMessage{}}
		c.lobbies[lobbyName] = lobby
	}
	lobby.Members = append(lobby.Members, playerID)
}

// Join appends the player to an existing lobby's member list and returns
// the lobby's chat history for replay. Returns ErrLobbyNotFound if the
// lobby does not exist.
func (c *Coordinator) Join(lobbyName string, playerID model.PlayerID) ([]model.ChatMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby, ok := c.lobbies[lobbyName]
	if !ok {
		return nil, model.ErrLobbyNotFound
	}
	lobby.Members = append(lobby.Members, playerID)

	history := make([]model.ChatMessage, len(lobby.Chat))
	copy(history, lobby.Chat)
	return history, nil
}

// LeaveAll removes every occurrence of the player from every lobby. A
// lobby whose member list becomes empty is deleted together with its
// chat history.
func (c *Coordinator) LeaveAll(playerID model.PlayerID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.leaveAllLocked(playerID)
}

func (c *Coordinator) leaveAllLocked(playerID model.PlayerID) {
	for name, lobby := range c.lobbies {
		remaining := lobby.Members[:0]
		for _, m := range lobby.Members {
			if m != playerID {
				remaining = append(remaining, m)
			}
		}
		lobby.Members = remaining
		if len(lobby.Members) == 0 {
			delete(c.lobbies, name)
		}
	}
}

// PostChat appends a chat message with a UTC timestamp and returns the
// appended record. Silently a no-op if the lobby does not exist or the
// text is empty.
func (c *Coordinator) PostChat(lobbyName string, playerID model.PlayerID, text string) (model.ChatMessage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby, ok := c.lobbies[lobbyName]
	if !ok || text == "" {
		return model.ChatMessage{}, false
	}

	msg := model.ChatMessage{
		PlayerID:  string(playerID),
		Message:   text,
		Timestamp: c.clock.Now().UTC().Format(time.RFC3339Nano),
	}
	lobby.Chat = append(lobby.Chat, msg)
	return msg, true
}

// LobbyNames returns the current lobby names, sorted for determinism.
func (c *Coordinator) LobbyNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lobbyNamesLocked()
}

func (c *Coordinator) lobbyNamesLocked() []string {
	names := make([]string, 0, len(c.lobbies))
	for name := range c.lobbies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lobby returns a snapshot copy of the named lobby, or nil if it does
// not exist.
func (c *Coordinator) Lobby(lobbyName string) *model.Lobby {
	c.mu.Lock()
	defer c.mu.Unlock()

	lobby, ok := c.lobbies[lobbyName]
	if !ok {
		return nil
	}
	snapshot := &model.Lobby{
		Name:    lobby.Name,
		Members: make([]model.PlayerID, len(lobby.Members)),
		Chat:    make([]model.ChatMessage, len(lobby.Chat)),
	}
	copy(snapshot.Members, lobby.Members)
	copy(snapshot.Chat, lobby.Chat)
	return snapshot
}
