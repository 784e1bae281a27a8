package coordinator

import (
	"encoding/json"
	"log/slog"

	"github.com/chronosync/chronosync/internal/model"
)

// BroadcastAll serializes the event once and attempts delivery to every
// registered connection. A delivery failure on one connection is logged
// and ignored; the connection is not removed here, removal is the
// registry's job via its own disconnect detection.
func (c *Coordinator) BroadcastAll(event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("broadcast marshal failed", slog.Any("error", err))
		return
	}

	c.mu.Lock()
	c.sendAllLocked(payload)
	c.mu.Unlock()
}

func (c *Coordinator) sendAllLocked(payload []byte) {
	for _, s := range c.sessions {
		if err := s.sender.Send(payload); err != nil {
			c.logger.Debug("broadcast delivery failed",
				slog.String("connection_id", s.id),
				slog.Any("error", err))
		}
	}
}

// BroadcastDirectory pushes the current lobby-name list to every
// connection. The name list and the delivery set are captured under one
// critical section, so the payload always reflects the directory at the
// moment of broadcast.
func (c *Coordinator) BroadcastDirectory() {
	c.mu.Lock()
	c.broadcastDirectoryLocked()
	c.mu.Unlock()
}

func (c *Coordinator) broadcastDirectoryLocked() {
	event := model.LobbyListEvent{
		EventName: model.EventLobbyList,
		Lobbies:   c.lobbyNamesLocked(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("directory broadcast marshal failed", slog.Any("error", err))
		return
	}
	c.sendAllLocked(payload)
}

// BroadcastChat fans a chat message out to all connections, tagged with
// the lobby name. Fan-out is deliberately global rather than
// members-only, matching the protocol clients expect.
func (c *Coordinator) BroadcastChat(lobbyName string, msg model.ChatMessage) {
	c.BroadcastAll(model.ChatBroadcastEvent{
		Event:   model.EventChatMessage,
		Lobby:   lobbyName,
		Message: msg,
	})
}
