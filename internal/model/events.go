package model

import "encoding/json"

// EventKind discriminates messages on the game socket.
type EventKind string

const (
	// Client-originated events
	EventPlayerConnected    EventKind = "player_connected"
	EventPlayerDisconnected EventKind = "player_disconnected"
	EventStateUpdate        EventKind = "state_update"
	EventScoreUpdate        EventKind = "score_update"
	EventMatchStart         EventKind = "match_start"
	EventJoinLobby          EventKind = "join_lobby"
	EventChatMessage        EventKind = "chat_message"
	EventMatchEnd           EventKind = "match_end"

	// Server-originated events
	EventError       EventKind = "error"
	EventChatHistory EventKind = "chat_history"
	EventLobbyList   EventKind = "lobby_list"
)

// ClientMessage is the envelope for every inbound socket message. Only the
// fields relevant to the given event kind are populated; unknown fields
// are ignored.
type ClientMessage struct {
	Event    EventKind       `json:"event"`
	PlayerID string          `json:"player_id,omitempty"`
	Lobby    string          `json:"lobby,omitempty"`
	Message  string          `json:"message,omitempty"`
	Score    json.RawMessage `json:"score,omitempty"`
	State    json.RawMessage `json:"state,omitempty"`
}

// PlayerEvent echoes a player binding change back to the sender.
type PlayerEvent struct {
	Event    EventKind `json:"event"`
	PlayerID string    `json:"player_id"`
}

// LobbyEvent echoes a lobby mutation back to the sender.
type LobbyEvent struct {
	Event EventKind `json:"event"`
	Lobby string    `json:"lobby"`
}

// StateEvent returns a validated state payload to the sender.
type StateEvent struct {
	Event EventKind     `json:"event"`
	State *StatePayload `json:"state"`
}

// ScoreEvent echoes a score back to the sender verbatim.
type ScoreEvent struct {
	Event EventKind       `json:"event"`
	Score json.RawMessage `json:"score"`
}

// MatchEndEvent acknowledges a match_end.
type MatchEndEvent struct {
	Event EventKind `json:"event"`
}

// ErrorEvent reports a structural validation failure to the sender only.
type ErrorEvent struct {
	Event  EventKind `json:"event"`
	Detail string    `json:"detail"`
}

// ChatHistoryEvent delivers a lobby's chat history to a joining player.
type ChatHistoryEvent struct {
	Event    EventKind     `json:"event"`
	Lobby    string        `json:"lobby"`
	Messages []ChatMessage `json:"messages"`
}

// ChatBroadcastEvent fans a chat message out to connections. Tagged with
// the lobby name so clients can filter.
type ChatBroadcastEvent struct {
	Event   EventKind   `json:"event"`
	Lobby   string      `json:"lobby"`
	Message ChatMessage `json:"message"`
}

// LobbyListEvent is the directory broadcast: the set of lobby names at
// the moment of broadcast. It uses the eventName key rather than event,
// which clients rely on.
type LobbyListEvent struct {
	EventName EventKind `json:"eventName"`
	Lobbies   []string  `json:"lobbies"`
}
