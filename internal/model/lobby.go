package model

// ChatMessage is an immutable chat record. Timestamp is an ISO-8601 UTC
// string, generated when the message is appended. PlayerID is empty if the
// sender never bound an identity.
type ChatMessage struct {
	PlayerID  string `json:"player_id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Lobby is a named group of players sharing a match and chat history.
// Members are insertion-ordered and not deduplicated; a player who starts
// a match and then joins the same lobby appears twice. A lobby exists from
// the first match_start naming it until its member list becomes empty, at
// which point it is deleted together with its chat history.
type Lobby struct {
	Name    string
	Members []PlayerID
	Chat    []ChatMessage
}

// HasMember reports whether the player appears in the member list.
func (l *Lobby) HasMember(playerID PlayerID) bool {
	for _, m := range l.Members {
		if m == playerID {
			return true
		}
	}
	return false
}
