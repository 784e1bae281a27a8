package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/chronosync/chronosync/internal/coordinator"
	"github.com/chronosync/chronosync/internal/model"
)

// Handler upgrades game socket requests and runs the per-connection
// event loop against the coordinator.
type Handler struct {
	coordinator *coordinator.Coordinator
	logger      *slog.Logger
	upgrader    websocket.Upgrader
}

// NewHandler creates a game socket handler.
func NewHandler(coord *coordinator.Coordinator, logger *slog.Logger) *Handler {
	return &Handler{
		coordinator: coord,
		logger:      logger.With(slog.String("component", "ws")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP handles the websocket endpoint. One goroutine reads and
// dispatches events sequentially; a second drains the outbound queue.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	conn := newConn(wsConn)
	session := h.coordinator.Register(conn)

	go conn.writePump()
	h.readLoop(conn, session)
}

// readLoop processes inbound events one at a time until the transport
// closes, then runs the cleanup path. Cleanup is reached exactly once
// per connection regardless of how it terminated.
func (h *Handler) readLoop(conn *Conn, session *coordinator.Session) {
	defer func() {
		h.coordinator.Disconnect(session)
		conn.close()
	}()

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("read failed",
					slog.String("connection_id", session.ID()),
					slog.Any("error", err))
			}
			return
		}
		h.dispatch(conn, session, data)
	}
}

func (h *Handler) dispatch(conn *Conn, session *coordinator.Session, data []byte) {
	var msg model.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		h.logger.Debug("unparseable message dropped",
			slog.String("connection_id", session.ID()))
		return
	}

	switch msg.Event {
	case model.EventPlayerConnected:
		h.handlePlayerConnected(conn, session, msg)

	case model.EventPlayerDisconnected:
		h.handlePlayerDisconnected(conn, session)

	case model.EventStateUpdate:
		h.handleStateUpdate(conn, msg)

	case model.EventScoreUpdate:
		h.reply(conn, model.ScoreEvent{Event: model.EventScoreUpdate, Score: msg.Score})

	case model.EventMatchStart:
		h.handleMatchStart(conn, session, msg)

	case model.EventJoinLobby:
		h.handleJoinLobby(conn, session, msg)

	case model.EventChatMessage:
		h.handleChatMessage(session, msg)

	case model.EventMatchEnd:
		h.reply(conn, model.MatchEndEvent{Event: model.EventMatchEnd})

	default:
		h.logger.Debug("unrecognized event dropped",
			slog.String("connection_id", session.ID()),
			slog.String("event", string(msg.Event)))
	}
}

func (h *Handler) handlePlayerConnected(conn *Conn, session *coordinator.Session, msg model.ClientMessage) {
	if msg.PlayerID != "" {
		if err := h.coordinator.Bind(session, model.PlayerID(msg.PlayerID)); err != nil {
			h.reply(conn, model.ErrorEvent{
				Event:  model.EventError,
				Detail: "player_id " + msg.PlayerID + " is already connected",
			})
			return
		}
	}
	h.reply(conn, model.PlayerEvent{Event: model.EventPlayerConnected, PlayerID: msg.PlayerID})
	h.coordinator.BroadcastDirectory()
}

func (h *Handler) handlePlayerDisconnected(conn *Conn, session *coordinator.Session) {
	playerID := h.coordinator.Unbind(session)
	if playerID != "" {
		h.coordinator.LeaveAll(playerID)
	}
	h.reply(conn, model.PlayerEvent{Event: model.EventPlayerDisconnected, PlayerID: string(playerID)})
	h.coordinator.BroadcastDirectory()
}

func (h *Handler) handleStateUpdate(conn *Conn, msg model.ClientMessage) {
	state, err := model.ParseStatePayload(msg.State)
	if err != nil {
		h.reply(conn, model.ErrorEvent{Event: model.EventError, Detail: err.Error()})
		return
	}
	h.reply(conn, model.StateEvent{Event: model.EventStateUpdate, State: state})
}

func (h *Handler) handleMatchStart(conn *Conn, session *coordinator.Session, msg model.ClientMessage) {
	if msg.Lobby == "" {
		return
	}
	h.coordinator.StartMatch(msg.Lobby, h.coordinator.PlayerID(session))
	h.reply(conn, model.LobbyEvent{Event: model.EventMatchStart, Lobby: msg.Lobby})
	h.coordinator.BroadcastDirectory()
}

func (h *Handler) handleJoinLobby(conn *Conn, session *coordinator.Session, msg model.ClientMessage) {
	if msg.Lobby == "" {
		return
	}
	history, err := h.coordinator.Join(msg.Lobby, h.coordinator.PlayerID(session))
	if err != nil {
		// No such lobby: dropped without an error event.
		return
	}
	h.reply(conn, model.LobbyEvent{Event: model.EventJoinLobby, Lobby: msg.Lobby})
	h.coordinator.BroadcastDirectory()
	h.reply(conn, model.ChatHistoryEvent{
		Event:    model.EventChatHistory,
		Lobby:    msg.Lobby,
		Messages: history,
	})
}

func (h *Handler) handleChatMessage(session *coordinator.Session, msg model.ClientMessage) {
	record, ok := h.coordinator.PostChat(msg.Lobby, h.coordinator.PlayerID(session), msg.Message)
	if !ok {
		return
	}
	h.coordinator.BroadcastChat(msg.Lobby, record)
}

func (h *Handler) reply(conn *Conn, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("reply marshal failed", slog.Any("error", err))
		return
	}
	if err := conn.Send(payload); err != nil {
		h.logger.Debug("reply delivery failed", slog.Any("error", err))
	}
}
