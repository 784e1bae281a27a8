package cli

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/chronosync/chronosync/internal/model"
)

func newConnectCmd() *cobra.Command {
	var (
		playerID string
		lobby    string
		start    bool
	)

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Open an interactive game socket session",
		Long: `connect opens a game socket, binds the given player identifier and
streams server events to stdout. Lines typed on stdin are sent as chat
messages to the given lobby. Use --start to create the lobby, otherwise
the session joins an existing one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if playerID == "" {
				return fmt.Errorf("--player is required")
			}

			conn, _, err := websocket.DefaultDialer.Dial(client.WebsocketURL(), nil)
			if err != nil {
				return fmt.Errorf("dial failed: %w", err)
			}
			defer func() { _ = conn.Close() }()

			send := func(msg model.ClientMessage) error {
				return conn.WriteJSON(msg)
			}

			if err := send(model.ClientMessage{Event: model.EventPlayerConnected, PlayerID: playerID}); err != nil {
				return err
			}
			if lobby != "" {
				event := model.EventJoinLobby
				if start {
					event = model.EventMatchStart
				}
				if err := send(model.ClientMessage{Event: event, Lobby: lobby}); err != nil {
					return err
				}
			}

			// Print every server event as a JSON line
			done := make(chan struct{})
			go func() {
				defer close(done)
				for {
					_, data, err := conn.ReadMessage()
					if err != nil {
						return
					}
					fmt.Println(string(data))
				}
			}()

			// Forward stdin lines as chat
			go func() {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					text := scanner.Text()
					if text == "" || lobby == "" {
						continue
					}
					_ = send(model.ClientMessage{Event: model.EventChatMessage, Lobby: lobby, Message: text})
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt)

			select {
			case <-done:
			case <-sigCh:
				_ = send(model.ClientMessage{Event: model.EventPlayerDisconnected})
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player identifier to bind")
	cmd.Flags().StringVar(&lobby, "lobby", "", "Lobby to join (or create with --start)")
	cmd.Flags().BoolVar(&start, "start", false, "Create the lobby with match_start instead of joining")

	return cmd
}
