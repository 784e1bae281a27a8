package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Buffer size for outgoing messages
	sendBufferSize = 256
)

var (
	ErrConnClosed     = errors.New("connection closed")
	ErrSendBufferFull = errors.New("send buffer full")
)

// Conn wraps a websocket connection with a buffered outbound queue so
// that broadcasts never block on a slow peer. Reads happen on the
// connection's own goroutine; writes are serialized through writePump.
type Conn struct {
	ws   *websocket.Conn
	send chan []byte

	closeOnce sync.Once
	closed    chan struct{}
}

func newConn(wsc *websocket.Conn) *Conn {
	return &Conn{
		ws:     wsc,
		send:   make(chan []byte, sendBufferSize),
		closed: make(chan struct{}),
	}
}

// Send queues a payload for delivery without blocking. A full buffer or
// a closed connection yields an error; the caller treats delivery as
// best-effort.
func (c *Conn) Send(payload []byte) error {
	select {
	case <-c.closed:
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (c *Conn) writePump() {
	defer func() {
		_ = c.ws.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-c.closed:
			return
		}
	}
}

func (c *Conn) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}
