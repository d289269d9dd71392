package server

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Client is one connected viewer. Conn is nil for clients driven directly in tests.
type Client struct {
	ID       uint32
	Conn     *websocket.Conn
	Send     chan []byte
	LastSeen time.Time
}

// NewClient creates a new client
func NewClient(id uint32, conn *websocket.Conn) *Client {
	return &Client{
		ID:       id,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		LastSeen: time.Now(),
	}
}

// enqueue hands a frame to the writer without blocking. A full channel drops it.
func (c *Client) enqueue(data []byte) bool {
	select {
	case c.Send <- data:
		return true
	default:
		// Channel full, skip this client
		return false
	}
}

func (c *Client) sendConstants(msg ConstantsMsg) {
	msg.Type = MsgTypeConstants

	data, err := msgpack.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling constants message: %v", err)
		return
	}

	if !c.enqueue(data) {
		log.Printf("Could not send constants to client %d", c.ID)
	}
}

func (c *Client) sendGameEvent(event GameEventMsg) {
	event.Type = MsgTypeGameEvent

	data, err := msgpack.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling game event message: %v", err)
		return
	}

	if !c.enqueue(data) {
		log.Printf("Could not send game event to client %d", c.ID)
	}
}
