package socket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"folio.dev/internal/models"
	"folio.dev/internal/services"
)

// WebSocket connection constants
const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize int64 = 4096

	sendBuffer = 16
)

// Actions a client can send
const (
	ActionFilter = "filter"
	ActionSearch = "search"
	ActionSort   = "sort"
	ActionOpen   = "open"
	ActionClose  = "close"
	ActionPing   = "ping"
)

// Message types sent to the client
const (
	MessageView  = "view"
	MessageError = "error"
	MessagePong  = "pong"
)

// ClientMessage is an interaction sent by the browser
type ClientMessage struct {
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
	ID     int    `json:"id,omitempty"`
}

// Message is pushed to the browser
type Message struct {
	Type      string       `json:"type"`
	View      *models.View `json:"view,omitempty"`
	Error     string       `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// Client is one live catalog connection with its own controller
type Client struct {
	conn   *websocket.Conn
	ctrl   *services.Controller
	search *debouncer
	send   chan []byte

	mu     sync.Mutex
	closed bool
}

func newClient(conn *websocket.Conn, debounce time.Duration) *Client {
	return &Client{
		conn:   conn,
		search: newDebouncer(debounce),
		send:   make(chan []byte, sendBuffer),
	}
}

// Render implements services.RenderTarget
func (c *Client) Render(v models.View) {
	c.push(Message{Type: MessageView, View: &v})
}

// ReadPump applies incoming interactions until the connection closes
func (c *Client) ReadPump() {
	defer func() {
		c.search.Stop()
		c.shutdown()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read error", "error", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

// WritePump pushes queued messages and keepalive pings to the connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.push(Message{Type: MessageError, Error: "invalid message"})
		return
	}

	switch msg.Action {
	case ActionFilter:
		c.ctrl.OnFilterChange(msg.Value)
	case ActionSearch:
		query := msg.Value
		c.search.Trigger(func() { c.ctrl.OnSearchChange(query) })
	case ActionSort:
		c.ctrl.OnSortChange(msg.Value)
	case ActionOpen:
		c.ctrl.OnOpenDetail(msg.ID)
	case ActionClose:
		c.ctrl.OnCloseDetail()
	case ActionPing:
		c.push(Message{Type: MessagePong})
	default:
		slog.Debug("unknown websocket action", "action", msg.Action)
		c.push(Message{Type: MessageError, Error: "unknown action"})
	}
}

func (c *Client) push(msg Message) {
	msg.Timestamp = time.Now()
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("failed to encode websocket message", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("websocket send buffer full, dropping message", "type", msg.Type)
	}
}

func (c *Client) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}
