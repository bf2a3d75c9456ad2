package ws

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mazadWeb/internal/countdown"
)

const (
	writeWait  = 20 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// Logger defines the minimal logging interface required by the hub.
type Logger interface {
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}

// LiveEvent is one frame of the auction ticker. Text fields arrive
// pre-localized so the page swaps them in without further formatting.
type LiveEvent struct {
	Type          string           `json:"type"`
	AuctionID     int              `json:"auction_id"`
	Status        string           `json:"status,omitempty"`
	StatusText    string           `json:"status_text,omitempty"`
	StatusStyle   string           `json:"status_style,omitempty"`
	CurrentBid    float64          `json:"current_bid,omitempty"`
	CurrentText   string           `json:"current_text,omitempty"`
	NextMinimum   float64          `json:"next_minimum,omitempty"`
	BidsCount     int              `json:"bids_count,omitempty"`
	Countdown     *countdown.Parts `json:"countdown,omitempty"`
	CountdownText string           `json:"countdown_text,omitempty"`
	EndTime       *time.Time       `json:"end_time,omitempty"`
}

type subscribeRequest struct {
	Action    string `json:"action"`
	AuctionID int    `json:"auction_id"`
}

type client struct {
	conn     *websocket.Conn
	auctions map[int]struct{}
}

// LiveHub fans auction ticker events out to connected pages. Each
// connection subscribes to the auctions its page shows; broadcasts for
// other auctions never reach it.
type LiveHub struct {
	logger Logger

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
	locks   map[string]*sync.Mutex
}

// NewLiveHub constructs the hub.
func NewLiveHub(logger Logger) *LiveHub {
	return &LiveHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*client),
		locks:   make(map[string]*sync.Mutex),
	}
}

// ServeWS upgrades the request and registers the connection under
// connID. The caller has already authenticated the ticket; auctionIDs
// is the initial subscription set from the query string.
func (h *LiveHub) ServeWS(w http.ResponseWriter, r *http.Request, connID string, auctionIDs []int) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("live ws upgrade failed: %v", err)
		}
		return
	}

	c := &client{conn: conn, auctions: make(map[int]struct{}, len(auctionIDs))}
	for _, id := range auctionIDs {
		c.auctions[id] = struct{}{}
	}

	h.mu.Lock()
	if old, ok := h.clients[connID]; ok {
		_ = old.conn.Close()
	}
	h.clients[connID] = c
	if _, ok := h.locks[connID]; !ok {
		h.locks[connID] = &sync.Mutex{}
	}
	h.mu.Unlock()

	if h.logger != nil {
		h.logger.Infof("live ws %s connected, %d auctions", connID, len(auctionIDs))
	}

	go h.pingLoop(connID, conn)
	go h.readLoop(connID, conn)
}

func (h *LiveHub) pingLoop(connID string, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for range ticker.C {
		h.mu.RLock()
		c, ok := h.clients[connID]
		alive := ok && c.conn == conn
		h.mu.RUnlock()
		if !alive {
			return
		}
		h.safeWrite(connID, func(c *websocket.Conn) error {
			return c.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
		})
	}
}

func (h *LiveHub) readLoop(connID string, conn *websocket.Conn) {
	defer h.closeConn(connID, conn)

	conn.SetReadLimit(4 << 10)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	conn.SetCloseHandler(func(code int, text string) error {
		if h.logger != nil {
			h.logger.Infof("live ws %s closed (%d: %s)", connID, code, text)
		}
		h.closeConn(connID, conn)
		return nil
	})

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
		if mt != websocket.TextMessage {
			continue
		}

		trimmed := strings.TrimSpace(string(message))
		if strings.EqualFold(trimmed, "ping") {
			h.safeWrite(connID, func(c *websocket.Conn) error {
				return c.WriteMessage(websocket.TextMessage, []byte("pong"))
			})
			continue
		}

		var req subscribeRequest
		if err := json.Unmarshal(message, &req); err != nil || req.AuctionID == 0 {
			continue
		}
		switch req.Action {
		case "subscribe":
			h.subscribe(connID, conn, req.AuctionID)
		case "unsubscribe":
			h.unsubscribe(connID, conn, req.AuctionID)
		}
	}
}

func (h *LiveHub) subscribe(connID string, conn *websocket.Conn, auctionID int) {
	h.mu.Lock()
	if c, ok := h.clients[connID]; ok && c.conn == conn {
		c.auctions[auctionID] = struct{}{}
	}
	h.mu.Unlock()
}

func (h *LiveHub) unsubscribe(connID string, conn *websocket.Conn, auctionID int) {
	h.mu.Lock()
	if c, ok := h.clients[connID]; ok && c.conn == conn {
		delete(c.auctions, auctionID)
	}
	h.mu.Unlock()
}

func (h *LiveHub) closeConn(connID string, conn *websocket.Conn) {
	_ = conn.Close()
	h.mu.Lock()
	if current, ok := h.clients[connID]; ok && current.conn == conn {
		delete(h.clients, connID)
		delete(h.locks, connID)
	}
	h.mu.Unlock()
}

func (h *LiveHub) safeWrite(connID string, fn func(*websocket.Conn) error) {
	h.mu.RLock()
	c := h.clients[connID]
	mu := h.locks[connID]
	h.mu.RUnlock()
	if c == nil || mu == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := fn(c.conn); err != nil {
		if h.logger != nil {
			h.logger.Errorf("live ws %s write failed: %v", connID, err)
		}
		h.closeConn(connID, c.conn)
	}
}

// Push sends one event to a single connection.
func (h *LiveHub) Push(connID string, event LiveEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("live ws marshal failed: %v", err)
		}
		return
	}
	h.safeWrite(connID, func(conn *websocket.Conn) error {
		return conn.WriteMessage(websocket.TextMessage, data)
	})
}

// BroadcastAuction delivers the event to every connection subscribed
// to that auction.
func (h *LiveHub) BroadcastAuction(event LiveEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		if h.logger != nil {
			h.logger.Errorf("live ws marshal failed: %v", err)
		}
		return
	}

	h.mu.RLock()
	ids := make([]string, 0, len(h.clients))
	for id, c := range h.clients {
		if _, ok := c.auctions[event.AuctionID]; ok {
			ids = append(ids, id)
		}
	}
	h.mu.RUnlock()

	for _, id := range ids {
		h.safeWrite(id, func(conn *websocket.Conn) error {
			return conn.WriteMessage(websocket.TextMessage, data)
		})
	}
}

// SubscribedAuctions returns the union of auctions any page currently
// watches. The ticker worker polls only these.
func (h *LiveHub) SubscribedAuctions() []int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := make(map[int]struct{})
	for _, c := range h.clients {
		for id := range c.auctions {
			set[id] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// ClientCount reports connected pages, for the health endpoint.
func (h *LiveHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
