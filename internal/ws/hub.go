package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Event is the change notification pushed to attached UIs after every
// successful save, so they can reload the document and re-render.
type Event struct {
	Type   string `json:"type"` // "erp_update", or "connected" on attach
	Module string `json:"module,omitempty"`
	Action string `json:"action,omitempty"` // created, updated, deleted, reset
	ID     string `json:"id,omitempty"`
	Client string `json:"clientId,omitempty"` // hub-assigned connection id
}

type Hub struct {
	Register   chan *websocket.Conn
	Unregister chan *websocket.Conn
	Broadcast  chan []byte

	clients map[*websocket.Conn]string // conn -> client id
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan *websocket.Conn),
		Unregister: make(chan *websocket.Conn),
		Broadcast:  make(chan []byte),
		clients:    make(map[*websocket.Conn]string),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.Register:
			id := uuid.NewString()
			h.mutex.Lock()
			h.clients[conn] = id
			h.mutex.Unlock()
			// Tell the client its hub-assigned id so it can filter
			// echoes of its own mutations.
			hello, _ := json.Marshal(Event{Type: "connected", Client: id})
			if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
				log.Printf("WS client %s handshake failed: %v", id, err)
			} else {
				log.Printf("WS client %s connected", id)
			}

		case conn := <-h.Unregister:
			h.mutex.Lock()
			if id, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
				log.Printf("WS client %s disconnected", id)
			}
			h.mutex.Unlock()

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for conn, id := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					log.Printf("WS client %s dropped: %v", id, err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Notify broadcasts a document-change event. Safe on a nil hub so services
// can run without a websocket layer in tests and in the reset CLI.
func (h *Hub) Notify(module, action, id string) {
	if h == nil {
		return
	}
	msg, _ := json.Marshal(Event{Type: "erp_update", Module: module, Action: action, ID: id})
	h.Broadcast <- msg
}
