package service

import (
	"log"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Hub route les notifications temps réel vers les connexions WebSocket,
// une "room" par utilisateur. Toutes les écritures passent par la boucle Run
// pour n'avoir qu'un seul écrivain par connexion.
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*websocket.Conn]struct{}

	broadcast chan wsMessage
}

type wsMessage struct {
	recipient uuid.UUID
	payload   any
}

var hub *Hub

// StartHub démarre le hub global. À appeler une fois au bootstrap.
func StartHub() *Hub {
	hub = &Hub{
		rooms:     make(map[uuid.UUID]map[*websocket.Conn]struct{}),
		broadcast: make(chan wsMessage, 256),
	}
	go hub.run()
	return hub
}

func GetHub() *Hub {
	return hub
}

func (h *Hub) run() {
	for msg := range h.broadcast {
		h.mu.RLock()
		conns := h.rooms[msg.recipient]
		for conn := range conns {
			if err := conn.WriteJSON(msg.payload); err != nil {
				log.Printf("[WARN] Push WebSocket vers %s : %v", msg.recipient, err)
			}
		}
		h.mu.RUnlock()
	}
}

func (h *Hub) Register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[userID][conn] = struct{}{}
	log.Printf("[INFO] WebSocket connecté pour %s (%d connexions)", userID, len(h.rooms[userID]))
}

func (h *Hub) Unregister(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.rooms[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, userID)
		}
	}
}

// Push met en file un message pour la room de l'utilisateur. Non bloquant :
// si la file est pleine le message temps réel est perdu (la notification
// persistée reste disponible via l'API REST).
func (h *Hub) Push(userID uuid.UUID, payload any) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- wsMessage{recipient: userID, payload: payload}:
	default:
		log.Printf("[WARN] File WebSocket pleine, push ignoré pour %s", userID)
	}
}
