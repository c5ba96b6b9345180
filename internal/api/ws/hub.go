package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"maze-warden/internal/room"
)

type client struct {
	conn *websocket.Conn
	// gorilla connections allow one concurrent writer
	mu sync.Mutex
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	log         *log.Entry
}

func NewHub(logger *log.Entry) *Hub {
	return &Hub{
		rooms: make(map[string]map[*client]struct{}),
		log:   logger.WithField("component", "ws"),
	}
}

// SetManager plugs in the manager that client actions are forwarded to.
func (h *Hub) SetManager(rm RoomManager) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roomManager = rm
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the frame exchanged with clients in both directions.
type Message struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

type actionData struct {
	PlayerID  string         `json:"player_id"`
	Direction room.Direction `json:"direction"`
	Skill     room.Skill     `json:"skill"`
}

// HandleWS upgrades the request and subscribes the socket to ?room_code.
// @Summary Live room updates
// @Description Upgrades to a WebSocket that receives {action, data} frames for one room and accepts move, pass and skill actions.
// @Tags Live
// @Param room_code query string true "Room code"
// @Router /ws [get]
func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	if rm := h.manager(); rm != nil {
		if _, ok := rm.Get(roomCode); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": room.ErrRoomNotFound.Error()})
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("upgrade failed")
		return
	}
	cl := &client{conn: conn}
	entry := h.log.WithField("room", roomCode)
	entry.Debug("client connected")

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.remove(roomCode, cl)
		entry.Debug("client disconnected")
	}()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				entry.WithError(err).Warn("read failed")
			}
			return
		}
		if err := h.dispatch(roomCode, msg); err != nil {
			entry.WithError(err).WithField("action", msg.Action).Info("client action rejected")
			_ = cl.send(gin.H{"action": "error", "data": gin.H{"for": msg.Action, "error": err.Error()}})
		}
	}
}

func (h *Hub) manager() RoomManager {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.roomManager
}

// dispatch forwards a client action. Successful actions reach every client
// through the manager's own broadcast.
func (h *Hub) dispatch(roomCode string, msg Message) error {
	rm := h.manager()
	if rm == nil {
		return errNoManager
	}
	var data actionData
	if len(msg.Data) > 0 {
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
	}
	var err error
	switch msg.Action {
	case "move":
		_, err = rm.Move(roomCode, data.PlayerID, data.Direction)
	case "pass":
		_, err = rm.Pass(roomCode, data.PlayerID)
	case "skill":
		_, err = rm.UseSkill(roomCode, data.PlayerID, data.Skill)
	case "state":
		r, ok := rm.Get(roomCode)
		if !ok {
			return room.ErrRoomNotFound
		}
		h.Broadcast(roomCode, "state-updated", gin.H{"room": r})
	default:
		err = errUnknownAction
	}
	return err
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.rooms[roomCode]; ok {
		delete(clients, cl)
		if len(clients) == 0 {
			delete(h.rooms, roomCode)
		}
	}
	_ = cl.conn.Close()
}

// Clients is the number of sockets subscribed to a room.
func (h *Hub) Clients(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for _, cl := range clients {
		if err := cl.send(message); err != nil {
			h.log.WithError(err).WithField("room", roomCode).Warn("failed to send message")
			h.remove(roomCode, cl)
		}
	}
}
