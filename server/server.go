package server

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"

	"github.com/fusiongabin/uno-server/bot"
	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// defaultRoomID is the single global table used when rooms are disabled
const defaultRoomID = "LOBBY"

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewRoomRes struct {
	RoomID string `json:"room_id"`
}

type StatusRes struct {
	Rooms int `json:"rooms"`
}

// GameServer routes HTTP traffic into rooms
type GameServer struct {
	cfg     Config
	store   RoomStore
	logger  *logrus.Logger
	handler http.Handler
}

// NewRoomID generates a six-letter room code
func NewRoomID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

// NewServer creates a GameServer with an in-memory room store
func NewServer(cfg Config, logger *logrus.Logger) *GameServer {
	s := &GameServer{cfg: cfg, logger: logger}

	s.store = NewInMemoryRoomStore(func(id string, onEmpty func(string)) *Room {
		room := NewRoom(id, cfg.GameConfig(), logger, onEmpty)
		if cfg.BotCount > 0 {
			// the room's loop starts right after this returns; seat the
			// bots once it is listening
			go func() {
				policy := bot.FirstLegal{Rules: room.GameConfig()}
				for i := 0; i < cfg.BotCount; i++ {
					room.AddBot(fmt.Sprintf("bot-%d", i+1), policy, cfg.BotInterval)
				}
			}()
		}
		return room
	})

	router := http.NewServeMux()
	router.Handle("/", http.HandlerFunc(s.HandleStatus))
	router.Handle("/new", http.HandlerFunc(s.HandleNewRoom))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
	)(handlers.LoggingHandler(logger.Writer(), router))

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Store exposes the room store
func (s *GameServer) Store() RoomStore {
	return s.store
}

// HandleStatus reports how many rooms are live
func (s *GameServer) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StatusRes{Rooms: s.store.Len()})
}

// HandleNewRoom creates a fresh room and returns its code
func (s *GameServer) HandleNewRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if !s.cfg.MultiRoom {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("rooms are disabled; connect to the global table"))
		return
	}

	var room *Room
	for {
		var err error
		room, err = s.store.CreateRoom(NewRoomID())
		if err == nil {
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(NewRoomRes{RoomID: room.id})
}

// HandleWS upgrades a connection and seats the player. A referenced room is
// created on the spot; the table's lifecycle begins with its first player.
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	name := query.Get("name")
	if name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing player name"))
		return
	}

	roomID := defaultRoomID
	if s.cfg.MultiRoom {
		roomID = query.Get("room_id")
		if roomID == "" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte("missing room ID"))
			return
		}
	}

	room := s.store.GetOrCreateRoom(roomID)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("could not upgrade to websocket")
		return
	}

	newWSPlayer(name, conn, room, s.logger).JoinRoom()
}
