package server

import (
	"fmt"
	"sync"
)

// RoomStore holds the live rooms. Room state itself is confined to each
// room's goroutine; the store only guards the map.
type RoomStore interface {
	GetRoom(id string) (*Room, bool)
	CreateRoom(id string) (*Room, error)
	GetOrCreateRoom(id string) *Room
	RemoveRoom(id string)
	Len() int
}

// InMemoryRoomStore maps room id to room
type InMemoryRoomStore struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	newRoom func(id string, onEmpty func(string)) *Room
}

// NewInMemoryRoomStore constructs a store. newRoom is invoked under the
// store lock to build and start a room on first reference.
func NewInMemoryRoomStore(newRoom func(id string, onEmpty func(string)) *Room) *InMemoryRoomStore {
	return &InMemoryRoomStore{
		rooms:   map[string]*Room{},
		newRoom: newRoom,
	}
}

func (s *InMemoryRoomStore) GetRoom(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	return room, ok
}

func (s *InMemoryRoomStore) CreateRoom(id string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[id]; exists {
		return nil, fmt.Errorf("room %s already exists", id)
	}
	return s.create(id), nil
}

func (s *InMemoryRoomStore) GetOrCreateRoom(id string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[id]; ok {
		return room
	}
	return s.create(id)
}

func (s *InMemoryRoomStore) create(id string) *Room {
	room := s.newRoom(id, s.RemoveRoom)
	s.rooms[id] = room
	go room.Listen()
	return room
}

func (s *InMemoryRoomStore) RemoveRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

func (s *InMemoryRoomStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rooms)
}
