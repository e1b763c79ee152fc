package main

import (
	"context"
	"sync"
)

// In-memory stores, used by the tests. The single mutex gives the same
// per-key atomicity the database provides in the gorm implementations.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]User)}
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[email]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *memUserStore) Create(_ context.Context, u *User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return false, nil
	}
	s.users[u.Email] = *u
	return true, nil
}

func (s *memUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type memRoomStore struct {
	mu    sync.Mutex
	rooms []Room
}

func newMemRoomStore() *memRoomStore {
	return &memRoomStore{}
}

func (s *memRoomStore) All(_ context.Context) ([]Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Room, len(s.rooms))
	copy(out, s.rooms)
	return out, nil
}

func (s *memRoomStore) ByHostEmail(_ context.Context, email string) ([]Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Room, 0)
	for _, r := range s.rooms {
		if r.Host.Email == email {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memRoomStore) ByID(_ context.Context, id string) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.rooms {
		if r.ID == id {
			room := r
			return &room, nil
		}
	}
	return nil, nil
}

func (s *memRoomStore) Insert(_ context.Context, room *Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, *room)
	return nil
}
