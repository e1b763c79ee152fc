package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Host is the listing owner's identity, denormalized into the room row the
// way the client submits it.
type Host struct {
	Email string `gorm:"size:320;index" json:"email"`
	Name  string `gorm:"size:120" json:"name,omitempty"`
	Image string `gorm:"size:2048" json:"image,omitempty"`
}

// Room is a rentable property listing.
type Room struct {
	ID          string  `gorm:"primaryKey;type:uuid" json:"_id"`
	Title       string  `gorm:"size:250" json:"title"`
	Location    string  `gorm:"size:250" json:"location"`
	Category    string  `gorm:"size:120" json:"category"`
	Price       float64 `json:"price"`
	Guests      int     `json:"guests"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `gorm:"size:2048" json:"image"`
	From        string  `gorm:"size:64" json:"from"`
	To          string  `gorm:"size:64" json:"to"`
	Host        Host    `gorm:"embedded;embeddedPrefix:host_" json:"host"`
}

func (Room) TableName() string { return "rooms" }

// GET /rooms
func (a *app) handleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := a.rooms.All(r.Context())
	if err != nil {
		log.Println("[db] list rooms:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// GET /rooms/{email}
func (a *app) handleListHostRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := a.rooms.ByHostEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		log.Println("[db] list host rooms:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// GET /room/{id}
func (a *app) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		// caller's fault, not a storage fault
		errorJSON(w, http.StatusBadRequest, "invalid room id")
		return
	}
	room, err := a.rooms.ByID(r.Context(), id)
	if err != nil {
		log.Println("[db] find room:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// POST /rooms — wrapped in requireAuth; any authenticated identity may
// create a listing.
func (a *app) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var room Room
	if err := decodeJSON(r, &room); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	room.ID = uuid.NewString()
	if room.Host.Email == "" {
		// stamp the host from the verified claim
		if email, ok := claimsFrom(r.Context())["email"].(string); ok {
			room.Host.Email = email
		}
	}
	if err := a.rooms.Insert(r.Context(), &room); err != nil {
		log.Println("[db] insert room:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"acknowledged": true,
		"insertedId":   room.ID,
	})
}
