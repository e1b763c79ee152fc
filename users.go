package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// User is the persisted profile record, one row per email. The first login
// writes it; later logins return it untouched, so server-assigned fields
// (role, timestamp) survive whatever the client resubmits.
type User struct {
	Email     string    `gorm:"primaryKey;size:320" json:"email"`
	Name      string    `gorm:"size:120" json:"name,omitempty"`
	Image     string    `gorm:"size:2048" json:"image,omitempty"`
	Role      string    `gorm:"size:32;not null;default:guest" json:"role"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
}

func (User) TableName() string { return "users" }

type upsertResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
}

// PUT /users/{email}
// Login is idempotent: an existing record is returned as-is (a changed
// display name or avatar on a later login is deliberately ignored), and a
// missing one is created with a single conditional insert so two racing
// first logins still end up with exactly one row and two success responses.
func (a *app) handleUpsertUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	var in User
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	existing, err := a.users.FindByEmail(r.Context(), email)
	if err != nil {
		log.Println("[db] find user:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	if existing != nil {
		writeJSON(w, http.StatusOK, existing)
		return
	}

	in.Email = email // the path key is canonical
	if in.Role == "" {
		in.Role = "guest"
	}
	in.Timestamp = time.Now().UTC()

	inserted, err := a.users.Create(r.Context(), &in)
	if err != nil {
		log.Println("[db] create user:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	res := upsertResult{Acknowledged: true}
	if inserted {
		res.UpsertedCount = 1
	} else {
		// a concurrent login inserted first; same outcome for this caller
		res.MatchedCount = 1
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /user/{email}
func (a *app) handleGetUser(w http.ResponseWriter, r *http.Request) {
	u, err := a.users.FindByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		log.Println("[db] find user:", err)
		errorJSON(w, http.StatusInternalServerError, "db error")
		return
	}
	// a miss responds with null, not an error
	writeJSON(w, http.StatusOK, u)
}
