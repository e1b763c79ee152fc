package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

type app struct {
	cfg    Config
	tokens *tokenService
	users  userStore
	rooms  roomStore
}

func loadDotenv() {
	for _, p := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Overload(p)
			log.Println("[env] loaded", p)
			return
		}
	}
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	// Finish bare OPTIONS quickly
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, req)
		})
	})

	// Auth
	r.Post("/jwt", a.handleIssueToken)
	r.Get("/logout", a.handleLogout)

	// Users
	r.Put("/users/{email}", a.handleUpsertUser)
	r.Get("/user/{email}", a.handleGetUser)

	// Rooms
	r.Get("/rooms", a.handleListRooms)
	r.Get("/rooms/{email}", a.handleListHostRooms)
	r.Get("/room/{id}", a.handleGetRoom)
	r.With(a.requireAuth).Post("/rooms", a.handleCreateRoom)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Hello from StayVista Server.."))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}

func main() {
	loadDotenv()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("[config] refusing to start: ", err)
	}

	db, err := openGorm(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[db] connect failed: %v", err)
	}
	log.Println("[db] connected")
	if err := autoMigrate(db); err != nil {
		log.Fatalf("[db] migrate failed: %v", err)
	}

	a := &app{
		cfg:    cfg,
		tokens: newTokenService(cfg.TokenSecret),
		users:  &gormUserStore{db: db},
		rooms:  &gormRoomStore{db: db},
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Println("StayVista API listening on", addr)
	log.Fatal(srv.ListenAndServe())
}
