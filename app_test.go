package main

import "testing"

func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg := Config{
		TokenSecret: "test-secret",
		Port:        "0",
		CORSOrigins: []string{"http://localhost:5173"},
	}
	return &app{
		cfg:    cfg,
		tokens: newTokenService(cfg.TokenSecret),
		users:  newMemUserStore(),
		rooms:  newMemRoomStore(),
	}
}
