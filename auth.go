package main

import (
	"log"
	"net/http"
	"time"
)

const cookieName = "token"

// sessionCookie builds the auth cookie with mode-dependent attributes.
// Production serves the API and the front-end from different origins over
// TLS, so the cookie must be Secure and sendable cross-site; development
// runs plain HTTP on localhost and keeps the cookie strictly same-site.
func (a *app) sessionCookie(value string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.cfg.Production,
		SameSite: http.SameSiteStrictMode,
		Expires:  expires,
	}
	if a.cfg.Production {
		c.SameSite = http.SameSiteNoneMode
	}
	return c
}

// POST /jwt
// The client authenticates elsewhere and presents its identity claim here;
// we convert it into a signed session cookie.
func (a *app) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var claim map[string]any
	if err := decodeJSON(r, &claim); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	tok, err := a.tokens.Sign(claim)
	if err != nil {
		log.Println("[auth] sign token:", err)
		errorJSON(w, http.StatusInternalServerError, "token error")
		return
	}
	http.SetCookie(w, a.sessionCookie(tok, time.Now().Add(tokenTTL)))
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// GET /logout
// Only instructs the client to drop the cookie; outstanding copies of the
// token stay valid until they expire.
func (a *app) handleLogout(w http.ResponseWriter, r *http.Request) {
	c := a.sessionCookie("", time.Unix(0, 0))
	c.MaxAge = -1
	http.SetCookie(w, c)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
