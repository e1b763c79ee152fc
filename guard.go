package main

import (
	"context"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey int

const claimsKey ctxKey = 0

// requireAuth gates a handler behind a valid session token. Verification is a
// pure function of (cookie, secret, clock); nothing is shared between
// requests. Every failure mode gets the same response body so the client
// cannot tell a missing cookie from a forged or expired token; the actual
// reason only goes to the server log.
func (a *app) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(cookieName)
		if err != nil || c.Value == "" {
			unauthorized(w)
			return
		}
		claims, err := a.tokens.Parse(c.Value)
		if err != nil {
			log.Println("[auth] verify token:", err)
			unauthorized(w)
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "unauthorized access"})
}

// claimsFrom returns the verified identity claim attached by requireAuth,
// or nil on an unguarded route.
func claimsFrom(ctx context.Context) jwt.MapClaims {
	claims, _ := ctx.Value(claimsKey).(jwt.MapClaims)
	return claims
}
