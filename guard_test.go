package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// missing cookie, malformed token, expired token and a token signed with a
// different secret must all be indistinguishable from the client's side.
func TestGuardRejectionUniform(t *testing.T) {
	a := newTestApp(t)

	expired, err := a.tokens.signFor(map[string]any{"email": "x@y.z"}, -time.Minute)
	require.NoError(t, err)
	forged, err := newTokenService("other-secret").Sign(map[string]any{"email": "x@y.z"})
	require.NoError(t, err)

	h := a.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run")
	}))

	cases := []struct {
		name  string
		token string
	}{
		{"no cookie", ""},
		{"malformed token", "not.a.jwt"},
		{"expired token", expired},
		{"wrong secret", forged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/rooms", nil)
			if tc.token != "" {
				req.AddCookie(&http.Cookie{Name: cookieName, Value: tc.token})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.JSONEq(t, `{"message":"unauthorized access"}`, rec.Body.String())
		})
	}
}

func TestGuardAttachesClaims(t *testing.T) {
	a := newTestApp(t)

	tok, err := a.tokens.Sign(map[string]any{"email": "host@x.y", "name": "H"})
	require.NoError(t, err)

	var got jwt.MapClaims
	h := a.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = claimsFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/rooms", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: tok})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "host@x.y", got["email"])
	require.Equal(t, "H", got["name"])
}
