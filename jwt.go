package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens stay valid for a year; there is no server-side session table and no
// revocation list, so an issued token can only die by expiring. Logout clears
// the client's cookie and nothing else.
const tokenTTL = 365 * 24 * time.Hour

type tokenService struct {
	secret []byte
}

func newTokenService(secret string) *tokenService {
	return &tokenService{secret: []byte(secret)}
}

// Sign embeds the submitted claim verbatim and stamps the validity window.
// The claim's shape is not validated; whatever the client asserted at login
// comes back out of Parse unchanged.
func (s *tokenService) Sign(claim map[string]any) (string, error) {
	return s.signFor(claim, tokenTTL)
}

func (s *tokenService) signFor(claim map[string]any, ttl time.Duration) (string, error) {
	mc := jwt.MapClaims{}
	for k, v := range claim {
		mc[k] = v
	}
	now := time.Now()
	mc["iat"] = jwt.NewNumericDate(now)
	mc["exp"] = jwt.NewNumericDate(now.Add(ttl))
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return tok.SignedString(s.secret)
}

// Parse verifies signature and expiry. Callers must not forward the error to
// the client; a forged token and an expired one have to look identical there.
func (s *tokenService) Parse(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
