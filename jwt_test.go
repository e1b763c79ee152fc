package main

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret")
	claim := map[string]any{"email": "host@stayvista.test", "name": "Ava", "image": "https://img.test/a.png"}

	tok, err := svc.Sign(claim)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	got, err := svc.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	for k, want := range claim {
		if got[k] != want {
			t.Fatalf("claim %q mismatch: got %v want %v", k, got[k], want)
		}
	}
	if _, ok := got["exp"]; !ok {
		t.Fatal("expected exp claim to be stamped")
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	svc := newTokenService("super-secret")
	tok, err := svc.signFor(map[string]any{"email": "a@b.c"}, -1*time.Second)
	if err != nil {
		t.Fatalf("signFor error: %v", err)
	}
	if _, err := svc.Parse(tok); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := newTokenService("right-secret").Sign(map[string]any{"email": "a@b.c"})
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}
	if _, err := newTokenService("wrong-secret").Parse(tok); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestTokenMalformed(t *testing.T) {
	t.Parallel()

	if _, err := newTokenService("k").Parse("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
