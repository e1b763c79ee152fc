package main

import "context"

// userStore and roomStore are the storage seams. The binary wires the gorm
// implementations; tests wire the in-memory ones.

type userStore interface {
	// FindByEmail returns (nil, nil) on a miss.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Create inserts the record unless a row with the same email already
	// exists, and reports whether this call inserted. Must be atomic per
	// email: under concurrent calls exactly one succeeds with true and the
	// rest return false without error.
	Create(ctx context.Context, u *User) (bool, error)
}

type roomStore interface {
	All(ctx context.Context) ([]Room, error)
	ByHostEmail(ctx context.Context, email string) ([]Room, error)
	// ByID returns (nil, nil) on a miss.
	ByID(ctx context.Context, id string) (*Room, error)
	Insert(ctx context.Context, room *Room) error
}
