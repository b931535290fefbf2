package user

import "context"

type Repository interface {
	// Lookup by normalized (lower-cased) email; ErrNotFound when absent
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Upsert the directory rows by primary key
	Seed(ctx context.Context, users []User) error
}
