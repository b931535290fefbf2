package usermock

import (
	"context"

	domain "cibil-mock-backend/internal/domain/user"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	SeedFn       func(ctx context.Context, users []domain.User) error
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) Seed(ctx context.Context, users []domain.User) error {
	if m.SeedFn != nil {
		return m.SeedFn(ctx, users)
	}
	return nil
}
