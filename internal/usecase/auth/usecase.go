package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cibil-mock-backend/internal/domain/user"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenPrefix is concatenated with the user id. The token is decorative:
// nothing in the service validates it.
const TokenPrefix = "mock-jwt-token-"

const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid_credentials"
	OutcomeError   = "error"
)

// Recorder observes login outcomes (metrics).
type Recorder interface {
	ObserveLogin(outcome string)
}

type Usecase struct {
	repo user.Repository
	rec  Recorder
}

func NewUsecase(r user.Repository, rec Recorder) *Usecase { return &Usecase{repo: r, rec: rec} }

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginDTO, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		u.observe(OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	usr, err := u.repo.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		u.observe(OutcomeInvalid)
		return nil, ErrInvalidCredentials
	case err != nil:
		u.observe(OutcomeError)
		return nil, fmt.Errorf("lookup %s: %w", email, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		u.observe(OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	u.observe(OutcomeSuccess)
	return &LoginDTO{
		Token: TokenPrefix + usr.ID,
		User:  UserDTO{ID: usr.ID, Email: usr.Email, Name: usr.Name, Role: string(usr.Role)},
	}, nil
}

// SeedDirectory hashes the fixed demo accounts and upserts them.
func (u *Usecase) SeedDirectory(ctx context.Context, accounts []user.DemoAccount, cost int) error {
	users, err := HashDirectory(accounts, cost)
	if err != nil {
		return err
	}
	return u.repo.Seed(ctx, users)
}

// HashDirectory turns demo accounts into storable users.
func HashDirectory(accounts []user.DemoAccount, cost int) ([]user.User, error) {
	out := make([]user.User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.ID, err)
		}
		out = append(out, user.User{
			ID:           a.ID,
			Email:        normalizeEmail(a.Email),
			Name:         a.Name,
			Role:         a.Role,
			PasswordHash: string(hash),
		})
	}
	return out, nil
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func (u *Usecase) observe(outcome string) {
	if u.rec != nil {
		u.rec.ObserveLogin(outcome)
	}
}
