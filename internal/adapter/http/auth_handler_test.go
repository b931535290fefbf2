package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	domain "cibil-mock-backend/internal/domain/user"
	"cibil-mock-backend/internal/logging"
	"cibil-mock-backend/internal/testutil/usermock"
	"cibil-mock-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) *bytes.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func demoRepo(t *testing.T) *usermock.Repo {
	t.Helper()
	users, err := auth.HashDirectory(domain.DemoDirectory(), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashDirectory: %v", err)
	}
	return &usermock.Repo{
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			for i := range users {
				if users[i].Email == email {
					return &users[i], nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
}

func postLogin(t *testing.T, h *AuthHandler, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := h.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	return rec
}

// -------- tests --------

func TestLogin_Success(t *testing.T) {
	h := NewAuthHandler(auth.NewUsecase(demoRepo(t), nil), logging.New("error", io.Discard))

	rec := postLogin(t, h, mustJSON(map[string]string{"email": "borrower@demo.finance", "password": "borrower123"}))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	var got loginResp
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.Success || got.Token != "mock-jwt-token-user_001" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.User.ID != "user_001" || got.User.Role != "borrower" || got.User.Name == "" {
		t.Fatalf("unexpected user: %+v", got.User)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("password")) {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(auth.NewUsecase(demoRepo(t), nil), logging.New("error", io.Discard))

	rec := postLogin(t, h, mustJSON(map[string]string{"email": "borrower@demo.finance", "password": "nope"}))
	if rec.Code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var got ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Error != auth.ErrInvalidCredentials.Error() {
		t.Fatalf("error = %q", got.Error)
	}
}

func TestLogin_BadBody(t *testing.T) {
	h := NewAuthHandler(auth.NewUsecase(demoRepo(t), nil), logging.New("error", io.Discard))

	rec := postLogin(t, h, bytes.NewReader([]byte(`{"email":`)))
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogin_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(auth.NewUsecase(demoRepo(t), nil), logging.New("error", io.Discard))

	rec := postLogin(t, h, mustJSON(map[string]string{"email": "not-an-email"}))
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var got ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !containsFieldMsg(got.Details, "Email", "valid email") || !containsFieldMsg(got.Details, "Password", "is required") {
		t.Fatalf("unexpected details: %+v", got.Details)
	}
}

func TestLogin_RepoError(t *testing.T) {
	repo := &usermock.Repo{
		GetByEmailFn: func(context.Context, string) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}
	var logs bytes.Buffer
	h := NewAuthHandler(auth.NewUsecase(repo, nil), logging.New("error", &logs))

	rec := postLogin(t, h, mustJSON(map[string]string{"email": "a@b.co", "password": "x"}))
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("db down")) {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
	if !bytes.Contains(logs.Bytes(), []byte("db down")) {
		t.Fatalf("error not logged: %s", logs.String())
	}
}
