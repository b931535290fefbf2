package http

import (
	"errors"
	"net/http"

	"cibil-mock-backend/internal/logging"
	"cibil-mock-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	uc  *auth.Usecase
	log *logrus.Logger
}

func NewAuthHandler(uc *auth.Usecase, log *logrus.Logger) *AuthHandler {
	if log == nil {
		log = logging.New("info", nil)
	}
	return &AuthHandler{uc: uc, log: log}
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type loginResp struct {
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    auth.UserDTO `json:"user"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	dto, err := h.uc.Login(c.Request().Context(), auth.LoginInput(req))
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case err != nil:
		logging.LogError(h.log, "AuthHandler", "Login", "authenticate", map[string]string{"email": req.Email}, err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, loginResp{Success: true, Token: dto.Token, User: dto.User})
}
