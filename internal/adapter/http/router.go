package http

import (
	stdhttp "net/http"
	"time"

	appmw "cibil-mock-backend/internal/adapter/middleware"
	"cibil-mock-backend/internal/logging"
	"cibil-mock-backend/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Routes carries everything RegisterRoutes mounts. Metrics and Replay
// are optional.
type Routes struct {
	Health      *Handler
	Auth        *AuthHandler
	Cibil       *CibilHandler
	Metrics     stdhttp.Handler
	Replay      echo.MiddlewareFunc
	CORSOrigins []string
	Log         *logrus.Logger
}

// NewServer builds an echo instance with the shared middleware stack and
// every route mounted.
func NewServer(r Routes) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	origins := r.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.Recover(),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{stdhttp.MethodGet, stdhttp.MethodPost, stdhttp.MethodOptions},
			AllowHeaders: []string{
				echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization,
				appmw.HeaderRequestID, appmw.HeaderRequestAt,
			},
			MaxAge: int((12 * time.Hour).Seconds()),
		}),
		middleware.BodyLimit("64K"),
	)
	if r.Log != nil {
		e.Use(logging.RequestLogger(r.Log))
	}

	health := r.Health
	if health == nil {
		health = NewHandler()
	}
	e.GET("/health", health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	api := e.Group("/api")
	if r.Auth != nil {
		var mw []echo.MiddlewareFunc
		if r.Replay != nil {
			mw = append(mw, r.Replay)
		}
		api.POST("/auth/login", r.Auth.Login, mw...)
	}
	if r.Cibil != nil {
		api.GET("/cibil/:borrower_id/reports", r.Cibil.GetReports)
		api.GET("/cibil/:borrower_id/summary", r.Cibil.GetSummary)
	}
	return e
}
