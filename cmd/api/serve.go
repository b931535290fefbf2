package main

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadp "cibil-mock-backend/internal/adapter/http"
	appmw "cibil-mock-backend/internal/adapter/middleware"
	"cibil-mock-backend/internal/adapter/repository/gormdb"
	"cibil-mock-backend/internal/config"
	"cibil-mock-backend/internal/domain/user"
	"cibil-mock-backend/internal/infrastructure/cache"
	"cibil-mock-backend/internal/infrastructure/db"
	"cibil-mock-backend/internal/infrastructure/metrics"
	"cibil-mock-backend/internal/logging"
	"cibil-mock-backend/internal/usecase/auth"
	"cibil-mock-backend/internal/usecase/cibil"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logging.New(cfg.LogLevel, cmd.ErrOrStderr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg, logging.GormLevel(log))
	if err != nil {
		logging.LogError(log, "main", "runServe", "open user store", cfg.UserStoreDriver, err)
		return err
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	col := metrics.NewCollector()

	users := gormdb.NewUserRepository(gdb)
	if err := users.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	authUC := auth.NewUsecase(users, col)
	if err := authUC.SeedDirectory(ctx, user.DemoDirectory(), bcrypt.DefaultCost); err != nil {
		return fmt.Errorf("seed demo users: %w", err)
	}

	var replay echo.MiddlewareFunc
	if cfg.ReplayEnabled() {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			logging.LogError(log, "main", "runServe", "open redis", cfg.RedisAddr, err)
			return err
		}
		defer rdb.Close()
		replay = appmw.RequestReplay(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)
	}

	gen := cibil.NewGenerator(gofakeit.New(cfg.RandSeed), time.Now)
	e := httpadp.NewServer(httpadp.Routes{
		Health:      httpadp.NewHandler(),
		Auth:        httpadp.NewAuthHandler(authUC, log),
		Cibil:       httpadp.NewCibilHandler(cibil.NewUsecase(gen, col)),
		Metrics:     col.Handler(),
		Replay:      replay,
		CORSOrigins: cfg.CORSOrigins,
		Log:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		log.WithField("addr", addr).WithField("replay", replay != nil).Info("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
