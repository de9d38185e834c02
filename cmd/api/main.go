package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "studentloan-backend/internal/adapter/http"
	"studentloan-backend/internal/adapter/middleware"
	"studentloan-backend/internal/app"
	"studentloan-backend/internal/config"
	"studentloan-backend/internal/logging"
)

func main() {
	if err := run(); err != nil {
		logging.Error(context.Background(), "api exited", "err", err)
		os.Exit(1)
	}
}

// bodyLimit sits above the largest document upload plus multipart overhead.
const bodyLimit = "11M"

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		echomw.RequestID(),
		echomw.Logger(),
		echomw.Recover(),
		echomw.BodyLimit(bodyLimit),
		middleware.RequestContext(),
	)
	return e
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, FilePath: cfg.LogFile}); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	e := newEcho()

	routes := httpadp.Routes{
		Health:      httpadp.NewHandler(),
		Catalog:     httpadp.NewCatalogHandler(a.Catalog),
		Submissions: httpadp.NewSubmissionHandler(a.Submissions, cfg.Settings()),
		Reviews:     httpadp.NewReviewHandler(a.Reviews, cfg.Settings()),
		Processes:   httpadp.NewProcessHandler(a.Processes, cfg.Settings()),
		Histories:   httpadp.NewHistoryHandler(a.Histories),
		Auth:        middleware.RequireOfficer([]byte(cfg.JWTSecret)),
	}
	if a.Redis != nil {
		routes.Idempotent = middleware.IdempotencyMiddleware(a.Redis, time.Duration(cfg.IdempTTLSecs)*time.Second)
	}
	routes.Register(e)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		logging.Info(ctx, "listening", "addr", addr,
			"academic_year", cfg.AcademicYear, "term", cfg.Term, "db", cfg.DBDriver)
		errCh <- e.Start(addr)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logging.Info(shutdownCtx, "shutting down")
	return e.Shutdown(shutdownCtx)
}
