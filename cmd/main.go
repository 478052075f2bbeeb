// Package main wires the HTTP server for the contest registration service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mamamamad/backend-domjudge/config"
	"github.com/mamamamad/backend-domjudge/internal/mailer"
	"github.com/mamamamad/backend-domjudge/internal/platform"
	"github.com/mamamamad/backend-domjudge/internal/repository"
	"github.com/mamamamad/backend-domjudge/internal/transport/http/middleware"
	handlers_fiber "github.com/mamamamad/backend-domjudge/internal/transport/http/server/handlers-fiber"
	"github.com/mamamamad/backend-domjudge/internal/usecase"
	"github.com/mamamamad/backend-domjudge/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	if cfg.DOMjudge.Password == "" {
		log.Warnw("DOMJUDGE_PASSWORD is not set")
	}

	repo, err := repository.New(ctx, "jsonfile", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	client := platform.New(log, cfg.DOMjudge)
	sender := mailer.New(log, cfg.Mail)

	seedOrganizations(ctx, log, client, cfg.Seed.Organizations)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, client, sender, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	serv.Post("/teams", h.PostTeams)
	serv.Get("/sendEmail", basicauth.New(basicauth.Config{
		Users: map[string]string{cfg.DOMjudge.Username: cfg.DOMjudge.Password},
	}), h.GetSendEmail)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()
	log.Infow("server started",
		"addr", cfg.ServerAddr(),
		"env", cfg.Server.Environment,
		"domjudge_api", cfg.DOMjudge.BaseURL,
		"contest_id", cfg.DOMjudge.ContestID,
	)

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}

// seedOrganizations makes sure every configured organization exists on the
// platform before registrations start. Failures are logged and skipped so a
// flaky platform does not block startup.
func seedOrganizations(ctx context.Context, log *zap.SugaredLogger, client platform.API, names []string) {
	if len(names) == 0 {
		return
	}
	orgs, err := client.Organizations(ctx)
	if err != nil {
		log.Warnw("skipping organization seeding, fetch failed", "error", err)
		return
	}
	for _, name := range names {
		if _, err := client.CreateOrGetOrganization(ctx, name, orgs); err != nil {
			log.Warnw("failed to seed organization", "name", name, "error", err)
			continue
		}
		log.Infow("organization ready", "name", name)
	}
}
