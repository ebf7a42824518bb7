// Package main starts the team builder HTTP service.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/v2"

	"team-builder-service/internal/config"
	httpapi "team-builder-service/internal/http"
	"team-builder-service/internal/repository"
	"team-builder-service/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := repository.NewPostgres(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	playerRepo := repository.NewPlayerRepo(db)
	teamRepo := repository.NewTeamRepo(db)

	txManager := repository.NewTransactionManager(db)

	authService := service.NewAuthService(userRepo)
	playerService := service.NewPlayerService(playerRepo)
	teamService := service.NewTeamService(teamRepo, txManager)

	// Sessions live in Postgres next to the domain tables.
	sessions := scs.New()
	sessions.Store = pgxstore.New(db.Pool)
	sessions.Lifetime = cfg.Session.Lifetime

	handler := httpapi.NewHandler(authService, playerService, teamService, sessions, logger)

	server := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
