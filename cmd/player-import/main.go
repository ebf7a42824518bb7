// Package main is the one-shot catalog import tool. It creates the schema if
// needed, loads the players CSV and can create an initial user.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"team-builder-service/internal/importer"
	"team-builder-service/internal/repository"
	"team-builder-service/internal/service"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.Command{
		Name:  "player-import",
		Usage: "Load the player catalog CSV into the database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "csv",
				Aliases: []string{"f"},
				Usage:   "Path to the players CSV file",
				Value:   "database/jugadores.csv",
			},
			&cli.StringFlag{
				Name:    "dsn",
				Usage:   "PostgreSQL connection string",
				Sources: cli.EnvVars("DATABASE_DSN"),
			},
			&cli.StringFlag{
				Name:  "user",
				Usage: "Create this user after the import (skipped if it exists)",
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Password for --user",
				Sources: cli.EnvVars("IMPORT_USER_PASSWORD"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, cmd, logger)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Error("import failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command, logger *slog.Logger) error {
	dsn := cmd.String("dsn")
	if dsn == "" {
		return errors.New("--dsn or DATABASE_DSN is required")
	}

	db, err := repository.NewPostgres(ctx, dsn)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	f, err := os.Open(cmd.String("csv"))
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	playerRepo := repository.NewPlayerRepo(db)
	txManager := repository.NewTransactionManager(db)

	imp := importer.New(playerRepo, txManager, logger)
	imported, err := imp.Run(ctx, f)
	if err != nil {
		return err
	}
	logger.Info("import finished", slog.Int("imported", imported))

	if username := cmd.String("user"); username != "" {
		if err := createUser(ctx, db, username, cmd.String("password"), logger); err != nil {
			return err
		}
	}

	return nil
}

func createUser(ctx context.Context, db *repository.Postgres, username, password string, logger *slog.Logger) error {
	if password == "" {
		return errors.New("--password is required with --user")
	}

	auth := service.NewAuthService(repository.NewUserRepo(db))
	if _, err := auth.Register(ctx, username, password, password); err != nil {
		var appErr *service.AppError
		if errors.As(err, &appErr) && appErr.Code == "USERNAME_TAKEN" {
			logger.Info("user already exists, skipping", slog.String("username", username))
			return nil
		}
		return fmt.Errorf("create user: %w", err)
	}

	logger.Info("user created", slog.String("username", username))
	return nil
}
