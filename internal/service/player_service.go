package service

import (
	"context"
	"errors"
	"net/http"

	"team-builder-service/internal/model"
	"team-builder-service/internal/repository"
)

// PlayerRepository is the catalog storage contract used by the query service.
type PlayerRepository interface {
	List(ctx context.Context) ([]model.Player, error)
	GetByID(ctx context.Context, id int64) (model.Player, error)
	ListByPosition(ctx context.Context, position string) ([]model.Player, error)
}

// PlayerService exposes read-only projections over the player catalog.
type PlayerService struct {
	repo PlayerRepository
}

// NewPlayerService creates the query service.
func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// ListPlayers returns every catalog row.
func (s *PlayerService) ListPlayers(ctx context.Context) ([]model.Player, error) {
	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list players",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}
	return players, nil
}

// GetPlayer returns one catalog row or NOT_FOUND for an unknown id.
func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	player, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.Player{}, ErrNotFound("player not found")
		}
		return model.Player{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to get player",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}
	return player, nil
}

// ListPlayersByPosition returns the rows whose derived position matches the
// label exactly. An unrecognized label yields an empty slice, never an error.
func (s *PlayerService) ListPlayersByPosition(ctx context.Context, position string) ([]model.Player, error) {
	players, err := s.repo.ListByPosition(ctx, position)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list players by position",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}
	return players, nil
}
