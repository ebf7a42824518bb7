package service

import (
	"context"
	"errors"
	"net/http"

	"team-builder-service/internal/model"
	"team-builder-service/internal/repository"
)

// TransactionManager runs a function inside a storage transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TeamRepository is the team storage contract used by the assembly service.
type TeamRepository interface {
	CreateTeamWithPlayers(ctx context.Context, ownerID int64, teamType string, playerIDs []int64) (model.Team, error)
	GetByID(ctx context.Context, teamID int64) (model.Team, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Team, error)
	ListTeamPlayers(ctx context.Context, teamID int64) ([]model.Player, error)
}

// TeamService assembles teams for authenticated owners.
type TeamService struct {
	repo      TeamRepository
	txManager TransactionManager
}

// NewTeamService creates the team assembly service.
func NewTeamService(repo TeamRepository, txManager TransactionManager) *TeamService {
	return &TeamService{repo: repo, txManager: txManager}
}

// CreateTeam creates one team row for ownerID and one membership row per
// submitted player id, all inside a single transaction. The membership set is
// persisted exactly as submitted: duplicates are kept and unknown ids are
// rejected by the storage foreign keys, which rolls the whole write back.
// Any failure surfaces as a client error carrying the underlying description.
func (s *TeamService) CreateTeam(ctx context.Context, ownerID int64, teamType string, playerIDs []int64) (model.Team, error) {
	if teamType == "" {
		return model.Team{}, ErrBadRequest("tipo must not be empty")
	}

	var team model.Team
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var errTx error
		team, errTx = s.repo.CreateTeamWithPlayers(ctx, ownerID, teamType, playerIDs)
		return errTx
	})
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return model.Team{}, ErrBadRequest("unknown player id in jugadores")
		}
		return model.Team{}, &AppError{
			Code:    "TEAM_CREATE_FAILED",
			Message: err.Error(),
			Status:  http.StatusBadRequest,
			Err:     err,
		}
	}

	return team, nil
}

// GetTeam returns one of the owner's teams with its memberships resolved to
// player records. Another user's team answers NOT_FOUND rather than
// revealing its existence.
func (s *TeamService) GetTeam(ctx context.Context, ownerID, teamID int64) (model.TeamWithPlayers, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.TeamWithPlayers{}, ErrNotFound("team not found")
		}
		return model.TeamWithPlayers{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to get team",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}
	if team.UserID != ownerID {
		return model.TeamWithPlayers{}, ErrNotFound("team not found")
	}

	players, err := s.repo.ListTeamPlayers(ctx, teamID)
	if err != nil {
		return model.TeamWithPlayers{}, &AppError{
			Code:    "INTERNAL",
			Message: "failed to load team players",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	return model.TeamWithPlayers{Team: team, Players: players}, nil
}

// ListTeams returns every team of the owner with resolved players.
func (s *TeamService) ListTeams(ctx context.Context, ownerID int64) ([]model.TeamWithPlayers, error) {
	teams, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &AppError{
			Code:    "INTERNAL",
			Message: "failed to list teams",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	res := make([]model.TeamWithPlayers, 0, len(teams))
	for _, team := range teams {
		players, err := s.repo.ListTeamPlayers(ctx, team.ID)
		if err != nil {
			return nil, &AppError{
				Code:    "INTERNAL",
				Message: "failed to load team players",
				Status:  http.StatusInternalServerError,
				Err:     err,
			}
		}
		res = append(res, model.TeamWithPlayers{Team: team, Players: players})
	}
	return res, nil
}
