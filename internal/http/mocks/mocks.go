// Package mocks contains testify mocks for the handler's service contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"team-builder-service/internal/model"
)

// AuthService mocks http.AuthService.
type AuthService struct {
	mock.Mock
}

func (m *AuthService) Register(ctx context.Context, username, password, passwordConfirm string) (model.User, error) {
	args := m.Called(ctx, username, password, passwordConfirm)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *AuthService) Login(ctx context.Context, username, password string) (model.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(model.User), args.Error(1)
}

// PlayerService mocks http.PlayerService.
type PlayerService struct {
	mock.Mock
}

func (m *PlayerService) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (m *PlayerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Player), args.Error(1)
}

func (m *PlayerService) ListPlayersByPosition(ctx context.Context, position string) ([]model.Player, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

// TeamService mocks http.TeamService.
type TeamService struct {
	mock.Mock
}

func (m *TeamService) CreateTeam(ctx context.Context, ownerID int64, teamType string, playerIDs []int64) (model.Team, error) {
	args := m.Called(ctx, ownerID, teamType, playerIDs)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamService) GetTeam(ctx context.Context, ownerID, teamID int64) (model.TeamWithPlayers, error) {
	args := m.Called(ctx, ownerID, teamID)
	return args.Get(0).(model.TeamWithPlayers), args.Error(1)
}

func (m *TeamService) ListTeams(ctx context.Context, ownerID int64) ([]model.TeamWithPlayers, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamWithPlayers), args.Error(1)
}
