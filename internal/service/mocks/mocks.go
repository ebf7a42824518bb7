// Package mocks contains testify mocks for the service layer contracts.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"team-builder-service/internal/model"
)

// UserRepository mocks service.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, username, passwordHash string) (model.User, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

// PlayerRepository mocks service.PlayerRepository.
type PlayerRepository struct {
	mock.Mock
}

func (m *PlayerRepository) List(ctx context.Context) ([]model.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

func (m *PlayerRepository) GetByID(ctx context.Context, id int64) (model.Player, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Player), args.Error(1)
}

func (m *PlayerRepository) ListByPosition(ctx context.Context, position string) ([]model.Player, error) {
	args := m.Called(ctx, position)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

// TeamRepository mocks service.TeamRepository.
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) CreateTeamWithPlayers(ctx context.Context, ownerID int64, teamType string, playerIDs []int64) (model.Team, error) {
	args := m.Called(ctx, ownerID, teamType, playerIDs)
	if rf, ok := args.Get(0).(func(context.Context, int64, string, []int64) model.Team); ok {
		return rf(ctx, ownerID, teamType, playerIDs), args.Error(1)
	}
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamRepository) GetByID(ctx context.Context, teamID int64) (model.Team, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(model.Team), args.Error(1)
}

func (m *TeamRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Team, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}

func (m *TeamRepository) ListTeamPlayers(ctx context.Context, teamID int64) ([]model.Player, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Player), args.Error(1)
}

// TransactionManager mocks service.TransactionManager.
type TransactionManager struct {
	mock.Mock
}

func (m *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}
