package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-builder-service/internal/model"
	"team-builder-service/internal/repository"
	"team-builder-service/internal/service"
	"team-builder-service/internal/service/mocks"
)

func TestTeamService_CreateTeam(t *testing.T) {
	tests := []struct {
		name       string
		ownerID    int64
		teamType   string
		playerIDs  []int64
		setupMocks func(repo *mocks.TeamRepository, tm *mocks.TransactionManager)
		wantID     int64
		wantErr    bool
		wantStatus int
	}{
		{
			name:      "Success: duplicates preserved in input order",
			ownerID:   1,
			teamType:  "ofensivo",
			playerIDs: []int64{10, 11, 10},
			setupMocks: func(repo *mocks.TeamRepository, tm *mocks.TransactionManager) {
				tm.On("RunInTransaction", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.On("CreateTeamWithPlayers", mock.Anything, int64(1), "ofensivo", []int64{10, 11, 10}).
					Return(func(ctx context.Context, ownerID int64, teamType string, ids []int64) model.Team {
						return model.Team{ID: 7, UserID: ownerID, Type: teamType}
					}, nil)
			},
			wantID: 7,
		},
		{
			name:      "Success: empty player list",
			ownerID:   1,
			teamType:  "equilibrado",
			playerIDs: []int64{},
			setupMocks: func(repo *mocks.TeamRepository, tm *mocks.TransactionManager) {
				tm.On("RunInTransaction", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.On("CreateTeamWithPlayers", mock.Anything, int64(1), "equilibrado", []int64{}).
					Return(model.Team{ID: 8, UserID: 1, Type: "equilibrado"}, nil)
			},
			wantID: 8,
		},
		{
			name:       "Fail: empty tipo",
			ownerID:    1,
			teamType:   "",
			playerIDs:  []int64{10},
			setupMocks: func(repo *mocks.TeamRepository, tm *mocks.TransactionManager) {},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "Fail: unknown player id rejected at commit",
			ownerID:   1,
			teamType:  "defensivo",
			playerIDs: []int64{999},
			setupMocks: func(repo *mocks.TeamRepository, tm *mocks.TransactionManager) {
				tm.On("RunInTransaction", mock.Anything, mock.Anything).
					Return(func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				repo.On("CreateTeamWithPlayers", mock.Anything, int64(1), "defensivo", []int64{999}).
					Return(model.Team{}, repository.ErrPlayerNotFound)
			},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "Fail: storage error rolls back and surfaces as client error",
			ownerID:   2,
			teamType:  "ofensivo",
			playerIDs: []int64{1, 2},
			setupMocks: func(repo *mocks.TeamRepository, tm *mocks.TransactionManager) {
				tm.On("RunInTransaction", mock.Anything, mock.Anything).
					Return(errors.New("commit tx: connection reset"))
			},
			wantErr:    true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.TeamRepository)
			tm := new(mocks.TransactionManager)
			tt.setupMocks(repo, tm)

			svc := service.NewTeamService(repo, tm)

			team, err := svc.CreateTeam(context.Background(), tt.ownerID, tt.teamType, tt.playerIDs)

			if tt.wantErr {
				assert.Error(t, err)
				var appErr *service.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, tt.wantStatus, appErr.Status)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, team.ID)
				assert.Equal(t, tt.ownerID, team.UserID)
				assert.Equal(t, tt.teamType, team.Type)
			}

			repo.AssertExpectations(t)
			tm.AssertExpectations(t)
		})
	}
}

func TestTeamService_GetTeam(t *testing.T) {
	players := []model.Player{
		{ID: 10, Name: "Jordan Clark", Position: "Base"},
		{ID: 11, Name: "Luis Pérez", Position: "Pívot"},
	}

	tests := []struct {
		name       string
		ownerID    int64
		teamID     int64
		setupMocks func(repo *mocks.TeamRepository)
		wantErr    bool
		notFound   bool
	}{
		{
			name:    "Success",
			ownerID: 1,
			teamID:  7,
			setupMocks: func(repo *mocks.TeamRepository) {
				repo.On("GetByID", mock.Anything, int64(7)).
					Return(model.Team{ID: 7, UserID: 1, Type: "ofensivo"}, nil)
				repo.On("ListTeamPlayers", mock.Anything, int64(7)).
					Return(players, nil)
			},
		},
		{
			name:    "Fail: unknown team",
			ownerID: 1,
			teamID:  404,
			setupMocks: func(repo *mocks.TeamRepository) {
				repo.On("GetByID", mock.Anything, int64(404)).
					Return(model.Team{}, repository.ErrTeamNotFound)
			},
			wantErr:  true,
			notFound: true,
		},
		{
			name:    "Fail: other user's team looks missing",
			ownerID: 2,
			teamID:  7,
			setupMocks: func(repo *mocks.TeamRepository) {
				repo.On("GetByID", mock.Anything, int64(7)).
					Return(model.Team{ID: 7, UserID: 1, Type: "ofensivo"}, nil)
			},
			wantErr:  true,
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.TeamRepository)
			tt.setupMocks(repo)

			svc := service.NewTeamService(repo, new(mocks.TransactionManager))

			team, err := svc.GetTeam(context.Background(), tt.ownerID, tt.teamID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.notFound, service.IsNotFound(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.teamID, team.ID)
				assert.Equal(t, players, team.Players)
			}

			repo.AssertExpectations(t)
		})
	}
}
