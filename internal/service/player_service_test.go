package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-builder-service/internal/model"
	"team-builder-service/internal/repository"
	"team-builder-service/internal/service"
	"team-builder-service/internal/service/mocks"
)

func TestPlayerService_GetPlayer(t *testing.T) {
	curry := model.Player{ID: 1, Name: "Stephen Curry", Height: 188, Position: "Escolta"}

	repo := new(mocks.PlayerRepository)
	repo.On("GetByID", mock.Anything, int64(1)).Return(curry, nil).Twice()
	repo.On("GetByID", mock.Anything, int64(999)).
		Return(model.Player{}, repository.ErrPlayerNotFound).Twice()

	svc := service.NewPlayerService(repo)
	ctx := context.Background()

	t.Run("Idempotent reads", func(t *testing.T) {
		first, err := svc.GetPlayer(ctx, 1)
		assert.NoError(t, err)
		second, err := svc.GetPlayer(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Unknown id always fails the same way", func(t *testing.T) {
		_, errFirst := svc.GetPlayer(ctx, 999)
		_, errSecond := svc.GetPlayer(ctx, 999)

		assert.True(t, service.IsNotFound(errFirst))
		assert.True(t, service.IsNotFound(errSecond))
		assert.Equal(t, errFirst.Error(), errSecond.Error())
	})

	repo.AssertExpectations(t)
}

func TestPlayerService_ListPlayersByPosition(t *testing.T) {
	bases := []model.Player{
		{ID: 3, Name: "Chris Paul", Position: "Base"},
	}

	repo := new(mocks.PlayerRepository)
	repo.On("ListByPosition", mock.Anything, "Base").Return(bases, nil)
	repo.On("ListByPosition", mock.Anything, "Quarterback").Return([]model.Player{}, nil)

	svc := service.NewPlayerService(repo)
	ctx := context.Background()

	t.Run("Exact match only", func(t *testing.T) {
		got, err := svc.ListPlayersByPosition(ctx, "Base")
		assert.NoError(t, err)
		assert.Equal(t, bases, got)
	})

	t.Run("Unrecognized label yields empty slice, not an error", func(t *testing.T) {
		got, err := svc.ListPlayersByPosition(ctx, "Quarterback")
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	repo.AssertExpectations(t)
}
