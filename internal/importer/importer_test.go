package importer_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-builder-service/internal/importer"
	"team-builder-service/internal/model"
)

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *catalogMock) InsertPlayers(ctx context.Context, players []model.Player) error {
	return m.Called(ctx, players).Error(0)
}

type txManagerMock struct {
	mock.Mock
}

func (m *txManagerMock) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPositionForHeight(t *testing.T) {
	tests := []struct {
		height float64
		want   string
	}{
		{170, "Base"},
		{180, "Base"},
		{180.1, "Escolta"},
		{190, "Escolta"},
		{195, "Alero"},
		{200.9, "Alero"},
		{201, "Ala-pívot"},
		{210, "Ala-pívot"},
		{215, "Pívot"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, importer.PositionForHeight(tt.height), "height %.1f", tt.height)
	}
}

const sampleCSV = `player_name,team_abbreviation,age,player_height,college,country,gp,pts,reb,ast,net_rating,oreb_pct,dreb_pct,usg_pct,ts_pct,ast_pct,season
Ricky Rubio,PHX,"30,5","188,0",,Spain,68,"8,6","3,3","6,5","-2,1","0,01","0,1","0,17","0,54","0,3",2020-21
Pau Gasol,LAL,35.0,215.0,,Spain,50,12.1,8.4,2.5,3.2,0.09,0.24,0.21,0.58,0.12,2015-16
`

func TestParseCSV(t *testing.T) {
	players, err := importer.ParseCSV(strings.NewReader(sampleCSV))
	assert.NoError(t, err)
	assert.Len(t, players, 2)

	rubio := players[0]
	assert.Equal(t, "Ricky Rubio", rubio.Name)
	assert.Equal(t, "PHX", rubio.Team)
	assert.Equal(t, 30.5, rubio.Age)
	assert.Equal(t, 188.0, rubio.Height)
	assert.Equal(t, "Escolta", rubio.Position)
	assert.Equal(t, 68, rubio.GamesPlayed)
	assert.Equal(t, -2.1, rubio.NetRating)

	gasol := players[1]
	assert.Equal(t, "Pau Gasol", gasol.Name)
	assert.Equal(t, 215.0, gasol.Height)
	assert.Equal(t, "Pívot", gasol.Position)
	assert.Equal(t, "2015-16", gasol.Season)
}

func TestParseCSV_MissingColumn(t *testing.T) {
	_, err := importer.ParseCSV(strings.NewReader("player_name,team_abbreviation\nA,B\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "player_height")
}

func TestImporter_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Imports into an empty catalog inside one transaction", func(t *testing.T) {
		catalog := new(catalogMock)
		tm := new(txManagerMock)

		catalog.On("Count", mock.Anything).Return(int64(0), nil)
		tm.On("RunInTransaction", mock.Anything, mock.Anything).
			Return(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		catalog.On("InsertPlayers", mock.Anything, mock.MatchedBy(func(players []model.Player) bool {
			return len(players) == 2
		})).Return(nil)

		imp := importer.New(catalog, tm, discardLogger())
		n, err := imp.Run(ctx, strings.NewReader(sampleCSV))

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
		catalog.AssertExpectations(t)
		tm.AssertExpectations(t)
	})

	t.Run("Skips a populated catalog", func(t *testing.T) {
		catalog := new(catalogMock)
		tm := new(txManagerMock)

		catalog.On("Count", mock.Anything).Return(int64(431), nil)

		imp := importer.New(catalog, tm, discardLogger())
		n, err := imp.Run(ctx, strings.NewReader(sampleCSV))

		assert.NoError(t, err)
		assert.Equal(t, 0, n)
		catalog.AssertNotCalled(t, "InsertPlayers", mock.Anything, mock.Anything)
		tm.AssertNotCalled(t, "RunInTransaction", mock.Anything, mock.Anything)
	})
}
