package http

import "team-builder-service/internal/model"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// playerSummary is the 7-field projection used by the list endpoints. The
// detail endpoint serializes model.Player directly.
type playerSummary struct {
	ID            int64   `json:"id"`
	Name          string  `json:"nombre"`
	Team          string  `json:"equipo"`
	Position      string  `json:"posicion"`
	Age           float64 `json:"edad"`
	Height        float64 `json:"altura"`
	PointsPerGame float64 `json:"puntos_por_partido"`
}

func summariesFromPlayers(players []model.Player) []playerSummary {
	res := make([]playerSummary, 0, len(players))
	for _, p := range players {
		res = append(res, playerSummary{
			ID:            p.ID,
			Name:          p.Name,
			Team:          p.Team,
			Position:      p.Position,
			Age:           p.Age,
			Height:        p.Height,
			PointsPerGame: p.PointsPerGame,
		})
	}
	return res
}

type createTeamRequest struct {
	Type    string  `json:"tipo"`
	Players []int64 `json:"jugadores"`
}

type createTeamResponse struct {
	Success bool  `json:"success"`
	TeamID  int64 `json:"equipo_id"`
}

type createTeamError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type teamResponse struct {
	ID      int64           `json:"id"`
	Type    string          `json:"tipo"`
	Players []playerSummary `json:"jugadores"`
}

func teamResponseFrom(t model.TeamWithPlayers) teamResponse {
	return teamResponse{
		ID:      t.ID,
		Type:    t.Type,
		Players: summariesFromPlayers(t.Players),
	}
}
