package model

// Player is one imported catalog row. The catalog is read-only after import;
// JSON field names follow the public API contract.
type Player struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"nombre"`
	Team                string  `json:"equipo"`
	Age                 float64 `json:"edad"`
	Height              float64 `json:"altura"`
	College             string  `json:"universidad"`
	Country             string  `json:"pais"`
	GamesPlayed         int     `json:"partidos_jugados"`
	PointsPerGame       float64 `json:"puntos_por_partido"`
	ReboundsPerGame     float64 `json:"rebotes_por_partido"`
	AssistsPerGame      float64 `json:"asistencias_por_partido"`
	NetRating           float64 `json:"rating_neto"`
	OffensiveReboundPct float64 `json:"porcentaje_rebotes_ofensivos"`
	DefensiveReboundPct float64 `json:"porcentaje_rebotes_defensivos"`
	UsagePct            float64 `json:"porcentaje_uso"`
	TrueShootingPct     float64 `json:"porcentaje_tiro_efectivo"`
	AssistPct           float64 `json:"porcentaje_asistencias"`
	Season              string  `json:"temporada"`
	Position            string  `json:"posicion"`
}
