package repository

import (
	"context"
	"errors"
	"fmt"

	"team-builder-service/internal/model"

	"github.com/jackc/pgx/v5"
)

const playerColumns = `id, nombre, equipo, edad, altura, universidad, pais,
partidos_jugados, puntos_por_partido, rebotes_por_partido, asistencias_por_partido,
rating_neto, porcentaje_rebotes_ofensivos, porcentaje_rebotes_defensivos,
porcentaje_uso, porcentaje_tiro_efectivo, porcentaje_asistencias, temporada, posicion`

// PlayerRepo reads the imported player catalog and loads it during import.
type PlayerRepo struct {
	db *Postgres
}

// NewPlayerRepo creates a PlayerRepo on the given connection.
func NewPlayerRepo(db *Postgres) *PlayerRepo {
	return &PlayerRepo{db: db}
}

// List returns every catalog row.
func (r *PlayerRepo) List(ctx context.Context) ([]model.Player, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+playerColumns+` FROM jugadores`)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// GetByID returns one catalog row. If the id does not exist, it returns
// ErrPlayerNotFound.
func (r *PlayerRepo) GetByID(ctx context.Context, id int64) (model.Player, error) {
	row := r.db.Pool.QueryRow(ctx, `SELECT `+playerColumns+` FROM jugadores WHERE id = $1`, id)

	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, ErrPlayerNotFound
		}
		return model.Player{}, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

// ListByPosition returns every catalog row whose derived position matches
// exactly. An unknown label yields an empty slice.
func (r *PlayerRepo) ListByPosition(ctx context.Context, position string) ([]model.Player, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT `+playerColumns+` FROM jugadores WHERE posicion = $1`, position)
	if err != nil {
		return nil, fmt.Errorf("query players by position: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

// Count returns the number of catalog rows. The importer uses it to skip
// re-import of an already populated catalog.
func (r *PlayerRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM jugadores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

// InsertPlayers loads catalog rows in one batch. It honors a transaction
// carried by the context.
func (r *PlayerRepo) InsertPlayers(ctx context.Context, players []model.Player) error {
	if len(players) == 0 {
		return nil
	}

	q := r.db.GetQueryExecutor(ctx)

	batch := &pgx.Batch{}
	for _, p := range players {
		batch.Queue(`
INSERT INTO jugadores (nombre, equipo, edad, altura, universidad, pais,
    partidos_jugados, puntos_por_partido, rebotes_por_partido, asistencias_por_partido,
    rating_neto, porcentaje_rebotes_ofensivos, porcentaje_rebotes_defensivos,
    porcentaje_uso, porcentaje_tiro_efectivo, porcentaje_asistencias, temporada, posicion)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`, p.Name, p.Team, p.Age, p.Height, p.College, p.Country,
			p.GamesPlayed, p.PointsPerGame, p.ReboundsPerGame, p.AssistsPerGame,
			p.NetRating, p.OffensiveReboundPct, p.DefensiveReboundPct,
			p.UsagePct, p.TrueShootingPct, p.AssistPct, p.Season, p.Position)
	}

	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}
	return nil
}

func scanPlayer(row pgx.Row) (model.Player, error) {
	var p model.Player
	err := row.Scan(&p.ID, &p.Name, &p.Team, &p.Age, &p.Height, &p.College, &p.Country,
		&p.GamesPlayed, &p.PointsPerGame, &p.ReboundsPerGame, &p.AssistsPerGame,
		&p.NetRating, &p.OffensiveReboundPct, &p.DefensiveReboundPct,
		&p.UsagePct, &p.TrueShootingPct, &p.AssistPct, &p.Season, &p.Position)
	return p, err
}

func scanPlayers(rows pgx.Rows) ([]model.Player, error) {
	res := make([]model.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}
