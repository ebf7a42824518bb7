package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-builder-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TeamRepo stores assembled teams and their player memberships.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo creates a TeamRepo on the given connection.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// CreateTeamWithPlayers inserts the team row and one membership row per
// submitted player id, in input order. It honors a transaction carried by the
// context; the caller is expected to wrap it in one so the whole write is
// atomic. A membership referencing an unknown player id fails the foreign key
// and surfaces as ErrPlayerNotFound.
func (r *TeamRepo) CreateTeamWithPlayers(ctx context.Context, ownerID int64, teamType string, playerIDs []int64) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO equipos (usuario_id, tipo)
VALUES ($1, $2)
RETURNING id, usuario_id, tipo, created_at
`, ownerID, teamType)

	var team model.Team
	var createdAt time.Time
	if err := row.Scan(&team.ID, &team.UserID, &team.Type, &createdAt); err != nil {
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}
	team.CreatedAt = &createdAt

	if len(playerIDs) > 0 {
		batch := &pgx.Batch{}
		for _, pid := range playerIDs {
			batch.Queue(`
INSERT INTO jugador_equipo (equipo_id, jugador_id)
VALUES ($1, $2)
`, team.ID, pid)
		}
		br := q.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return model.Team{}, ErrPlayerNotFound
			}
			return model.Team{}, fmt.Errorf("insert memberships: %w", err)
		}
	}

	return team, nil
}

// GetByID returns the team row. If the id does not exist, it returns
// ErrTeamNotFound.
func (r *TeamRepo) GetByID(ctx context.Context, teamID int64) (model.Team, error) {
	row := r.db.Pool.QueryRow(ctx, `
SELECT id, usuario_id, tipo, created_at
FROM equipos
WHERE id = $1
`, teamID)

	var team model.Team
	var createdAt time.Time
	if err := row.Scan(&team.ID, &team.UserID, &team.Type, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	team.CreatedAt = &createdAt
	return team, nil
}

// ListByOwner returns every team created by the given user.
func (r *TeamRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Team, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, usuario_id, tipo, created_at
FROM equipos
WHERE usuario_id = $1
ORDER BY id
`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query teams: %w", err)
	}
	defer rows.Close()

	res := make([]model.Team, 0)
	for rows.Next() {
		var team model.Team
		var createdAt time.Time
		if err := rows.Scan(&team.ID, &team.UserID, &team.Type, &createdAt); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		team.CreatedAt = &createdAt
		res = append(res, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// ListTeamPlayers loads the membership rows of a team and resolves each one
// to its player record, preserving insertion order. Duplicate memberships
// yield duplicate players.
func (r *TeamRepo) ListTeamPlayers(ctx context.Context, teamID int64) ([]model.Player, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT j.id, j.nombre, j.equipo, j.edad, j.altura, j.universidad, j.pais,
       j.partidos_jugados, j.puntos_por_partido, j.rebotes_por_partido, j.asistencias_por_partido,
       j.rating_neto, j.porcentaje_rebotes_ofensivos, j.porcentaje_rebotes_defensivos,
       j.porcentaje_uso, j.porcentaje_tiro_efectivo, j.porcentaje_asistencias, j.temporada, j.posicion
FROM jugador_equipo je
JOIN jugadores j ON j.id = je.jugador_id
WHERE je.equipo_id = $1
ORDER BY je.id
`, teamID)
	if err != nil {
		return nil, fmt.Errorf("query team players: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}
