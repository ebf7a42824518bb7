package repository

import (
	"context"
	"fmt"
)

// schema mirrors the four domain tables plus the scs session store. The
// service owns its schema the same way the original deployment did, so the
// statements are idempotent and applied at startup.
const schema = `
CREATE TABLE IF NOT EXISTS usuarios (
    id            BIGSERIAL PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS jugadores (
    id                           BIGSERIAL PRIMARY KEY,
    nombre                       TEXT NOT NULL,
    equipo                       TEXT NOT NULL DEFAULT '',
    edad                         DOUBLE PRECISION NOT NULL DEFAULT 0,
    altura                       DOUBLE PRECISION NOT NULL DEFAULT 0,
    universidad                  TEXT NOT NULL DEFAULT '',
    pais                         TEXT NOT NULL DEFAULT '',
    partidos_jugados             INTEGER NOT NULL DEFAULT 0,
    puntos_por_partido           DOUBLE PRECISION NOT NULL DEFAULT 0,
    rebotes_por_partido          DOUBLE PRECISION NOT NULL DEFAULT 0,
    asistencias_por_partido      DOUBLE PRECISION NOT NULL DEFAULT 0,
    rating_neto                  DOUBLE PRECISION NOT NULL DEFAULT 0,
    porcentaje_rebotes_ofensivos DOUBLE PRECISION NOT NULL DEFAULT 0,
    porcentaje_rebotes_defensivos DOUBLE PRECISION NOT NULL DEFAULT 0,
    porcentaje_uso               DOUBLE PRECISION NOT NULL DEFAULT 0,
    porcentaje_tiro_efectivo     DOUBLE PRECISION NOT NULL DEFAULT 0,
    porcentaje_asistencias       DOUBLE PRECISION NOT NULL DEFAULT 0,
    temporada                    TEXT NOT NULL DEFAULT '',
    posicion                     TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_jugadores_posicion ON jugadores (posicion);

CREATE TABLE IF NOT EXISTS equipos (
    id         BIGSERIAL PRIMARY KEY,
    usuario_id BIGINT NOT NULL REFERENCES usuarios (id),
    tipo       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS jugador_equipo (
    id         BIGSERIAL PRIMARY KEY,
    equipo_id  BIGINT NOT NULL REFERENCES equipos (id),
    jugador_id BIGINT NOT NULL REFERENCES jugadores (id)
);

CREATE INDEX IF NOT EXISTS idx_jugador_equipo_equipo ON jugador_equipo (equipo_id);

CREATE TABLE IF NOT EXISTS sessions (
    token  TEXT PRIMARY KEY,
    data   BYTEA NOT NULL,
    expiry TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions (expiry);
`

// EnsureSchema creates the tables used by the service if they are missing.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if _, err := p.Pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
