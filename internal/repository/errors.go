package repository

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserExists is returned on a duplicate username.
	ErrUserExists = errors.New("username already exists")

	// ErrPlayerNotFound is returned when a catalog id does not exist. It also
	// covers membership inserts rejected by the jugador_equipo foreign key.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrTeamNotFound is returned when a team id does not exist.
	ErrTeamNotFound = errors.New("team not found")
)
