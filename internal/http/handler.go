// Package http implements the HTTP boundary: routing, session gating and
// request/response marshaling over the domain services.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"team-builder-service/internal/model"
	"team-builder-service/internal/service"
)

// Session keys. The user id is the only thing that makes a session
// authenticated; flash carries one-shot UI messages across redirects.
const (
	sessionUserIDKey   = "user_id"
	sessionUsernameKey = "username"
	sessionFlashKey    = "flash"
)

// AuthService is the identity contract consumed by the handler.
type AuthService interface {
	Register(ctx context.Context, username, password, passwordConfirm string) (model.User, error)
	Login(ctx context.Context, username, password string) (model.User, error)
}

// PlayerService is the catalog query contract consumed by the handler.
type PlayerService interface {
	ListPlayers(ctx context.Context) ([]model.Player, error)
	GetPlayer(ctx context.Context, id int64) (model.Player, error)
	ListPlayersByPosition(ctx context.Context, position string) ([]model.Player, error)
}

// TeamService is the team assembly contract consumed by the handler.
type TeamService interface {
	CreateTeam(ctx context.Context, ownerID int64, teamType string, playerIDs []int64) (model.Team, error)
	GetTeam(ctx context.Context, ownerID, teamID int64) (model.TeamWithPlayers, error)
	ListTeams(ctx context.Context, ownerID int64) ([]model.TeamWithPlayers, error)
}

type Handler struct {
	Auth     AuthService
	Players  PlayerService
	Teams    TeamService
	Sessions *scs.SessionManager
	Log      *slog.Logger
}

func NewHandler(auth AuthService, players PlayerService, teams TeamService, sessions *scs.SessionManager, log *slog.Logger) *Handler {
	return &Handler{
		Auth:     auth,
		Players:  players,
		Teams:    teams,
		Sessions: sessions,
		Log:      log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(h.Sessions.LoadAndSave)

	r.Get("/health", h.handleHealth)

	r.Get("/login", h.handleLoginPage)
	r.Post("/login", h.handleLogin)
	r.Post("/register", h.handleRegister)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/", h.handleIndex)
		r.Get("/logout", h.handleLogout)

		r.Route("/api", func(r chi.Router) {
			r.Get("/jugadores", h.handlePlayerList)
			r.Get("/jugadores/{id}", h.handlePlayerGet)
			r.Get("/jugadores_por_posicion/{posicion}", h.handlePlayersByPosition)
			r.Post("/crear_equipo", h.handleTeamCreate)
			r.Get("/equipos", h.handleTeamList)
			r.Get("/equipos/{id}", h.handleTeamGet)
		})
	})

	return r
}

// requireSession gates every route behind an authenticated session. API
// paths answer 401 JSON; page paths redirect to the login form.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.Sessions.Exists(r.Context(), sessionUserIDKey) {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				h.writeError(w, "session", service.ErrUnauthorized("authentication required"))
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// currentUserID returns the authenticated owner id from the session. Only
// called behind requireSession.
func (h *Handler) currentUserID(r *http.Request) int64 {
	return h.Sessions.GetInt64(r.Context(), sessionUserIDKey)
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
