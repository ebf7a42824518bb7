package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"team-builder-service/internal/service"
)

// handleTeamCreate uses the endpoint's own {success, ...} envelope instead of
// the shared error shape: that is the published contract of crear_equipo.
func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, createTeamError{Success: false, Error: "invalid JSON"})
		return
	}

	ownerID := h.currentUserID(r)
	team, err := h.Teams.CreateTeam(r.Context(), ownerID, req.Type, req.Players)
	if err != nil {
		status := http.StatusBadRequest
		msg := err.Error()
		if appErr, ok := err.(*service.AppError); ok {
			status = appErr.Status
			msg = appErr.Message
		}
		h.Log.Error("team creation failed",
			slog.Int64("owner_id", ownerID),
			slog.Any("err", err),
		)
		h.writeJSON(w, status, createTeamError{Success: false, Error: msg})
		return
	}

	h.writeJSON(w, http.StatusOK, createTeamResponse{Success: true, TeamID: team.ID})
}

func (h *Handler) handleTeamList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_list"

	teams, err := h.Teams.ListTeams(r.Context(), h.currentUserID(r))
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	res := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		res = append(res, teamResponseFrom(t))
	}
	h.writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleTeamGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_get"

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, handlerName, service.ErrNotFound("team not found"))
		return
	}

	team, err := h.Teams.GetTeam(r.Context(), h.currentUserID(r), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, teamResponseFrom(team))
}
