package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"team-builder-service/internal/service"
)

func (h *Handler) handlePlayerList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_list"

	players, err := h.Players.ListPlayers(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summariesFromPlayers(players))
}

func (h *Handler) handlePlayerGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "player_get"

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id is indistinguishable from a missing player.
		h.writeError(w, handlerName, service.ErrNotFound("player not found"))
		return
	}

	player, err := h.Players.GetPlayer(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, player)
}

func (h *Handler) handlePlayersByPosition(w http.ResponseWriter, r *http.Request) {
	const handlerName = "players_by_position"

	position, err := url.PathUnescape(chi.URLParam(r, "posicion"))
	if err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid posicion"))
		return
	}

	players, err := h.Players.ListPlayersByPosition(r.Context(), position)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, summariesFromPlayers(players))
}
