package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worldradio/newsroom-go/internal/middleware"
	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/service"
)

// FavoriteHandler handles HTTP requests for saved articles.
type FavoriteHandler struct {
	service *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{service: svc}
}

// HandleList handles GET /api/favorites requests.
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("no token provided"))
		return
	}

	favs, err := h.service.List(r.Context(), userID)
	if err != nil {
		slog.Error("listing favorites", "user_id", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, favs)
}

// HandleAdd handles POST /api/favorites requests.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("no token provided"))
		return
	}

	var req model.FavoriteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Add(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleURLRequired), errors.Is(err, service.ErrAlreadyFavorited):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("adding favorite", "user_id", userID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleDelete handles DELETE /api/favorites/{id} requests. Removing an id the
// caller does not own succeeds without touching the row.
func (h *FavoriteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("no token provided"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid favorite id"))
		return
	}

	if err := h.service.Remove(r.Context(), userID, id); err != nil {
		slog.Error("removing favorite", "user_id", userID, "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, successResponse())
}
