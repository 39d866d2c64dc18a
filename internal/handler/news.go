package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worldradio/newsroom-go/internal/model"
	"github.com/worldradio/newsroom-go/internal/news"
	"github.com/worldradio/newsroom-go/internal/service"
)

// NewsHandler serves cached provider pages.
type NewsHandler struct {
	service *service.NewsService
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{service: svc}
}

// HandleGetNews handles GET /api/news requests.
func (h *NewsHandler) HandleGetNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := model.NewsRequest{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     q.Get("page"),
	}

	payload, err := h.service.Get(r.Context(), req)
	if err != nil {
		var upErr *news.UpstreamError
		switch {
		case errors.Is(err, service.ErrInvalidPage):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.As(err, &upErr):
			writeJSON(w, http.StatusBadRequest, errorResponse(upErr.Message))
		default:
			slog.Error("fetching news", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to fetch news"))
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

// HealthHandler reports liveness and whether the provider key is set.
type HealthHandler struct {
	keyConfigured bool
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(keyConfigured bool) *HealthHandler {
	return &HealthHandler{keyConfigured: keyConfigured}
}

// HandleHealth handles GET /api/health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:                "ok",
		UpstreamKeyConfigured: h.keyConfigured,
	})
}
