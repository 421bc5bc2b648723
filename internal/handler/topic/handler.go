package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itf-dev/schedule-masters/internal/model/topic"
	"github.com/itf-dev/schedule-masters/pkg/utils"
)

// Handler serves the read-only topic catalog.
type Handler struct {
	catalog topic.Catalog
}

// New creates the topic handler.
func New(catalog topic.Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes mounts the catalog routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/topics", h.handleListTopics)
	r.Get("/topics/{topicID}", h.handleGetTopic)
}

func (h *Handler) handleListTopics(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.catalog.List())
}

func (h *Handler) handleGetTopic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "topicID")

	item, ok := h.catalog.Lookup(id)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "topic not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, item)
}
