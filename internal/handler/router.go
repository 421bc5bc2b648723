package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	completionHandler "github.com/itf-dev/schedule-masters/internal/handler/completion"
	topicHandler "github.com/itf-dev/schedule-masters/internal/handler/topic"
	middlewarePkg "github.com/itf-dev/schedule-masters/internal/middleware"
	topicModel "github.com/itf-dev/schedule-masters/internal/model/topic"
	completionService "github.com/itf-dev/schedule-masters/internal/service/completion"
	"github.com/itf-dev/schedule-masters/pkg/utils"
)

// NewRouter wires HTTP routes to core services. completionSvc may be nil when
// provider credentials are absent; the endpoint then answers 503.
func NewRouter(catalog topicModel.Catalog, completionSvc *completionService.Service) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		topicHandler.New(catalog).RegisterRoutes(api)

		if completionSvc != nil {
			completionHandler.New(completionSvc).RegisterRoutes(api)
		} else {
			api.Post("/completion/{topicID}", func(w http.ResponseWriter, _ *http.Request) {
				utils.RespondError(w, http.StatusServiceUnavailable, "ai completion unavailable")
			})
		}
	})

	return r
}
