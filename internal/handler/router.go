package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/xivix/landing/backend/internal/handler/chat"
	"github.com/xivix/landing/backend/internal/handler/pages"
	middlewarePkg "github.com/xivix/landing/backend/internal/middleware"
	"github.com/xivix/landing/backend/pkg/utils"
)

const serviceName = "XIVIX AI 영업사원"

// NewRouter wires HTTP routes to core services.
func NewRouter(replier chat.Replier, pagesHandler *pages.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	chatHandler := chat.New(replier)

	r.Route("/api", func(api chi.Router) {
		api.Use(middlewarePkg.CORS)

		chatHandler.RegisterRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{
				"status":    "ok",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
				"service":   serviceName,
			})
		})
	})

	pagesHandler.RegisterRoutes(r)

	return r
}
