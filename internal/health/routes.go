package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Submit)
	r.Get("/", h.History)
	r.Get("/team", h.TeamOverview)

	return r
}
