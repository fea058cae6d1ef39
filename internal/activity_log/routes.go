package activitylog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Recent)
	r.Get("/{entityType}/{entityID}", h.ByEntity)

	return r
}
