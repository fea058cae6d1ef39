package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Put("/", h.Save)
	r.Get("/{key}", h.Get)

	return r
}
