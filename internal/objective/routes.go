package objective

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListByYear)
	r.Post("/", h.Create)
	r.Put("/weights", h.BulkUpdateWeights)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
