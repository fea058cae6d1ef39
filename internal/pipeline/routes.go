package pipeline

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/{type}/board", h.Board)
	r.Post("/cards", h.CreateCard)
	r.Put("/cards/{id}", h.UpdateCard)
	r.Put("/cards/{id}/move", h.MoveCard)
	r.Delete("/cards/{id}", h.DeleteCard)

	return r
}
