package weekly

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.Team)
	r.Get("/mine", h.Mine)
	r.Get("/assigned", h.AssignedToMe)
	r.Get("/priorities", h.TeamPriorities)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
