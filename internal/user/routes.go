package user

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetUser)
	r.Get("/", h.List)
	r.Put("/me/profile", h.UpdateProfile)
	r.Post("/invite", h.Invite)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)

	return r
}
