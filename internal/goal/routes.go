package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/status", h.WithStatus)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/cascade", h.GenerateCascade)
	r.Get("/{id}/monthly", h.MonthlyTargets)

	r.Get("/monthly", h.AllMonthlyForYear)
	r.Get("/monthly/export", h.ExportCSV)
	r.Put("/monthly/actual", h.UpdateActualByGoalMonth)
	r.Put("/monthly/{targetID}/actual", h.UpdateActual)
	r.Put("/monthly/{targetID}/lock", h.SetLock)

	return r
}
