package activitylog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/growthfarm/opsboard-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Recent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list recent activity")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) ByEntity(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	entityType := chi.URLParam(r, "entityType")
	entityID, err := uuid.Parse(chi.URLParam(r, "entityID"))
	if err != nil {
		http.Error(w, "invalid entity id", http.StatusBadRequest)
		return
	}

	entries, err := h.service.ByEntity(r.Context(), entityType, entityID)
	if err != nil {
		log.WithError(err).Error("Failed to list entity activity")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}
