package goal

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

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

func yearParam(r *http.Request) int {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year == 0 {
		return time.Now().Year()
	}
	return year
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrGoalNotFound), errors.Is(err, ErrTargetNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidTargetValue),
		errors.Is(err, ErrInvalidStrategy),
		errors.Is(err, ErrInvalidWeights),
		errors.Is(err, ErrWeightsRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := h.service.Create(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create annual goal")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, g)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goals, err := h.service.ListByYear(r.Context(), yearParam(r))
	if err != nil {
		log.WithError(err).Error("Failed to list annual goals")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) WithStatus(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	goals, err := h.service.WithStatus(r.Context(), yearParam(r), time.Now())
	if err != nil {
		log.WithError(err).Error("Failed to compute goal statuses")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, goals)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	g, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		log.WithError(err).Error("Failed to update annual goal")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, g)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.WithError(err).Error("Failed to delete annual goal")
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GenerateCascade(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var payload struct {
		CustomWeights []WeightInput `json:"custom_weights"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			log.WithError(err).Error("Invalid request body")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	targets, err := h.service.GenerateCascade(r.Context(), id, payload.CustomWeights)
	if err != nil {
		log.WithError(err).Error("Failed to generate monthly cascade")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, targets)
}

func (h *Handler) MonthlyTargets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	targets, err := h.service.MonthlyTargets(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to list monthly targets")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, targets)
}

func (h *Handler) AllMonthlyForYear(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	rows, err := h.service.AllMonthlyForYear(r.Context(), yearParam(r))
	if err != nil {
		log.WithError(err).Error("Failed to list monthly targets for year")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, rows)
}

func (h *Handler) UpdateActual(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "targetID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto UpdateActualDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateActual(r.Context(), id, dto.ActualValue)
	if err != nil {
		log.WithError(err).Error("Failed to update monthly actual")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) UpdateActualByGoalMonth(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateActualByMonthDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	t, err := h.service.UpdateActualByGoalMonth(r.Context(), dto.GoalID, dto.Month, dto.Year, dto.ActualValue)
	if err != nil {
		log.WithError(err).Error("Failed to update monthly actual")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) SetLock(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "targetID"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var dto SetLockDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.SetLock(r.Context(), id, dto.IsLocked)
	if err != nil {
		log.WithError(err).Error("Failed to toggle monthly target lock")
		respondError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, t)
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	year := yearParam(r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=monthly-goals-%d.csv", year))

	if err := h.service.ExportMonthlyCSV(r.Context(), year, time.Now(), w); err != nil {
		log.WithError(err).Error("Failed to export monthly grid")
	}
}
