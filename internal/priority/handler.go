package priority

import (
	"encoding/json"
	"errors"
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

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		config.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		config.JSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrPriorityNotFound):
		config.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrWeekFull), errors.Is(err, ErrInvalidStatus):
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreatePriorityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	p, err := h.service.Create(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid priority id"})
		return
	}

	var dto UpdatePriorityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	p, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid priority id"})
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CurrentWeek(w http.ResponseWriter, r *http.Request) {
	priorities, err := h.service.CurrentWeek(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, priorities)
}

func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	week, _ := strconv.Atoi(r.URL.Query().Get("week"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	priorities, err := h.service.Mine(r.Context(), week, year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, priorities)
}
