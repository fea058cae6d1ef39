package weekly

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
	case errors.Is(err, ErrActivityNotFound):
		config.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrPrioritiesFull), errors.Is(err, ErrInvalidStatus):
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func weekParams(r *http.Request) (int, int) {
	week, _ := strconv.Atoi(r.URL.Query().Get("week"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return week, year
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	a, err := h.service.Create(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid activity id"})
		return
	}

	var dto UpdateActivityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	a, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid activity id"})
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	week, year := weekParams(r)
	activities, err := h.service.Mine(r.Context(), week, year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, activities)
}

func (h *Handler) Team(w http.ResponseWriter, r *http.Request) {
	week, year := weekParams(r)
	activities, err := h.service.Team(r.Context(), week, year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, activities)
}

func (h *Handler) AssignedToMe(w http.ResponseWriter, r *http.Request) {
	week, year := weekParams(r)
	activities, err := h.service.AssignedToMe(r.Context(), week, year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, activities)
}

func (h *Handler) TeamPriorities(w http.ResponseWriter, r *http.Request) {
	week, year := weekParams(r)
	activities, err := h.service.TeamPriorities(r.Context(), week, year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, activities)
}
