package objective

import (
	"encoding/json"
	"errors"
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

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		config.JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrForbidden):
		config.JSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrObjectiveNotFound):
		config.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (h *Handler) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year == 0 {
		year = time.Now().Year()
	}

	objectives, err := h.service.ListByYear(r.Context(), year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, objectives)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateObjectiveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.Create(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, o)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid objective id"})
		return
	}

	var dto UpdateObjectiveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	o, err := h.service.Update(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, o)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid objective id"})
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) BulkUpdateWeights(w http.ResponseWriter, r *http.Request) {
	var dto BulkWeightsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	objectives, err := h.service.BulkUpdateWeights(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, objectives)
}
