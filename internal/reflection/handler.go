package reflection

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	case errors.Is(err, ErrContentTooLong):
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

// GetByWeek returns null rather than 404 when no reflection exists yet, the
// dashboard treats an empty week as a normal state.
func (h *Handler) GetByWeek(w http.ResponseWriter, r *http.Request) {
	week, _ := strconv.Atoi(r.URL.Query().Get("week"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))

	reflection, err := h.service.GetByWeek(r.Context(), week, year)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, reflection)
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var dto SaveReflectionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	reflection, err := h.service.Save(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, reflection)
}
