package health

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
	case errors.Is(err, ErrInvalidScore):
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto SubmitCheckinDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	checkin, err := h.service.Submit(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, checkin)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	checkins, err := h.service.History(r.Context(), limit)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, checkins)
}

func (h *Handler) TeamOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.TeamOverview(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, overview)
}
