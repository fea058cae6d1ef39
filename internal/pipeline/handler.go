package pipeline

import (
	"encoding/json"
	"errors"
	"net/http"

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
	case errors.Is(err, ErrCardNotFound), errors.Is(err, ErrStageNotFound):
		config.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ErrInvalidPipeline), errors.Is(err, ErrInvalidValue), errors.Is(err, ErrStageMismatch):
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		config.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func (h *Handler) Board(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Board(r.Context(), PipelineType(chi.URLParam(r, "type")))
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, board)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	var dto CreateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	card, err := h.service.CreateCard(r.Context(), dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, card)
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid card id"})
		return
	}

	var dto UpdateCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	card, err := h.service.UpdateCard(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, card)
}

func (h *Handler) MoveCard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid card id"})
		return
	}

	var dto MoveCardDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	card, err := h.service.MoveCard(r.Context(), id, dto)
	if err != nil {
		respondError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, card)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid card id"})
		return
	}

	if err := h.service.DeleteCard(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
