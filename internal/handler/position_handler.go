package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/quanganhdev/teacher-management/internal/usecase"
	"go.uber.org/zap"
)

type PositionHandler struct {
	usecase  *usecase.PositionUsecase
	validate *validator.Validate
	logger   *zap.Logger
}

func NewPositionHandler(uc *usecase.PositionUsecase, logger *zap.Logger) *PositionHandler {
	return &PositionHandler{
		usecase:  uc,
		validate: validator.New(),
		logger:   logger.Named("PositionHandler"),
	}
}

type createPositionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"des" validate:"required"`
}

func (h *PositionHandler) List(w http.ResponseWriter, r *http.Request) {
	positions, err := h.usecase.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list positions", zap.Error(err))
		respondError(w, statusForError(err), "Error fetching positions", err)
		return
	}
	respondData(w, http.StatusOK, positions)
}

func (h *PositionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	position, err := h.usecase.GetByID(r.Context(), id)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			respondError(w, status, "Position not found", nil)
			return
		}
		h.logger.Error("Failed to get position", zap.String("positionID", id), zap.Error(err))
		respondError(w, status, "Error fetching position", err)
		return
	}
	respondData(w, http.StatusOK, position)
}

func (h *PositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Error creating position", err)
		return
	}

	position, err := h.usecase.Create(r.Context(), usecase.CreatePositionInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Failed to create position", zap.String("name", req.Name), zap.Error(err))
		respondError(w, statusForError(err), "Error creating position", err)
		return
	}

	respondData(w, http.StatusCreated, position)
}

func (h *PositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.usecase.SoftDelete(r.Context(), id); err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			respondError(w, status, "Position not found", nil)
			return
		}
		h.logger.Error("Failed to delete position", zap.String("positionID", id), zap.Error(err))
		respondError(w, status, "Error deleting position", err)
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "Position deleted successfully"})
}
