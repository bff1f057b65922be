package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/quanganhdev/teacher-management/internal/usecase"
	"go.uber.org/zap"
)

type UserHandler struct {
	usecase  *usecase.UserUsecase
	validate *validator.Validate
	logger   *zap.Logger
}

func NewUserHandler(uc *usecase.UserUsecase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		usecase:  uc,
		validate: validator.New(),
		logger:   logger.Named("UserHandler"),
	}
}

type createUserRequest struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber string     `json:"phoneNumber" validate:"required"`
	Address     string     `json:"address"`
	Identity    string     `json:"identity" validate:"required"`
	DOB         *time.Time `json:"dob"`
	Role        string     `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Error creating user", err)
		return
	}

	input := usecase.CreateUserInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Identity:    req.Identity,
		Role:        req.Role,
	}
	if req.DOB != nil {
		input.DOB = *req.DOB
	}

	user, err := h.usecase.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create user", zap.String("email", req.Email), zap.Error(err))
		respondError(w, statusForError(err), "Error creating user", err)
		return
	}

	respondData(w, http.StatusCreated, user)
}

func (h *UserHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	exists, err := h.usecase.EmailExists(r.Context(), email)
	if err != nil {
		h.logger.Error("Failed to check email", zap.String("email", email), zap.Error(err))
		respondError(w, statusForError(err), "Error checking email", err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		Exists  bool `json:"exists"`
	}{Success: true, Exists: exists})
}
