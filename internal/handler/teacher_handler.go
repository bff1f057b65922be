package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/normalize"
	"github.com/quanganhdev/teacher-management/internal/usecase"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

type TeacherHandler struct {
	usecase  *usecase.TeacherUsecase
	validate *validator.Validate
	logger   *zap.Logger
}

func NewTeacherHandler(uc *usecase.TeacherUsecase, logger *zap.Logger) *TeacherHandler {
	return &TeacherHandler{
		usecase:  uc,
		validate: validator.New(),
		logger:   logger.Named("TeacherHandler"),
	}
}

type createTeacherUserRequest struct {
	Name        string     `json:"name" validate:"required"`
	Email       string     `json:"email" validate:"required,email"`
	PhoneNumber string     `json:"phoneNumber" validate:"required"`
	Address     string     `json:"address"`
	Identity    string     `json:"identity" validate:"required"`
	DOB         *time.Time `json:"dob"`
	Role        string     `json:"role"`
}

type degreeRequest struct {
	Name           string `json:"name" validate:"required"`
	Institution    string `json:"institution" validate:"required"`
	GraduationYear int    `json:"graduationYear" validate:"required"`
}

type createTeacherRequest struct {
	User      createTeacherUserRequest `json:"user" validate:"required"`
	StartDate time.Time                `json:"startDate" validate:"required"`
	EndDate   *time.Time               `json:"endDate"`
	Positions []string                 `json:"teacherPositions"`
	Degrees   []degreeRequest          `json:"degrees" validate:"dive"`
}

func parsePageQuery(r *http.Request) (page, limit int) {
	page, limit = defaultPage, defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageQuery(r)

	rows, total, err := h.usecase.List(r.Context(), page, limit)
	if err != nil {
		h.logger.Error("Failed to list teachers", zap.Error(err))
		respondError(w, statusForError(err), "Error fetching teachers", err)
		return
	}

	writeJSON(w, http.StatusOK, response{
		Success:    true,
		Data:       rows,
		Pagination: newPagination(page, limit, total),
	})
}

func (h *TeacherHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	doc, err := h.usecase.GetByID(r.Context(), id)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			respondError(w, status, "Teacher not found", nil)
			return
		}
		h.logger.Error("Failed to get teacher", zap.String("teacherID", id), zap.Error(err))
		respondError(w, status, "Error fetching teacher", err)
		return
	}

	respondData(w, http.StatusOK, normalize.Document(doc))
}

func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Error creating teacher", err)
		return
	}

	input := usecase.CreateTeacherInput{
		User: usecase.CreateUserInput{
			Name:        req.User.Name,
			Email:       req.User.Email,
			PhoneNumber: req.User.PhoneNumber,
			Address:     req.User.Address,
			Identity:    req.User.Identity,
			Role:        req.User.Role,
		},
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Positions: req.Positions,
	}
	if req.User.DOB != nil {
		input.User.DOB = *req.User.DOB
	}
	input.Degrees = make([]entity.Degree, len(req.Degrees))
	for i, deg := range req.Degrees {
		input.Degrees[i] = entity.Degree{
			Name:           deg.Name,
			Institution:    deg.Institution,
			GraduationYear: deg.GraduationYear,
		}
	}

	doc, err := h.usecase.Create(r.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create teacher", zap.String("email", req.User.Email), zap.Error(err))
		respondError(w, statusForError(err), "Error creating teacher", err)
		return
	}

	h.logger.Info("Teacher created via HTTP", zap.String("email", req.User.Email))
	respondData(w, http.StatusCreated, normalize.Document(doc))
}

func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.usecase.SoftDelete(r.Context(), id); err != nil {
		status := statusForError(err)
		if status == http.StatusNotFound {
			respondError(w, status, "Teacher not found", nil)
			return
		}
		h.logger.Error("Failed to delete teacher", zap.String("teacherID", id), zap.Error(err))
		respondError(w, status, "Error deleting teacher", err)
		return
	}

	writeJSON(w, http.StatusOK, response{Success: true, Message: "Teacher deleted successfully"})
}
