package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"github.com/quanganhdev/teacher-management/internal/usecase"
)

// Every response carries the same envelope:
// { success, data?, pagination?, message?, error? }.
type response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

func newPagination(page, limit int, total int64) *pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, response{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	body := response{Success: false, Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, status, body)
}

// statusForError maps domain errors onto the HTTP taxonomy: bad input and
// constraint violations are 400, missing records 404, anything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, repository.ErrDuplicateCode),
		errors.Is(err, usecase.ErrTeacherCodeGeneration),
		errors.Is(err, usecase.ErrPositionCodeGeneration),
		errors.Is(err, usecase.ErrInvalidPositionID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
