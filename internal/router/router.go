package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/quanganhdev/teacher-management/internal/handler"
)

// Setup registers the full HTTP surface.
func Setup(r *chi.Mux, teachers *handler.TeacherHandler, positions *handler.PositionHandler, users *handler.UserHandler) {
	r.Get("/healthz", handler.Health)

	r.Get("/api/teachers", teachers.List)
	r.Get("/api/teachers/{id}", teachers.GetByID)
	r.Post("/api/teachers", teachers.Create)
	r.Delete("/api/teachers/{id}", teachers.Delete)

	r.Get("/api/teacher-positions", positions.List)
	r.Get("/api/teacher-positions/{id}", positions.GetByID)
	r.Post("/api/teacher-positions", positions.Create)
	r.Delete("/api/teacher-positions/{id}", positions.Delete)

	r.Post("/api/users", users.Create)
	r.Get("/api/users/check-email/{email}", users.CheckEmail)
}
