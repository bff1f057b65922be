package repository

import (
	"context"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopulatedTeacher is a teacher with its user and position references
// resolved. User is nil when the referenced user is missing or soft-deleted.
type PopulatedTeacher struct {
	Teacher   entity.Teacher
	User      *entity.User
	Positions []entity.TeacherPosition
}

type TeacherRepository interface {
	// List returns non-deleted teachers newest-first with references
	// resolved, plus the total non-deleted count for pagination.
	List(ctx context.Context, page, limit int) ([]PopulatedTeacher, int64, error)
	// GetRawByID returns the populated teacher as a raw document so the
	// storage id fields can be rewritten before the document leaves the API.
	GetRawByID(ctx context.Context, id string) (map[string]interface{}, error)
	Create(ctx context.Context, teacher *entity.Teacher) (primitive.ObjectID, error)
	SoftDelete(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code string) (bool, error)

	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, teachers []entity.Teacher) error
}
