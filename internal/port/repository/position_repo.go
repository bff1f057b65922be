package repository

import (
	"context"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PositionRepository interface {
	List(ctx context.Context) ([]entity.TeacherPosition, error)
	GetByID(ctx context.Context, id string) (*entity.TeacherPosition, error)
	Create(ctx context.Context, position *entity.TeacherPosition) (primitive.ObjectID, error)
	SoftDelete(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code string) (bool, error)

	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, positions []entity.TeacherPosition) error
}
