package repository

import (
	"context"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// HardDelete physically removes a user. Only used to compensate for a
	// failed dependent teacher insert and by the seed routine.
	HardDelete(ctx context.Context, id primitive.ObjectID) error

	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, users []entity.User) error
}
