package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Degree is a value object embedded in a Teacher. It has no identity of its
// own and its lifecycle is bound to the owning teacher.
type Degree struct {
	Name           string
	Institution    string
	GraduationYear int
}

// Teacher is the aggregate root of the domain. It references one User and
// zero or more TeacherPositions by id; referential integrity is a convention,
// not enforced at the storage layer.
type Teacher struct {
	ID        primitive.ObjectID
	UserID    primitive.ObjectID
	Code      string
	IsActive  bool
	IsDeleted bool
	StartDate time.Time
	EndDate   *time.Time
	Positions []primitive.ObjectID
	Degrees   []Degree
	CreatedAt time.Time
	UpdatedAt time.Time
}
