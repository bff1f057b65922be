package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeacherPosition is a job-title record referenced by zero or more teachers.
type TeacherPosition struct {
	ID          primitive.ObjectID
	Name        string
	Code        string
	Description string
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
