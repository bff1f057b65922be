package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleTeacher = "TEACHER"

// User is the identity record a Teacher refers to. A Teacher references
// exactly one User but does not own its lifecycle.
type User struct {
	ID          primitive.ObjectID
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Identity    string // national identity number
	DOB         time.Time
	Role        string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
