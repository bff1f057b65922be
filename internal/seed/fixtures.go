package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fixture records are stored as MongoDB extended JSON: ids and dates arrive
// wrapped in $oid/$date envelopes. bson.UnmarshalExtJSON unwraps them into
// native ObjectID and time.Time values; optional fields are pointers so
// absence survives the decode.

type rawPosition struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Code      string             `bson:"code"`
	Des       string             `bson:"des"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type rawUser struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phoneNumber"`
	Address     string             `bson:"address"`
	Identity    string             `bson:"identity"`
	DOB         *time.Time         `bson:"dob"`
	Role        string             `bson:"role"`
	CreatedAt   *time.Time         `bson:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt"`
}

type rawDegree struct {
	Type   string `bson:"type"`
	School string `bson:"school"`
	Year   int    `bson:"year"`
}

type rawTeacher struct {
	ID        primitive.ObjectID   `bson:"_id"`
	UserID    primitive.ObjectID   `bson:"userId"`
	Code      string               `bson:"code"`
	StartDate time.Time            `bson:"startDate"`
	EndDate   *time.Time           `bson:"endDate"`
	Positions []primitive.ObjectID `bson:"teacherPositionsId"`
	Degrees   []rawDegree          `bson:"degrees"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

// decodeFixture parses a fixture file: a JSON array whose elements are
// extended-JSON documents.
func decodeFixture[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("%s: not a JSON array: %w", filepath.Base(path), err)
	}

	out := make([]T, len(raws))
	for i, raw := range raws {
		if err := bson.UnmarshalExtJSON(raw, false, &out[i]); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", filepath.Base(path), i, err)
		}
	}
	return out, nil
}
