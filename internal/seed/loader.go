// Package seed implements the one-shot fixture import that replaces the
// positions, users and teachers collections at startup.
package seed

import (
	"context"
	"path/filepath"
	"time"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"go.uber.org/zap"
)

const (
	positionsFixture = "school.teacherposition.json"
	usersFixture     = "school.user.json"
	teachersFixture  = "school.teacher.json"
)

type Loader struct {
	positions repository.PositionRepository
	users     repository.UserRepository
	teachers  repository.TeacherRepository
	dir       string
	logger    *zap.Logger
}

func NewLoader(
	positions repository.PositionRepository,
	users repository.UserRepository,
	teachers repository.TeacherRepository,
	dir string,
	logger *zap.Logger,
) *Loader {
	return &Loader{
		positions: positions,
		users:     users,
		teachers:  teachers,
		dir:       dir,
		logger:    logger.Named("Seed"),
	}
}

// Run reads the three fixture files, reshapes the records and replaces the
// target collections. Not transactional: a mid-sequence failure leaves
// partial state, which is acceptable for a controlled startup seed. Any
// error aborts the routine and propagates to the caller.
func (l *Loader) Run(ctx context.Context) error {
	rawPositions, err := decodeFixture[rawPosition](filepath.Join(l.dir, positionsFixture))
	if err != nil {
		return err
	}
	rawUsers, err := decodeFixture[rawUser](filepath.Join(l.dir, usersFixture))
	if err != nil {
		return err
	}
	rawTeachers, err := decodeFixture[rawTeacher](filepath.Join(l.dir, teachersFixture))
	if err != nil {
		return err
	}

	now := time.Now()
	positions := transformPositions(rawPositions)
	users := transformUsers(rawUsers, now)
	teachers := transformTeachers(rawTeachers, now)

	// Clear existing data before inserting.
	if err := l.positions.DeleteAll(ctx); err != nil {
		return err
	}
	if err := l.teachers.DeleteAll(ctx); err != nil {
		return err
	}
	if err := l.users.DeleteAll(ctx); err != nil {
		return err
	}

	// Teachers reference positions and users by id only, so insertion
	// order is a convention, not an enforced constraint.
	if err := l.positions.InsertMany(ctx, positions); err != nil {
		return err
	}
	if err := l.users.InsertMany(ctx, users); err != nil {
		return err
	}
	if err := l.teachers.InsertMany(ctx, teachers); err != nil {
		return err
	}

	l.logger.Info("Fixture data loaded",
		zap.Int("positions", len(positions)),
		zap.Int("users", len(users)),
		zap.Int("teachers", len(teachers)))
	return nil
}

func transformPositions(raws []rawPosition) []entity.TeacherPosition {
	positions := make([]entity.TeacherPosition, len(raws))
	for i, raw := range raws {
		positions[i] = entity.TeacherPosition{
			ID:          raw.ID,
			Name:        raw.Name,
			Code:        raw.Code,
			Description: raw.Des,
			IsActive:    true,
			IsDeleted:   false,
			CreatedAt:   raw.CreatedAt,
			UpdatedAt:   raw.UpdatedAt,
		}
	}
	return positions
}

// transformUsers keeps only records with the TEACHER role. Missing dates
// fall back to the transform time; a deliberate default, not a guarantee of
// data integrity.
func transformUsers(raws []rawUser, now time.Time) []entity.User {
	users := make([]entity.User, 0, len(raws))
	for _, raw := range raws {
		if raw.Role != entity.RoleTeacher {
			continue
		}
		user := entity.User{
			ID:          raw.ID,
			Name:        raw.Name,
			Email:       raw.Email,
			PhoneNumber: raw.PhoneNumber,
			Address:     raw.Address,
			Identity:    raw.Identity,
			DOB:         now,
			Role:        entity.RoleTeacher,
			IsDeleted:   false,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if raw.DOB != nil {
			user.DOB = *raw.DOB
		}
		if raw.CreatedAt != nil {
			user.CreatedAt = *raw.CreatedAt
		}
		if raw.UpdatedAt != nil {
			user.UpdatedAt = *raw.UpdatedAt
		}
		users = append(users, user)
	}
	return users
}

func transformTeachers(raws []rawTeacher, now time.Time) []entity.Teacher {
	teachers := make([]entity.Teacher, len(raws))
	for i, raw := range raws {
		degrees := make([]entity.Degree, len(raw.Degrees))
		for j, deg := range raw.Degrees {
			degrees[j] = entity.Degree{
				Name:           deg.Type,
				Institution:    deg.School,
				GraduationYear: deg.Year,
			}
			if degrees[j].Name == "" {
				degrees[j].Name = "Bachelor"
			}
			if degrees[j].Institution == "" {
				degrees[j].Institution = "Unknown"
			}
			if degrees[j].GraduationYear == 0 {
				degrees[j].GraduationYear = now.Year()
			}
		}

		teachers[i] = entity.Teacher{
			ID:        raw.ID,
			UserID:    raw.UserID,
			Code:      raw.Code,
			IsActive:  true,
			IsDeleted: false,
			StartDate: raw.StartDate,
			EndDate:   raw.EndDate,
			Positions: raw.Positions,
			Degrees:   degrees,
			CreatedAt: raw.CreatedAt,
			UpdatedAt: raw.UpdatedAt,
		}
	}
	return teachers
}
