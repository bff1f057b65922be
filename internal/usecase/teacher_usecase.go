package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrTeacherCodeGeneration = errors.New("failed to generate unique teacher code")
	ErrInvalidPositionID     = errors.New("invalid teacher position id")
)

const (
	teacherCodePrefix = "T"
	teacherCodeDigits = 4
)

// CreateTeacherInput carries an embedded user payload plus the teacher
// fields. The user is created first; the teacher references it.
type CreateTeacherInput struct {
	User      CreateUserInput
	StartDate time.Time
	EndDate   *time.Time
	Positions []string
	Degrees   []entity.Degree
}

// PositionSummary and DegreeSummary are the denormalized fragments of a
// teacher list row.
type PositionSummary struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DegreeSummary struct {
	Type           string `json:"type"`
	School         string `json:"school"`
	GraduationYear int    `json:"graduationYear"`
}

// TeacherSummary is a teacher list row enriched with the referenced user's
// identity fields. User fields stay empty when the reference is missing or
// soft-deleted.
type TeacherSummary struct {
	Code        string            `json:"code"`
	Name        string            `json:"name,omitempty"`
	Email       string            `json:"email,omitempty"`
	PhoneNumber string            `json:"phoneNumber,omitempty"`
	Address     string            `json:"address,omitempty"`
	Identity    string            `json:"identity,omitempty"`
	DOB         *time.Time        `json:"dob,omitempty"`
	IsActive    bool              `json:"isActive"`
	Positions   []PositionSummary `json:"positions"`
	Degrees     []DegreeSummary   `json:"degrees"`
}

type TeacherUsecase struct {
	teachers repository.TeacherRepository
	users    repository.UserRepository
	logger   *zap.Logger
}

func NewTeacherUsecase(teachers repository.TeacherRepository, users repository.UserRepository, logger *zap.Logger) *TeacherUsecase {
	return &TeacherUsecase{
		teachers: teachers,
		users:    users,
		logger:   logger.Named("TeacherUsecase"),
	}
}

func (u *TeacherUsecase) List(ctx context.Context, page, limit int) ([]TeacherSummary, int64, error) {
	populated, total, err := u.teachers.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]TeacherSummary, len(populated))
	for i := range populated {
		rows[i] = toTeacherSummary(&populated[i])
	}
	return rows, total, nil
}

func toTeacherSummary(p *repository.PopulatedTeacher) TeacherSummary {
	row := TeacherSummary{
		Code:     p.Teacher.Code,
		IsActive: p.Teacher.IsActive,
	}
	if p.User != nil {
		dob := p.User.DOB
		row.Name = p.User.Name
		row.Email = p.User.Email
		row.PhoneNumber = p.User.PhoneNumber
		row.Address = p.User.Address
		row.Identity = p.User.Identity
		row.DOB = &dob
	}
	row.Positions = make([]PositionSummary, len(p.Positions))
	for i, pos := range p.Positions {
		row.Positions[i] = PositionSummary{
			Code:        pos.Code,
			Name:        pos.Name,
			Description: pos.Description,
		}
	}
	row.Degrees = make([]DegreeSummary, len(p.Teacher.Degrees))
	for i, deg := range p.Teacher.Degrees {
		row.Degrees[i] = DegreeSummary{
			Type:           deg.Name,
			School:         deg.Institution,
			GraduationYear: deg.GraduationYear,
		}
	}
	return row
}

// GetByID returns the populated teacher as a raw document; the handler
// rewrites its storage ids before responding.
func (u *TeacherUsecase) GetByID(ctx context.Context, id string) (map[string]interface{}, error) {
	return u.teachers.GetRawByID(ctx, id)
}

// Create inserts the embedded user first, then the teacher referencing it.
// When the teacher insert fails the orphaned user is removed best-effort;
// the two inserts are not transactional.
func (u *TeacherUsecase) Create(ctx context.Context, in CreateTeacherInput) (map[string]interface{}, error) {
	positionIDs := make([]primitive.ObjectID, len(in.Positions))
	for i, raw := range in.Positions {
		objID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return nil, ErrInvalidPositionID
		}
		positionIDs[i] = objID
	}

	userID, err := u.users.Create(ctx, userFromInput(in.User))
	if err != nil {
		return nil, err
	}

	code := generateCode(teacherCodePrefix, time.Now(), teacherCodeDigits)
	exists, err := u.teachers.CodeExists(ctx, code)
	if err == nil && exists {
		u.logger.Warn("Teacher code collision", zap.String("code", code))
		err = ErrTeacherCodeGeneration
	}
	if err != nil {
		u.removeOrphanedUser(ctx, userID)
		return nil, err
	}

	teacher := &entity.Teacher{
		UserID:    userID,
		Code:      code,
		IsActive:  true,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Positions: positionIDs,
		Degrees:   in.Degrees,
	}
	teacherID, err := u.teachers.Create(ctx, teacher)
	if err != nil {
		u.removeOrphanedUser(ctx, userID)
		return nil, err
	}

	return u.teachers.GetRawByID(ctx, teacherID.Hex())
}

func (u *TeacherUsecase) removeOrphanedUser(ctx context.Context, userID primitive.ObjectID) {
	if err := u.users.HardDelete(ctx, userID); err != nil {
		u.logger.Warn("Failed to remove orphaned user after teacher creation failure",
			zap.String("userID", userID.Hex()), zap.Error(err))
	}
}

func (u *TeacherUsecase) SoftDelete(ctx context.Context, id string) error {
	return u.teachers.SoftDelete(ctx, id)
}
