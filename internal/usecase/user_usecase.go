package usecase

import (
	"context"
	"time"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"go.uber.org/zap"
)

// CreateUserInput carries the fields of a new identity record.
type CreateUserInput struct {
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	Identity    string
	DOB         time.Time
	Role        string
}

// UserView is the outward shape of a user record.
type UserView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     string    `json:"address"`
	Identity    string    `json:"identity"`
	DOB         time.Time `json:"dob"`
	Role        string    `json:"role"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserView(u *entity.User) UserView {
	return UserView{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		Identity:    u.Identity,
		DOB:         u.DOB,
		Role:        u.Role,
		IsDeleted:   u.IsDeleted,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func userFromInput(in CreateUserInput) *entity.User {
	user := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		Identity:    in.Identity,
		DOB:         in.DOB,
		Role:        in.Role,
	}
	if user.Role == "" {
		user.Role = entity.RoleTeacher
	}
	if user.DOB.IsZero() {
		user.DOB = time.Now()
	}
	return user
}

type UserUsecase struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

func NewUserUsecase(repo repository.UserRepository, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		repo:   repo,
		logger: logger.Named("UserUsecase"),
	}
}

func (u *UserUsecase) Create(ctx context.Context, in CreateUserInput) (*UserView, error) {
	user := userFromInput(in)
	id, err := u.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toUserView(created)
	return &view, nil
}

func (u *UserUsecase) EmailExists(ctx context.Context, email string) (bool, error) {
	return u.repo.EmailExists(ctx, email)
}
