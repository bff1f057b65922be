package handler_test

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/handler"
	"github.com/quanganhdev/teacher-management/internal/port/cache"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"github.com/quanganhdev/teacher-management/internal/router"
	"github.com/quanganhdev/teacher-management/internal/usecase"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockTeacherRepository struct{ mock.Mock }

func (m *MockTeacherRepository) List(ctx context.Context, page, limit int) ([]repository.PopulatedTeacher, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]repository.PopulatedTeacher), args.Get(1).(int64), args.Error(2)
}
func (m *MockTeacherRepository) GetRawByID(ctx context.Context, id string) (map[string]interface{}, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}
func (m *MockTeacherRepository) Create(ctx context.Context, teacher *entity.Teacher) (primitive.ObjectID, error) {
	args := m.Called(ctx, teacher)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockTeacherRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockTeacherRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockTeacherRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockTeacherRepository) InsertMany(ctx context.Context, teachers []entity.Teacher) error {
	return m.Called(ctx, teachers).Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}
func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockUserRepository) HardDelete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockUserRepository) InsertMany(ctx context.Context, users []entity.User) error {
	return m.Called(ctx, users).Error(0)
}

type MockPositionRepository struct{ mock.Mock }

func (m *MockPositionRepository) List(ctx context.Context) ([]entity.TeacherPosition, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.TeacherPosition), args.Error(1)
}
func (m *MockPositionRepository) GetByID(ctx context.Context, id string) (*entity.TeacherPosition, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TeacherPosition), args.Error(1)
}
func (m *MockPositionRepository) Create(ctx context.Context, position *entity.TeacherPosition) (primitive.ObjectID, error) {
	args := m.Called(ctx, position)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}
func (m *MockPositionRepository) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockPositionRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
func (m *MockPositionRepository) DeleteAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
func (m *MockPositionRepository) InsertMany(ctx context.Context, positions []entity.TeacherPosition) error {
	return m.Called(ctx, positions).Error(0)
}

// noopCache always misses; writes and deletes succeed silently. Keeps the
// HTTP tests on the repository path without a Redis instance.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, cache.ErrNotFound }
func (noopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (noopCache) Delete(ctx context.Context, key string) error { return nil }

type testEnv struct {
	teachers  *MockTeacherRepository
	users     *MockUserRepository
	positions *MockPositionRepository
	handler   http.Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		teachers:  new(MockTeacherRepository),
		users:     new(MockUserRepository),
		positions: new(MockPositionRepository),
	}

	logger := zap.NewNop()
	teacherUC := usecase.NewTeacherUsecase(env.teachers, env.users, logger)
	positionUC := usecase.NewPositionUsecase(env.positions, noopCache{}, logger)
	userUC := usecase.NewUserUsecase(env.users, logger)

	r := chi.NewRouter()
	router.Setup(r,
		handler.NewTeacherHandler(teacherUC, logger),
		handler.NewPositionHandler(positionUC, logger),
		handler.NewUserHandler(userUC, logger),
	)
	env.handler = r
	return env
}
