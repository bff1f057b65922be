package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/port/cache"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var positionCodePattern = regexp.MustCompile(`^POS\d{7}$`)

func TestPositionUsecase_List_CacheHitSkipsRepository(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	cached := []PositionView{{ID: primitive.NewObjectID().Hex(), Name: "Lecturer", Code: "POS2405101"}}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)
	cacheRepo.On("Get", mock.Anything, "positions:all").Return(payload, nil)

	views, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, cached, views)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestPositionUsecase_List_CacheMissPopulatesCache(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	positions := []entity.TeacherPosition{
		{ID: primitive.NewObjectID(), Name: "Lecturer", Code: "POS2405101", Description: "Teaching staff", IsActive: true},
	}
	cacheRepo.On("Get", mock.Anything, "positions:all").Return(nil, cache.ErrNotFound)
	repo.On("List", mock.Anything).Return(positions, nil)
	cacheRepo.On("Set", mock.Anything, "positions:all", mock.Anything, positionsCacheTTL).Return(nil)

	views, err := uc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Lecturer", views[0].Name)
	assert.Equal(t, positions[0].ID.Hex(), views[0].ID)
	cacheRepo.AssertExpectations(t)
}

func TestPositionUsecase_List_CacheErrorDegradesToRepository(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	cacheRepo.On("Get", mock.Anything, "positions:all").Return(nil, cache.CacheError("connection refused"))
	repo.On("List", mock.Anything).Return([]entity.TeacherPosition{}, nil)
	cacheRepo.On("Set", mock.Anything, "positions:all", mock.Anything, mock.Anything).
		Return(cache.CacheError("connection refused"))

	views, err := uc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, views)
	repo.AssertCalled(t, "List", mock.Anything)
}

func TestPositionUsecase_Create_GeneratesCodeAndInvalidatesCache(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	id := primitive.NewObjectID()
	created := &entity.TeacherPosition{
		ID:          id,
		Name:        "Lecturer",
		Code:        "POS2608042",
		Description: "Teaching staff",
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	repo.On("CodeExists", mock.Anything, mock.MatchedBy(func(code string) bool {
		return positionCodePattern.MatchString(code)
	})).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.TeacherPosition) bool {
		return p.Name == "Lecturer" && p.IsActive && positionCodePattern.MatchString(p.Code)
	})).Return(id, nil)
	cacheRepo.On("Delete", mock.Anything, "positions:all").Return(nil)
	repo.On("GetByID", mock.Anything, id.Hex()).Return(created, nil)

	view, err := uc.Create(context.Background(), CreatePositionInput{
		Name:        "Lecturer",
		Description: "Teaching staff",
	})

	require.NoError(t, err)
	assert.Equal(t, id.Hex(), view.ID)
	assert.Equal(t, "POS2608042", view.Code)
	cacheRepo.AssertCalled(t, "Delete", mock.Anything, "positions:all")
	repo.AssertExpectations(t)
}

func TestPositionUsecase_Create_CodeCollision(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	repo.On("CodeExists", mock.Anything, mock.Anything).Return(true, nil)

	_, err := uc.Create(context.Background(), CreatePositionInput{Name: "Lecturer"})

	assert.ErrorIs(t, err, ErrPositionCodeGeneration)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPositionUsecase_SoftDelete_InvalidatesCache(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	repo.On("SoftDelete", mock.Anything, "abc").Return(nil)
	cacheRepo.On("Delete", mock.Anything, "positions:all").Return(nil)

	err := uc.SoftDelete(context.Background(), "abc")

	require.NoError(t, err)
	cacheRepo.AssertCalled(t, "Delete", mock.Anything, "positions:all")
}

func TestPositionUsecase_SoftDelete_NotFoundSkipsInvalidation(t *testing.T) {
	repo := new(MockPositionRepository)
	cacheRepo := new(MockCacheRepository)
	uc := NewPositionUsecase(repo, cacheRepo, zap.NewNop())

	repo.On("SoftDelete", mock.Anything, "missing").Return(repository.ErrNotFound)

	err := uc.SoftDelete(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
	cacheRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGenerateCode_Format(t *testing.T) {
	now := time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		code := generateCode("T", now, 4)
		assert.Regexp(t, `^T2405\d{4}$`, code)
	}
	for i := 0; i < 50; i++ {
		code := generateCode("POS", now, 3)
		assert.Regexp(t, `^POS2405\d{3}$`, code)
	}
}
