package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/quanganhdev/teacher-management/internal/entity"
	"github.com/quanganhdev/teacher-management/internal/port/cache"
	"github.com/quanganhdev/teacher-management/internal/port/repository"
	"go.uber.org/zap"
)

var ErrPositionCodeGeneration = errors.New("failed to generate unique position code")

const (
	positionCodePrefix = "POS"
	positionCodeDigits = 3

	positionsCacheKey = "positions:all"
	positionsCacheTTL = 5 * time.Minute
)

// CreatePositionInput carries the fields of a new job-title record. The
// code is generated, never supplied by the client.
type CreatePositionInput struct {
	Name        string
	Description string
}

// PositionView is the outward shape of a position record.
type PositionView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"des"`
	IsActive    bool      `json:"isActive"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toPositionView(p *entity.TeacherPosition) PositionView {
	return PositionView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Code:        p.Code,
		Description: p.Description,
		IsActive:    p.IsActive,
		IsDeleted:   p.IsDeleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type PositionUsecase struct {
	repo   repository.PositionRepository
	cache  cache.CacheRepository
	logger *zap.Logger
}

func NewPositionUsecase(repo repository.PositionRepository, cacheRepo cache.CacheRepository, logger *zap.Logger) *PositionUsecase {
	return &PositionUsecase{
		repo:   repo,
		cache:  cacheRepo,
		logger: logger.Named("PositionUsecase"),
	}
}

// List returns all non-deleted positions, read through the cache. Cache
// failures degrade to a direct read, never to an error.
func (u *PositionUsecase) List(ctx context.Context) ([]PositionView, error) {
	if cached, err := u.cache.Get(ctx, positionsCacheKey); err == nil {
		var views []PositionView
		if err := json.Unmarshal(cached, &views); err == nil {
			return views, nil
		}
		u.logger.Warn("Discarding malformed positions cache entry", zap.Error(err))
	} else if !errors.Is(err, cache.ErrNotFound) {
		u.logger.Warn("Positions cache read failed", zap.Error(err))
	}

	positions, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]PositionView, len(positions))
	for i := range positions {
		views[i] = toPositionView(&positions[i])
	}

	if payload, err := json.Marshal(views); err == nil {
		if err := u.cache.Set(ctx, positionsCacheKey, payload, positionsCacheTTL); err != nil {
			u.logger.Warn("Positions cache write failed", zap.Error(err))
		}
	}
	return views, nil
}

func (u *PositionUsecase) GetByID(ctx context.Context, id string) (*PositionView, error) {
	position, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toPositionView(position)
	return &view, nil
}

func (u *PositionUsecase) Create(ctx context.Context, in CreatePositionInput) (*PositionView, error) {
	code := generateCode(positionCodePrefix, time.Now(), positionCodeDigits)
	exists, err := u.repo.CodeExists(ctx, code)
	if err != nil {
		return nil, err
	}
	if exists {
		u.logger.Warn("Position code collision", zap.String("code", code))
		return nil, ErrPositionCodeGeneration
	}

	position := &entity.TeacherPosition{
		Name:        in.Name,
		Code:        code,
		Description: in.Description,
		IsActive:    true,
	}
	id, err := u.repo.Create(ctx, position)
	if err != nil {
		return nil, err
	}
	u.invalidateListCache(ctx)

	created, err := u.repo.GetByID(ctx, id.Hex())
	if err != nil {
		return nil, err
	}
	view := toPositionView(created)
	return &view, nil
}

func (u *PositionUsecase) SoftDelete(ctx context.Context, id string) error {
	if err := u.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	u.invalidateListCache(ctx)
	return nil
}

func (u *PositionUsecase) invalidateListCache(ctx context.Context) {
	if err := u.cache.Delete(ctx, positionsCacheKey); err != nil {
		u.logger.Warn("Positions cache invalidation failed", zap.Error(err))
	}
}
