package repository

import (
	"Ronghua/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GameRepo interface {
	ListActiveChallenges(ctx context.Context) ([]*model.Challenge, error)
	CountChallenges(ctx context.Context) (total int64, active int64, err error)
	CountAchievements(ctx context.Context) (int64, error)
}

type GameRepoImpl struct {
	db *gorm.DB
}

func NewGameRepo(db *gorm.DB) GameRepo {
	return &GameRepoImpl{db: db}
}

func (s *GameRepoImpl) ListActiveChallenges(ctx context.Context) ([]*model.Challenge, error) {
	challenges := make([]*model.Challenge, 0)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&challenges).Error
	return challenges, errors.Wrap(err, "list active challenges")
}

func (s *GameRepoImpl) CountChallenges(ctx context.Context) (int64, int64, error) {
	var total, active int64
	if err := s.db.WithContext(ctx).Model(&model.Challenge{}).Count(&total).Error; err != nil {
		return 0, 0, errors.Wrap(err, "count challenges")
	}
	if err := s.db.WithContext(ctx).Model(&model.Challenge{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, errors.Wrap(err, "count active challenges")
	}
	return total, active, nil
}

func (s *GameRepoImpl) CountAchievements(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Achievement{}).Count(&total).Error
	return total, errors.Wrap(err, "count achievements")
}
