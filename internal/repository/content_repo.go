package repository

import (
	"Ronghua/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryCount struct {
	Category string
	Count    int64
}

type EncyclopediaRepo interface {
	CrudRepo[model.EncyclopediaContent]
	Delete(ctx context.Context, id uint64) (int64, error)
	IncrView(ctx context.Context, id uint64) error
	CountByCategory(ctx context.Context) ([]CategoryCount, error)
}

type EncyclopediaRepoImpl struct {
	baseRepo[model.EncyclopediaContent]
}

var encyclopediaListSpec = ListSpec{
	SearchFields:  []string{"title", "content"},
	StatusField:   "status",
	CategoryField: "category",
}

func NewEncyclopediaRepo(db *gorm.DB) EncyclopediaRepo {
	return &EncyclopediaRepoImpl{baseRepo: newBaseRepo[model.EncyclopediaContent](db, encyclopediaListSpec)}
}

func (s *EncyclopediaRepoImpl) Delete(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.EncyclopediaContent{}, id)
	return result.RowsAffected, errors.Wrap(result.Error, "delete encyclopedia")
}

func (s *EncyclopediaRepoImpl) IncrView(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.EncyclopediaContent{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (s *EncyclopediaRepoImpl) CountByCategory(ctx context.Context) ([]CategoryCount, error) {
	rows := make([]CategoryCount, 0)
	err := s.db.WithContext(ctx).Model(&model.EncyclopediaContent{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("category").
		Scan(&rows).Error
	return rows, errors.Wrap(err, "count encyclopedia by category")
}

type TutorialRepo interface {
	CrudRepo[model.Tutorial]
	DeleteCascade(ctx context.Context, id uint64) (int64, error)
	IncrView(ctx context.Context, id uint64) error
	UpsertProgress(ctx context.Context, p *model.LearningProgress) error
	GetProgress(ctx context.Context, userID, tutorialID uint64) (*model.LearningProgress, error)
}

type TutorialRepoImpl struct {
	baseRepo[model.Tutorial]
}

var tutorialListSpec = ListSpec{
	SearchFields:  []string{"title", "description"},
	StatusField:   "status",
	CategoryField: "category",
}

func NewTutorialRepo(db *gorm.DB) TutorialRepo {
	return &TutorialRepoImpl{baseRepo: newBaseRepo[model.Tutorial](db, tutorialListSpec)}
}

// DeleteCascade 删除教程及其学习进度
func (s *TutorialRepoImpl) DeleteCascade(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tutorial_id = ?", id).Delete(&model.LearningProgress{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Tutorial{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, errors.Wrap(err, "delete tutorial cascade")
}

func (s *TutorialRepoImpl) IncrView(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Tutorial{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// UpsertProgress 同一用户同一教程只保留一条进度
func (s *TutorialRepoImpl) UpsertProgress(ctx context.Context, p *model.LearningProgress) error {
	now := time.Now()
	p.UpdatedAt = now
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "tutorial_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress_percent", "last_position", "is_completed", "completed_at", "updated_at"}),
	}).Create(p).Error
}

func (s *TutorialRepoImpl) GetProgress(ctx context.Context, userID, tutorialID uint64) (*model.LearningProgress, error) {
	p := &model.LearningProgress{}
	result := s.db.WithContext(ctx).Where("user_id = ? AND tutorial_id = ?", userID, tutorialID).First(p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "get progress")
	}
	return p, nil
}
