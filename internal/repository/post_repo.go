package repository

import (
	"Ronghua/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PostRepo interface {
	CrudRepo[model.Post]
	DeleteCascade(ctx context.Context, id uint64) (int64, error)
	UpdateStatus(ctx context.Context, id uint64, status string) (int64, error)
	IncrView(ctx context.Context, id uint64) error
	CountByAuthor(ctx context.Context, authorID uint64) (int64, error)
}

type PostRepoImpl struct {
	baseRepo[model.Post]
}

var postListSpec = ListSpec{
	SearchFields:  []string{"title", "content"},
	StatusField:   "status",
	CategoryField: "category",
	Preloads:      []string{"Author"},
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{baseRepo: newBaseRepo[model.Post](db, postListSpec)}
}

// DeleteCascade 删除帖子及其全部评论
func (s *PostRepoImpl) DeleteCascade(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "delete post cascade")
	}
	return affected, nil
}

func (s *PostRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}

func (s *PostRepoImpl) IncrView(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (s *PostRepoImpl) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Where("author_id = ?", authorID).Count(&total).Error
	return total, errors.Wrap(err, "count posts by author")
}
