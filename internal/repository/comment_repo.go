package repository

import (
	"Ronghua/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CrudRepo[model.Comment]
	CreateAndCount(ctx context.Context, c *model.Comment) error
	ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error)
	DeleteIDs(ctx context.Context, postID uint64, ids []uint64) (int64, error)
	CountByAuthor(ctx context.Context, authorID uint64) (int64, error)
}

type CommentRepoImpl struct {
	baseRepo[model.Comment]
}

var commentListSpec = ListSpec{
	SearchFields: []string{"content"},
	StatusField:  "status",
	Preloads:     []string{"Author"},
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{baseRepo: newBaseRepo[model.Comment](db, commentListSpec)}
}

// CreateAndCount 写入评论并同步帖子评论数
func (s *CommentRepoImpl) CreateAndCount(ctx context.Context, c *model.Comment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Model(&model.Post{}).
			Where("id = ?", c.PostID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error
	})
}

// ListByPost 按时间正序返回帖子下全部评论
func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").Order("id ASC").
		Find(&comments).Error
	return comments, errors.Wrap(err, "list comments by post")
}

// DeleteIDs 删除指定评论并重算帖子评论数
func (s *CommentRepoImpl) DeleteIDs(ctx context.Context, postID uint64, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("post_id = ? AND id IN ?", postID, ids).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return recountComments(tx, []uint64{postID})
	})
	if err != nil {
		return 0, errors.Wrap(err, "delete comments")
	}
	return affected, nil
}

func (s *CommentRepoImpl) CountByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).Where("author_id = ?", authorID).Count(&total).Error
	return total, errors.Wrap(err, "count comments by author")
}

// collectReplyTree 返回 roots 及其全部后代回复的 id
func collectReplyTree(tx *gorm.DB, roots []uint64) ([]uint64, error) {
	all := append([]uint64(nil), roots...)
	seen := make(map[uint64]struct{}, len(roots))
	for _, id := range roots {
		seen[id] = struct{}{}
	}
	frontier := roots
	for len(frontier) > 0 {
		var children []uint64
		if err := tx.Model(&model.Comment{}).Where("parent_id IN ?", frontier).Pluck("id", &children).Error; err != nil {
			return nil, err
		}
		next := children[:0]
		for _, id := range children {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			next = append(next, id)
		}
		all = append(all, next...)
		frontier = next
	}
	return all, nil
}

func recountComments(tx *gorm.DB, postIDs []uint64) error {
	if len(postIDs) == 0 {
		return nil
	}
	return tx.Model(&model.Post{}).
		Where("id IN ?", postIDs).
		UpdateColumn("comment_count", gorm.Expr("(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)")).Error
}
