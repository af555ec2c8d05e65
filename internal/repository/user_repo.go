package repository

import (
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepo interface {
	CrudRepo[model.User]
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	SetActive(ctx context.Context, id uint64, active bool) (int64, error)
	DeleteCascade(ctx context.Context, id uint64) (int64, error)
	TopByPoints(ctx context.Context, limit int) ([]*model.User, error)
	CountPointsAbove(ctx context.Context, points int) (int64, error)
	SumPoints(ctx context.Context) (int64, error)
}

type UserRepoImpl struct {
	baseRepo[model.User]
}

var userListSpec = ListSpec{
	SearchFields: []string{"username", "email", "nickname"},
	StatusFilter: func(tx *gorm.DB, status string) *gorm.DB {
		switch status {
		case consts.UserStatusActive:
			return tx.Where("is_active = ?", true)
		case consts.UserStatusInactive:
			return tx.Where("is_active = ?", false)
		}
		return tx
	},
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{baseRepo: newBaseRepo[model.User](db, userListSpec)}
}

func (s *UserRepoImpl) getBy(ctx context.Context, column string, value string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where(column+" = ?", value).First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(result.Error, "get user by %s", column)
	}
	return user, nil
}

func (s *UserRepoImpl) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.getBy(ctx, "username", username)
}

func (s *UserRepoImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getBy(ctx, "email", email)
}

func (s *UserRepoImpl) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	return s.getBy(ctx, "phone", phone)
}

func (s *UserRepoImpl) SetActive(ctx context.Context, id uint64, active bool) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}

// DeleteCascade 删除用户及其帖子、评论、订单、学习进度和购物车
func (s *UserRepoImpl) DeleteCascade(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postIDs []uint64
		if err := tx.Model(&model.Post{}).Where("author_id = ?", id).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", postIDs).Delete(&model.Post{}).Error; err != nil {
				return err
			}
		}

		var ownComments []model.Comment
		if err := tx.Select("id", "post_id").Where("author_id = ?", id).Find(&ownComments).Error; err != nil {
			return err
		}
		if len(ownComments) > 0 {
			roots := make([]uint64, 0, len(ownComments))
			postSet := make(map[uint64]struct{})
			for _, c := range ownComments {
				roots = append(roots, c.ID)
				postSet[c.PostID] = struct{}{}
			}
			ids, err := collectReplyTree(tx, roots)
			if err != nil {
				return err
			}
			if err = tx.Where("id IN ?", ids).Delete(&model.Comment{}).Error; err != nil {
				return err
			}
			touched := make([]uint64, 0, len(postSet))
			for pid := range postSet {
				touched = append(touched, pid)
			}
			if err = recountComments(tx, touched); err != nil {
				return err
			}
		}

		var orderIDs []uint64
		if err := tx.Model(&model.Order{}).Where("user_id = ?", id).Pluck("id", &orderIDs).Error; err != nil {
			return err
		}
		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", orderIDs).Delete(&model.Order{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.LearningProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&model.Cart{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "delete user cascade")
	}
	return affected, nil
}

func (s *UserRepoImpl) TopByPoints(ctx context.Context, limit int) ([]*model.User, error) {
	users := make([]*model.User, 0, limit)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("points DESC").Order("id ASC").
		Limit(limit).
		Find(&users).Error
	return users, errors.Wrap(err, "top by points")
}

func (s *UserRepoImpl) CountPointsAbove(ctx context.Context, points int) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("is_active = ? AND points > ?", true, points).
		Count(&total).Error
	return total, errors.Wrap(err, "count points above")
}

func (s *UserRepoImpl) SumPoints(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, errors.Wrap(err, "sum points")
}
