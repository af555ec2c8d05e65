package repository

import (
	"Ronghua/internal/model"
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepo interface {
	// AddOrMerge 已在购物车中的商品累加数量
	AddOrMerge(ctx context.Context, userID, productID uint64, qty int) error
	ListByUser(ctx context.Context, userID uint64) ([]*model.Cart, error)
	// RemoveProducts 删除用户购物车中指定商品
	RemoveProducts(ctx context.Context, userID uint64, productIDs []uint64) error
}

type CartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) CartRepo {
	return &CartRepoImpl{db: db}
}

func (s *CartRepoImpl) AddOrMerge(ctx context.Context, userID, productID uint64, qty int) error {
	now := time.Now()
	item := &model.Cart{UserID: userID, ProductID: productID, Quantity: qty, CreatedAt: now, UpdatedAt: now}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("quantity + ?", qty),
			"updated_at": now,
		}),
	}).Create(item).Error
	return errors.Wrap(err, "add cart item")
}

func (s *CartRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Cart, error) {
	items := make([]*model.Cart, 0)
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Find(&items).Error
	return items, errors.Wrap(err, "list cart")
}

func (s *CartRepoImpl) RemoveProducts(ctx context.Context, userID uint64, productIDs []uint64) error {
	if len(productIDs) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id IN ?", userID, productIDs).
		Delete(&model.Cart{}).Error
	return errors.Wrap(err, "remove cart items")
}
