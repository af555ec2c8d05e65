package repository

import (
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ProductRepo interface {
	CrudRepo[model.Product]
	GetByIDs(ctx context.Context, ids []uint64) ([]*model.Product, error)
	// DeleteUnreferenced 仍被订单引用时返回 ErrReferenced
	DeleteUnreferenced(ctx context.Context, id uint64) (int64, error)
	// DecrStock 库存足够时扣减并累计销量，返回是否扣减成功
	DecrStock(ctx context.Context, id uint64, qty int) (bool, error)
	IncrView(ctx context.Context, id uint64) error
	Categories(ctx context.Context) ([]string, error)
}

type ProductRepoImpl struct {
	baseRepo[model.Product]
}

var productListSpec = ListSpec{
	SearchFields:  []string{"name", "description"},
	StatusField:   "status",
	CategoryField: "category",
}

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &ProductRepoImpl{baseRepo: newBaseRepo[model.Product](db, productListSpec)}
}

func (s *ProductRepoImpl) GetByIDs(ctx context.Context, ids []uint64) ([]*model.Product, error) {
	products := make([]*model.Product, 0, len(ids))
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, errors.Wrap(err, "get products by ids")
}

func (s *ProductRepoImpl) DeleteUnreferenced(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&model.OrderItem{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrReferenced
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.Cart{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Product{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	if errors.Is(err, ErrReferenced) {
		return 0, ErrReferenced
	}
	return affected, errors.Wrap(err, "delete product")
}

func (s *ProductRepoImpl) DecrStock(ctx context.Context, id uint64, qty int) (bool, error) {
	result := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumns(map[string]any{
			"stock":       gorm.Expr("stock - ?", qty),
			"sales_count": gorm.Expr("sales_count + ?", qty),
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "decrease stock")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND stock <= 0", id).
		UpdateColumn("status", consts.ProductStatusOutOfStock).Error
	return true, errors.Wrap(err, "mark out of stock")
}

func (s *ProductRepoImpl) IncrView(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (s *ProductRepoImpl) Categories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("status = ?", consts.ProductStatusActive).
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	return categories, errors.Wrap(err, "list product categories")
}
