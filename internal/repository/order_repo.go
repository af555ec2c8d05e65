package repository

import (
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type OrderRepo interface {
	CrudRepo[model.Order]
	GetDetail(ctx context.Context, id uint64) (*model.Order, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status, paymentStatus string) (int64, error)
	DeleteCascade(ctx context.Context, id uint64) (int64, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
	SumPaid(ctx context.Context) (float64, error)
}

type OrderRepoImpl struct {
	baseRepo[model.Order]
}

var orderListSpec = ListSpec{
	SearchFields: []string{"order_no"},
	StatusField:  "status",
	Preloads:     []string{"User"},
}

func NewOrderRepo(db *gorm.DB) OrderRepo {
	return &OrderRepoImpl{baseRepo: newBaseRepo[model.Order](db, orderListSpec)}
}

func (s *OrderRepoImpl) GetDetail(ctx context.Context, id uint64) (*model.Order, error) {
	order := &model.Order{}
	result := s.db.WithContext(ctx).
		Preload("User").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Product").
		First(order, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "get order detail")
	}
	return order, nil
}

func (s *OrderRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.Order, error) {
	orders := make([]*model.Order, 0)
	err := s.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	return orders, errors.Wrap(err, "list orders by user")
}

// UpdateStatus paymentStatus 为空时不修改支付状态
func (s *OrderRepoImpl) UpdateStatus(ctx context.Context, id uint64, status, paymentStatus string) (int64, error) {
	fields := map[string]any{"status": status}
	if paymentStatus != "" {
		fields["payment_status"] = paymentStatus
	}
	result := s.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (s *OrderRepoImpl) DeleteCascade(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Order{}, id)
		affected = result.RowsAffected
		return result.Error
	})
	return affected, errors.Wrap(err, "delete order cascade")
}

func (s *OrderRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID).Count(&total).Error
	return total, errors.Wrap(err, "count orders by user")
}

func (s *OrderRepoImpl) SumPaid(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).Model(&model.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("payment_status = ?", consts.PaymentStatusPaid).
		Scan(&total).Error
	return total, errors.Wrap(err, "sum paid orders")
}
