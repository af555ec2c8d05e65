package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	log "log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OrderService interface {
	ListOrders(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.OrderRowDTO], error)
	GetOrder(ctx context.Context, id uint64) (*dto.OrderDetailDTO, error)
	// CreateOrder 校验用户与商品、扣减库存、写入订单并移出购物车，任一步失败整体回滚
	CreateOrder(ctx context.Context, d *dto.CreateOrderDTO) (uint64, error)
	UpdateStatus(ctx context.Context, id uint64, d *dto.OrderStatusDTO) error
	DeleteOrder(ctx context.Context, id uint64) error
	ListUserOrders(ctx context.Context, userID uint64) ([]*dto.OrderDetailDTO, error)
}

type OrderServiceImpl struct {
	orderRepo repository.OrderRepo
	txManager repository.TxManager
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepo, txManager repository.TxManager) OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		txManager: txManager,
		now:       time.Now,
	}
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.OrderRowDTO], error) {
	if q.Status != "" && !consts.IsOrderStatus(q.Status) {
		return nil, ErrStatusInvalid
	}
	items, total, err := s.orderRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toOrderRow), nil
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id uint64) (*dto.OrderDetailDTO, error) {
	order, err := s.orderRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return toOrderDetail(order), nil
}

func (s *OrderServiceImpl) CreateOrder(ctx context.Context, d *dto.CreateOrderDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}

	var orderID uint64
	err := s.txManager.Execute(ctx, func(repos *repository.TxRepos) error {
		user, err := repos.Users.GetByID(ctx, d.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		ids := make([]uint64, 0, len(d.Items))
		for _, item := range d.Items {
			ids = append(ids, item.ProductID)
		}
		products, err := repos.Products.GetByIDs(ctx, ids)
		if err != nil {
			return err
		}
		byID := make(map[uint64]*model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		total := d.ShippingFee
		items := make([]model.OrderItem, 0, len(d.Items))
		for _, item := range d.Items {
			p, ok := byID[item.ProductID]
			if !ok {
				return ErrProductNotFound
			}
			if p.Status == consts.ProductStatusInactive {
				return ErrProductUnavailable
			}
			decreased, err := repos.Products.DecrStock(ctx, p.ID, item.Quantity)
			if err != nil {
				return err
			}
			if !decreased {
				return ErrStockNotEnough
			}
			total += p.Price * float64(item.Quantity)
			items = append(items, model.OrderItem{
				ProductID: p.ID,
				Quantity:  item.Quantity,
				Price:     p.Price,
			})
		}

		order := &model.Order{
			OrderNo:         s.newOrderNo(),
			UserID:          user.ID,
			TotalAmount:     math.Round(total*100) / 100,
			Status:          consts.OrderStatusPending,
			PaymentMethod:   d.PaymentMethod,
			PaymentStatus:   consts.PaymentStatusUnpaid,
			ShippingAddress: d.ShippingAddress,
			ShippingFee:     d.ShippingFee,
			Notes:           d.Notes,
			Items:           items,
		}
		if err = repos.Orders.Create(ctx, order); err != nil {
			return writeErr(err)
		}
		// 已下单的商品移出购物车
		if err = repos.Carts.RemoveProducts(ctx, user.ID, ids); err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	log.InfoContext(ctx, "order created", "order_id", orderID, "user_id", d.UserID)
	return orderID, nil
}

func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id uint64, d *dto.OrderStatusDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	if !consts.IsOrderStatus(d.Status) {
		return ErrStatusInvalid
	}
	if d.PaymentStatus != "" && !consts.IsPaymentStatus(d.PaymentStatus) {
		return ErrStatusInvalid
	}
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	_, err = s.orderRepo.UpdateStatus(ctx, id, d.Status, d.PaymentStatus)
	return err
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id uint64) error {
	affected, err := s.orderRepo.DeleteCascade(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderServiceImpl) ListUserOrders(ctx context.Context, userID uint64) ([]*dto.OrderDetailDTO, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrderDetailDTO, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderDetail(o))
	}
	return out, nil
}

// newOrderNo RH + 秒级时间戳 + 6 位随机串
func (s *OrderServiceImpl) newOrderNo() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return "RH" + s.now().Format("20060102150405") + suffix
}

func toOrderDetail(o *model.Order) *dto.OrderDetailDTO {
	lines := make([]dto.OrderLineDTO, 0, len(o.Items))
	for _, item := range o.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		lines = append(lines, dto.OrderLineDTO{
			ProductID:   item.ProductID,
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}
	return &dto.OrderDetailDTO{
		OrderRowDTO:     toOrderRow(o),
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
		ShippingFee:     o.ShippingFee,
		Notes:           o.Notes,
		Items:           lines,
	}
}
