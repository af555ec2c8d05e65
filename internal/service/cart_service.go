package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	"math"
)

type CartService interface {
	AddItem(ctx context.Context, userID uint64, d *dto.CartItemDTO) error
	GetCart(ctx context.Context, userID uint64) (*dto.CartDTO, error)
}

type CartServiceImpl struct {
	cartRepo    repository.CartRepo
	productRepo repository.ProductRepo
}

func NewCartService(cartRepo repository.CartRepo, productRepo repository.ProductRepo) CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartServiceImpl) AddItem(ctx context.Context, userID uint64, d *dto.CartItemDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	product, err := s.productRepo.GetByID(ctx, d.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if product.Status != consts.ProductStatusActive {
		return ErrProductUnavailable
	}
	return s.cartRepo.AddOrMerge(ctx, userID, d.ProductID, d.Quantity)
}

func (s *CartServiceImpl) GetCart(ctx context.Context, userID uint64) (*dto.CartDTO, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartDTO{Items: make([]dto.CartLineDTO, 0, len(items))}
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal := math.Round(item.Product.Price*float64(item.Quantity)*100) / 100
		out.Items = append(out.Items, dto.CartLineDTO{
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		out.TotalCount += item.Quantity
		out.TotalPrice += subtotal
	}
	out.TotalPrice = math.Round(out.TotalPrice*100) / 100
	return out, nil
}
