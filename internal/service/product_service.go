package service

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/model"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/util"
	"Ronghua/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"time"
)

type ProductService interface {
	ListProducts(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.ProductRowDTO], error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	// ViewProduct 只返回上架商品，并累加浏览数
	ViewProduct(ctx context.Context, id uint64) (*model.Product, error)
	CreateProduct(ctx context.Context, d *dto.ProductDTO) (uint64, error)
	UpdateProduct(ctx context.Context, id uint64, d *dto.ProductDTO) error
	DeleteProduct(ctx context.Context, id uint64) error
	Categories(ctx context.Context) ([]string, error)
	ShopStats(ctx context.Context) (*dto.ShopStatsDTO, error)
	Overview(ctx context.Context) (*dto.ShopOverviewDTO, error)
}

type ProductServiceImpl struct {
	productRepo repository.ProductRepo
	orderRepo   repository.OrderRepo
	now         func() time.Time
}

func NewProductService(productRepo repository.ProductRepo, orderRepo repository.OrderRepo) ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		now:         time.Now,
	}
}

func (s *ProductServiceImpl) ListProducts(ctx context.Context, q dto.ListQuery) (*dto.PageDTO[dto.ProductRowDTO], error) {
	if q.Status != "" && !consts.IsProductStatus(q.Status) {
		return nil, ErrStatusInvalid
	}
	items, total, err := s.productRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return toPage(items, total, q, toProductRow), nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductServiceImpl) ViewProduct(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status == consts.ProductStatusInactive {
		return nil, ErrProductNotFound
	}
	if err = s.productRepo.IncrView(ctx, id); err != nil {
		log.WarnContext(ctx, "incr product view failed", "product_id", id, "err", err)
	} else {
		product.ViewCount++
	}
	return product, nil
}

func (s *ProductServiceImpl) CreateProduct(ctx context.Context, d *dto.ProductDTO) (uint64, error) {
	if err := util.ValidateDTO(d); err != nil {
		return 0, err
	}
	status, err := productStatus(d.Status, d.Stock)
	if err != nil {
		return 0, err
	}
	product := &model.Product{
		Name:           d.Name,
		Description:    d.Description,
		Category:       d.Category,
		Price:          d.Price,
		OriginalPrice:  d.OriginalPrice,
		Stock:          d.Stock,
		Images:         d.Images,
		Tags:           d.Tags,
		Specifications: d.Specifications,
		IsFeatured:     d.IsFeatured,
		Status:         status,
	}
	if err = s.productRepo.Create(ctx, product); err != nil {
		return 0, writeErr(err)
	}
	return product.ID, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, id uint64, d *dto.ProductDTO) error {
	if err := util.ValidateDTO(d); err != nil {
		return err
	}
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	status := d.Status
	if status == "" {
		status = product.Status
	}
	if status, err = productStatus(status, d.Stock); err != nil {
		return err
	}
	product.Name = d.Name
	product.Description = d.Description
	product.Category = d.Category
	product.Price = d.Price
	product.OriginalPrice = d.OriginalPrice
	product.Stock = d.Stock
	product.Images = d.Images
	product.Tags = d.Tags
	product.Specifications = d.Specifications
	product.IsFeatured = d.IsFeatured
	product.Status = status
	product.UpdatedAt = s.now()
	return writeErr(s.productRepo.Save(ctx, product))
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id uint64) error {
	affected, err := s.productRepo.DeleteUnreferenced(ctx, id)
	if errors.Is(err, repository.ErrReferenced) {
		return ErrProductInUse
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductServiceImpl) Categories(ctx context.Context) ([]string, error) {
	return s.productRepo.Categories(ctx)
}

func (s *ProductServiceImpl) ShopStats(ctx context.Context) (*dto.ShopStatsDTO, error) {
	var (
		out = &dto.ShopStatsDTO{}
		err error
	)
	if out.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if out.ActiveProducts, err = s.productRepo.CountByStatus(ctx, consts.ProductStatusActive); err != nil {
		return nil, err
	}
	if out.OutOfStock, err = s.productRepo.CountByStatus(ctx, consts.ProductStatusOutOfStock); err != nil {
		return nil, err
	}
	if out.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, err
	}
	if out.PendingOrders, err = s.orderRepo.CountByStatus(ctx, consts.OrderStatusPending); err != nil {
		return nil, err
	}
	if out.PaidRevenue, err = s.orderRepo.SumPaid(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *ProductServiceImpl) Overview(ctx context.Context) (*dto.ShopOverviewDTO, error) {
	const latest = 20
	products, err := s.productRepo.Latest(ctx, latest)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Latest(ctx, latest)
	if err != nil {
		return nil, err
	}
	stats, err := s.ShopStats(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.ShopOverviewDTO{
		Products: make([]dto.ProductRowDTO, 0, len(products)),
		Orders:   make([]dto.OrderRowDTO, 0, len(orders)),
		Stats:    *stats,
	}
	for _, p := range products {
		out.Products = append(out.Products, toProductRow(p))
	}
	for _, o := range orders {
		out.Orders = append(out.Orders, toOrderRow(o))
	}
	return out, nil
}

// productStatus 库存为 0 的在售商品视为缺货
func productStatus(status string, stock int) (string, error) {
	if status == "" {
		status = consts.ProductStatusActive
	}
	if !consts.IsProductStatus(status) {
		return "", ErrStatusInvalid
	}
	if status == consts.ProductStatusActive && stock <= 0 {
		return consts.ProductStatusOutOfStock, nil
	}
	if status == consts.ProductStatusOutOfStock && stock > 0 {
		return consts.ProductStatusActive, nil
	}
	return status, nil
}
