package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/api/fixture"
	"Ronghua/internal/api/middleware"
	"Ronghua/internal/pkg/consts"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

// StoreHandler 前台商城
type StoreHandler struct {
	productSvc service.ProductService
	cartSvc    service.CartService
	orderSvc   service.OrderService
	useStore   bool
}

func NewStoreHandler(productSvc service.ProductService, cartSvc service.CartService, orderSvc service.OrderService, useStore bool) *StoreHandler {
	return &StoreHandler{
		productSvc: productSvc,
		cartSvc:    cartSvc,
		orderSvc:   orderSvc,
		useStore:   useStore,
	}
}

func (s *StoreHandler) Products(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.ShopProducts)
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	q.Status = consts.ProductStatusActive
	page, err := s.productSvc.ListProducts(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *StoreHandler) ProductDetail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !s.useStore {
		replyFixtureWith(c, fixture.ShopProductDetail, "id", id)
		return
	}
	product, err := s.productSvc.ViewProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *StoreHandler) Categories(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.ShopCategories)
		return
	}
	categories, err := s.productSvc.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, categories)
}

func (s *StoreHandler) AddToCart(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.ShopCartAdd)
		return
	}
	var req dto.CartItemDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.cartSvc.AddItem(c.Request.Context(), middleware.CurrentUserID(c), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "已添加到购物车", nil)
}

func (s *StoreHandler) Cart(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.ShopCart)
		return
	}
	cart, err := s.cartSvc.GetCart(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cart)
}

// CreateOrder 下单用户固定为当前登录用户
func (s *StoreHandler) CreateOrder(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.ShopOrderCreate)
		return
	}
	var req dto.CreateOrderDTO
	if !bindJSON(c, &req) {
		return
	}
	req.UserID = middleware.CurrentUserID(c)
	id, err := s.orderSvc.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	order, err := s.orderSvc.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "订单创建成功", gin.H{"id": id, "order_no": order.OrderNo})
}

func (s *StoreHandler) Orders(c *gin.Context) {
	if !s.useStore {
		replyFixture(c, fixture.ShopOrders)
		return
	}
	orders, err := s.orderSvc.ListUserOrders(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, orders)
}
