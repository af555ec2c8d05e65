package handler

import (
	"Ronghua/internal/api/dto"
	"Ronghua/internal/pkg/response"
	"Ronghua/internal/service"

	"github.com/gin-gonic/gin"
)

// ShopHandler 后台商品与订单管理
type ShopHandler struct {
	productSvc service.ProductService
	orderSvc   service.OrderService
}

func NewShopHandler(productSvc service.ProductService, orderSvc service.OrderService) *ShopHandler {
	return &ShopHandler{
		productSvc: productSvc,
		orderSvc:   orderSvc,
	}
}

func (s *ShopHandler) ListProducts(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.productSvc.ListProducts(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ShopHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := s.productSvc.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

func (s *ShopHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductDTO
	if !bindJSON(c, &req) {
		return
	}
	id, err := s.productSvc.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "商品创建成功", id)
}

func (s *ShopHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ProductDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.productSvc.UpdateProduct(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "商品更新成功", nil)
}

func (s *ShopHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.productSvc.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "商品删除成功", nil)
}

func (s *ShopHandler) ListOrders(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	page, err := s.orderSvc.ListOrders(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *ShopHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := s.orderSvc.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, order)
}

// CreateOrder 后台代下单，user_id 必填
func (s *ShopHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderDTO
	if !bindJSON(c, &req) {
		return
	}
	if req.UserID == 0 {
		response.Fail(c, response.BadRequest, service.KindValidation.Code, "user_id 不能为空")
		return
	}
	id, err := s.orderSvc.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "订单创建成功", id)
}

func (s *ShopHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.OrderStatusDTO
	if !bindJSON(c, &req) {
		return
	}
	if err := s.orderSvc.UpdateStatus(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "订单状态已更新", nil)
}

func (s *ShopHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.orderSvc.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "订单删除成功", nil)
}
