package dto

type ProductDTO struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Description    string            `json:"description"`
	Category       string            `json:"category" validate:"required,max=50"`
	Price          float64           `json:"price" validate:"gt=0"`
	OriginalPrice  *float64          `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	Stock          int               `json:"stock" validate:"min=0"`
	Images         []string          `json:"images"`
	Tags           []string          `json:"tags"`
	Specifications map[string]string `json:"specifications"`
	IsFeatured     bool              `json:"is_featured"`
	Status         string            `json:"status,omitempty"`
}

type ProductRowDTO struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	SalesCount int     `json:"sales_count"`
	Rating     float64 `json:"rating"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

type OrderItemDTO struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CreateOrderDTO struct {
	UserID          uint64         `json:"user_id"`
	Items           []OrderItemDTO `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string         `json:"payment_method" validate:"max=20"`
	ShippingAddress string         `json:"shipping_address"`
	ShippingFee     float64        `json:"shipping_fee" validate:"min=0"`
	Notes           string         `json:"notes"`
}

type OrderRowDTO struct {
	ID            uint64  `json:"id"`
	OrderNo       string  `json:"order_no"`
	User          string  `json:"user"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

type OrderLineDTO struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderDetailDTO struct {
	OrderRowDTO
	PaymentMethod   string         `json:"payment_method"`
	ShippingAddress string         `json:"shipping_address"`
	ShippingFee     float64        `json:"shipping_fee"`
	Notes           string         `json:"notes"`
	Items           []OrderLineDTO `json:"items"`
}

type CartItemDTO struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type CartLineDTO struct {
	ProductID uint64  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CartDTO struct {
	Items      []CartLineDTO `json:"items"`
	TotalCount int           `json:"total_count"`
	TotalPrice float64       `json:"total_price"`
}

type ShopStatsDTO struct {
	TotalProducts  int64   `json:"total_products"`
	ActiveProducts int64   `json:"active_products"`
	OutOfStock     int64   `json:"out_of_stock"`
	TotalOrders    int64   `json:"total_orders"`
	PendingOrders  int64   `json:"pending_orders"`
	PaidRevenue    float64 `json:"paid_revenue"`
}

type ShopOverviewDTO struct {
	Products []ProductRowDTO `json:"products"`
	Orders   []OrderRowDTO   `json:"orders"`
	Stats    ShopStatsDTO    `json:"stats"`
}
