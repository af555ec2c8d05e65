package model

import (
	"time"
)

type Product struct {
	ID             uint64            `gorm:"primaryKey" json:"id"`
	Name           string            `gorm:"type:varchar(200);not null" json:"name"`
	Description    string            `gorm:"type:text" json:"description"`
	Category       string            `gorm:"type:varchar(50);not null;index:idx_product_category" json:"category"`
	Price          float64           `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice  *float64          `gorm:"type:decimal(10,2)" json:"original_price"`
	Stock          int               `gorm:"not null;default:0" json:"stock"`
	Images         []string          `gorm:"type:text;serializer:json" json:"images"`
	Tags           []string          `gorm:"type:text;serializer:json" json:"tags"`
	Specifications map[string]string `gorm:"type:text;serializer:json" json:"specifications"`
	ViewCount      int               `gorm:"not null;default:0" json:"view_count"`
	SalesCount     int               `gorm:"not null;default:0" json:"sales_count"`
	Rating         float64           `gorm:"type:decimal(3,2);not null;default:0" json:"rating"`
	IsFeatured     bool              `gorm:"not null" json:"is_featured"`
	Status         string            `gorm:"type:varchar(20);not null;index:idx_product_status" json:"status"`
	CreatedAt      time.Time         `gorm:"index:idx_product_created" json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

type Order struct {
	ID              uint64      `gorm:"primaryKey" json:"id"`
	OrderNo         string      `gorm:"type:varchar(32);not null;uniqueIndex:idx_order_no" json:"order_no"`
	UserID          uint64      `gorm:"not null;index:idx_order_user" json:"user_id"`
	User            *User       `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status          string      `gorm:"type:varchar(20);not null;index:idx_order_status" json:"status"`
	PaymentMethod   string      `gorm:"type:varchar(20)" json:"payment_method"`
	PaymentStatus   string      `gorm:"type:varchar(20);not null" json:"payment_status"`
	ShippingAddress string      `gorm:"type:text" json:"shipping_address"`
	ShippingFee     float64     `gorm:"type:decimal(10,2);not null;default:0" json:"shipping_fee"`
	Notes           string      `gorm:"type:text" json:"notes"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;references:ID" json:"items,omitempty"`
	CreatedAt       time.Time   `gorm:"index:idx_order_created" json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem Price 为下单时的成交单价
type OrderItem struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	OrderID   uint64    `gorm:"not null;index:idx_item_order" json:"order_id"`
	ProductID uint64    `gorm:"not null;index:idx_item_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

type Cart struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint64    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   *Product  `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cart) TableName() string {
	return "carts"
}
