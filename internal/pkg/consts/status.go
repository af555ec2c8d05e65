package consts

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusHidden    = "hidden"
)

const (
	CommentStatusPublished = "published"
	CommentStatusHidden    = "hidden"
)

const (
	ContentStatusPublished = "published"
	ContentStatusDraft     = "draft"
	ContentStatusArchived  = "archived"
)

const (
	ProductStatusActive     = "active"
	ProductStatusInactive   = "inactive"
	ProductStatusOutOfStock = "out_of_stock"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func IsUserStatus(s string) bool {
	return oneOf(s, UserStatusActive, UserStatusInactive)
}

func IsPostStatus(s string) bool {
	return oneOf(s, PostStatusDraft, PostStatusPublished, PostStatusHidden)
}

func IsCommentStatus(s string) bool {
	return oneOf(s, CommentStatusPublished, CommentStatusHidden)
}

func IsContentStatus(s string) bool {
	return oneOf(s, ContentStatusPublished, ContentStatusDraft, ContentStatusArchived)
}

func IsProductStatus(s string) bool {
	return oneOf(s, ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock)
}

func IsOrderStatus(s string) bool {
	return oneOf(s, OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled)
}

func IsPaymentStatus(s string) bool {
	return oneOf(s, PaymentStatusUnpaid, PaymentStatusPaid, PaymentStatusRefunded)
}
