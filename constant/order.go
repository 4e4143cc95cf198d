package constant

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

const OrderCurrency = "USD"

// Quantity bounds applied to every cart line before pricing.
const (
	MinOrderQuantity = 1
	MaxOrderQuantity = 99
)
