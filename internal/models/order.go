package models

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"foodorder/internal/apperrors"
)

// OrderStatus enumerates the order lifecycle. Orders move forward through
// the statuses in declaration order; CANCELLED is reachable from any
// non-terminal status.
type OrderStatus string

const (
	OrderPlaced         OrderStatus = "PLACED"
	OrderPaid           OrderStatus = "PAID"
	OrderConfirmed      OrderStatus = "CONFIRMED"
	OrderPreparing      OrderStatus = "PREPARING"
	OrderOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	OrderDelivered      OrderStatus = "DELIVERED"
	OrderCancelled      OrderStatus = "CANCELLED"
)

var orderStatuses = map[OrderStatus]bool{
	OrderPlaced:         true,
	OrderPaid:           true,
	OrderConfirmed:      true,
	OrderPreparing:      true,
	OrderOutForDelivery: true,
	OrderDelivered:      true,
	OrderCancelled:      true,
}

// ParseOrderStatus parses a status label case-insensitively.
func ParseOrderStatus(label string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(label)))
	if !orderStatuses[status] {
		return "", apperrors.BadRequest("invalid order status: %s", label)
	}
	return status, nil
}

// IsTerminal reports whether no further status changes are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Order is created once per successful cart placement and never deleted.
// UserID and OrderDate are fixed at creation; Status and StatusTimeline
// mutate over the order's lifecycle.
type Order struct {
	ID              string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string               `json:"user_id" gorm:"index;type:varchar(36)"`
	Status          OrderStatus          `json:"status" gorm:"type:varchar(32)"`
	TotalAmount     float64              `json:"total_amount"`
	OrderDate       time.Time            `json:"order_date"`
	DeliveryAddress string               `json:"delivery_address" gorm:"type:varchar(500)"`
	StatusTimeline  map[string]time.Time `json:"status_timeline" gorm:"serializer:json"`
	Items           []OrderItem          `json:"items" gorm:"foreignKey:OrderID"`
	gorm.Model                           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// OrderItem is an immutable line of an order. Price, ProductName and
// ImageURL are snapshots taken at placement time so later catalog edits
// cannot alter historical orders. It references its order by key only.
type OrderItem struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string  `json:"order_id" gorm:"index;type:varchar(36)"`
	FoodID      string  `json:"food_id" gorm:"type:varchar(36)"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url"`
}
