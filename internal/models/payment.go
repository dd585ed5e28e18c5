package models

import "time"

// PaymentStatus enumerates the payment attempt lifecycle. An attempt starts
// PENDING and terminates at PAID or FAILED; it is never reopened. A failed
// attempt is retried by initiating a new Payment row.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// Payment is one payment attempt against an order. An order may accumulate
// several attempts; the current one is the most recently created row.
type Payment struct {
	ID          string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID     string        `json:"order_id" gorm:"index;type:varchar(36)"`
	Amount      float64       `json:"amount"`
	Mode        string        `json:"mode"`
	Status      PaymentStatus `json:"status" gorm:"type:varchar(16)"`
	CreatedAt   time.Time     `json:"created_at"`
	PaymentDate *time.Time    `json:"payment_date,omitempty"`
}
