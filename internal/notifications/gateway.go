// Package notifications defines the outbound notification contract. Every
// delivery is best-effort: callers log a failed notify and move on, so a
// broker outage can never fail or roll back the operation that triggered
// the event.
package notifications

import (
	"encoding/json"
	"time"

	"foodorder/internal/models"
	"foodorder/pkg/rabbitmq"
)

// Event kinds published to the notification queue.
const (
	EventOrderPlaced      = "order.placed"
	EventOrderStatus      = "order.status_changed"
	EventPaymentCompleted = "payment.completed"
)

// Gateway delivers order lifecycle messages to the notification collaborator.
type Gateway interface {
	OrderPlaced(order *models.Order, email string) error
	OrderStatusChanged(order *models.Order, email, status string) error
	PaymentCompleted(payment *models.Payment, email string) error
}

// Event is the JSON payload carried on the queue.
type Event struct {
	Kind        string    `json:"kind"`
	OrderID     string    `json:"order_id"`
	UserEmail   string    `json:"user_email"`
	Status      string    `json:"status,omitempty"`
	TotalAmount float64   `json:"total_amount,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// AMQPGateway publishes events through the RabbitMQ client.
type AMQPGateway struct {
	client *rabbitmq.Client
}

// NewAMQPGateway creates a new AMQPGateway.
func NewAMQPGateway(client *rabbitmq.Client) *AMQPGateway {
	return &AMQPGateway{
		client: client,
	}
}

func (g *AMQPGateway) publish(event Event) error {
	event.OccurredAt = time.Now()
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return g.client.Publish(body)
}

// OrderPlaced publishes an order-placed event.
func (g *AMQPGateway) OrderPlaced(order *models.Order, email string) error {
	return g.publish(Event{
		Kind:        EventOrderPlaced,
		OrderID:     order.ID,
		UserEmail:   email,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
	})
}

// OrderStatusChanged publishes a status-changed event.
func (g *AMQPGateway) OrderStatusChanged(order *models.Order, email, status string) error {
	return g.publish(Event{
		Kind:      EventOrderStatus,
		OrderID:   order.ID,
		UserEmail: email,
		Status:    status,
	})
}

// PaymentCompleted publishes a payment-completed event.
func (g *AMQPGateway) PaymentCompleted(payment *models.Payment, email string) error {
	return g.publish(Event{
		Kind:        EventPaymentCompleted,
		OrderID:     payment.OrderID,
		UserEmail:   email,
		Status:      string(payment.Status),
		TotalAmount: payment.Amount,
	})
}

// NopGateway discards all notifications. Used when no broker is configured.
type NopGateway struct{}

// NewNopGateway creates a new NopGateway.
func NewNopGateway() *NopGateway {
	return &NopGateway{}
}

func (*NopGateway) OrderPlaced(*models.Order, string) error { return nil }

func (*NopGateway) OrderStatusChanged(*models.Order, string, string) error { return nil }

func (*NopGateway) PaymentCompleted(*models.Payment, string) error { return nil }
