package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/aurenstar/chat-backend/internal/entity"
)

// OrderPlacedPayload es lo que viaja por la cola cuando entra una
// orden. Lleva todo lo que el worker necesita para armar el aviso,
// así no vuelve a tocar el request original.
type OrderPlacedPayload struct {
	OrderID   string `json:"order_id"`
	CompanyID string `json:"company_id"`
	Item      string `json:"item"`
	Qty       int    `json:"qty"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"created_at"`
}

func NewOrderPlacedPayload(order *entity.Order) OrderPlacedPayload {
	return OrderPlacedPayload{
		OrderID:   order.ID,
		CompanyID: order.CompanyID,
		Item:      order.Item,
		Qty:       order.Qty,
		Email:     order.Email,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

func (p *Producer) PublishOrderPlaced(ctx context.Context, payload OrderPlacedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("no se pudo serializar la orden: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("no se pudo publicar en RabbitMQ: %w", err)
	}

	return nil
}
