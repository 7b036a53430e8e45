package queue

import (
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/aurenstar/chat-backend/internal/entity"
	"github.com/aurenstar/chat-backend/internal/infra/http/middleware"
)

// OrderNotifier es el contrato que el worker necesita del sender de
// correo.
type OrderNotifier interface {
	NotifyOrder(companyID string, order *entity.Order) error
}

// Worker consume la cola de órdenes y dispara la notificación por
// correo. Está desacoplado del dispatcher: si el broker reentrega un
// mensaje puede salir un correo duplicado, no hay idempotencia.
type Worker struct {
	Channel  *amqp.Channel
	Notifier OrderNotifier
	Logger   *zap.Logger
}

func NewWorker(ch *amqp.Channel, notifier OrderNotifier, logger *zap.Logger) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
		Logger:   logger,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack: manual, así la DLQ recibe lo que falla
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Logger.Error("no se pudo registrar el consumidor", zap.Error(err))
		return
	}

	w.Logger.Info("worker esperando órdenes", zap.String("queue", queueName))

	for d := range msgs {
		var payload OrderPlacedPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Logger.Warn("mensaje malformado en la cola", zap.Error(err))
			// Mensaje podrido: afuera sin requeue para no trabar la cola.
			d.Nack(false, false)
			continue
		}

		if err := w.Notifier.NotifyOrder(payload.CompanyID, payload.toOrder()); err != nil {
			w.Logger.Warn("falló la notificación de la orden",
				zap.String("order_id", payload.OrderID), zap.Error(err))
			middleware.RecordNotificationError()
			d.Nack(false, false)
			continue
		}

		w.Logger.Info("orden notificada",
			zap.String("order_id", payload.OrderID),
			zap.String("company_id", payload.CompanyID))
		d.Ack(false)
	}
}

func (p OrderPlacedPayload) toOrder() *entity.Order {
	createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		createdAt = time.Now()
	}
	return &entity.Order{
		ID:        p.OrderID,
		CompanyID: p.CompanyID,
		Item:      p.Item,
		Qty:       p.Qty,
		Email:     p.Email,
		CreatedAt: createdAt,
	}
}
