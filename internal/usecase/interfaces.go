package usecase

import (
	"context"
	"encoding/json"

	"github.com/aurenstar/chat-backend/internal/entity"
	"github.com/aurenstar/chat-backend/internal/infra/queue"
)

// CompanyReader es lo que el dispatcher necesita del Company Store.
type CompanyReader interface {
	GetConfig(companyID string) (*entity.CompanyConfig, error)
	GetItems(companyID, resource string) []json.RawMessage
}

// OrderNotifier avisa al dueño de la empresa sobre una orden nueva.
// Es colaborador opcional: su falla nunca afecta la respuesta del chat.
type OrderNotifier interface {
	NotifyOrder(companyID string, order *entity.Order) error
}

// OrderEventPublisher publica la orden en la cola para que el worker
// la notifique de forma asíncrona.
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, payload queue.OrderPlacedPayload) error
}
