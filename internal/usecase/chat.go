package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aurenstar/chat-backend/internal/entity"
	"github.com/aurenstar/chat-backend/internal/infra/http/middleware"
	"github.com/aurenstar/chat-backend/internal/infra/queue"
)

// Tokens de acción del contrato AURENSTAR.
const (
	ActionPrecios   = "ACTION:PRECIOS"
	ActionProductos = "ACTION:PRODUCTOS"
	ActionPromos    = "ACTION:PROMOS"
	ActionFAQ       = "ACTION:FAQ"
	ActionOrdenar   = "ACTION:ORDENAR"
	ActionPagar     = "ACTION:PAGAR"
)

// ChatUseCase clasifica el token de acción y resuelve la respuesta.
// No guarda estado entre requests: cada Execute es independiente.
type ChatUseCase struct {
	Companies          CompanyReader
	Notifier           OrderNotifier       // opcional
	Events             OrderEventPublisher // opcional, tiene prioridad sobre Notifier
	DefaultPaymentBase string
	Logger             *zap.Logger
}

func NewChatUseCase(
	companies CompanyReader,
	notifier OrderNotifier,
	events OrderEventPublisher,
	defaultPaymentBase string,
	logger *zap.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		Companies:          companies,
		Notifier:           notifier,
		Events:             events,
		DefaultPaymentBase: defaultPaymentBase,
		Logger:             logger,
	}
}

func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" || input.CompanyID == "" {
		return nil, &DomainError{Code: "MISSING_FIELDS", Message: "Faltan campos: message/empresaid"}
	}

	action := strings.ToUpper(message)

	switch action {
	case ActionPrecios:
		return uc.listCatalog(input.CompanyID, entity.ResourcePrecios, "Lista de precios"), nil
	case ActionProductos:
		return uc.listCatalog(input.CompanyID, entity.ResourceProductos, "Catálogo de productos"), nil
	case ActionPromos:
		return uc.listCatalog(input.CompanyID, entity.ResourcePromos, "Promociones vigentes"), nil
	case ActionFAQ:
		return uc.listCatalog(input.CompanyID, entity.ResourceFAQ, "Preguntas frecuentes"), nil
	case ActionOrdenar:
		return uc.placeOrder(ctx, input)
	case ActionPagar:
		return uc.generatePaymentLink(input)
	}

	return nil, &DomainError{
		Code:    "UNSUPPORTED_ACTION",
		Message: fmt.Sprintf("Acción no soportada: %s", action),
	}
}

func (uc *ChatUseCase) listCatalog(companyID, resource, reply string) *ChatOutput {
	items := uc.Companies.GetItems(companyID, resource)
	return &ChatOutput{
		OK:    true,
		Reply: reply,
		Data:  map[string]any{"items": items},
	}
}

func (uc *ChatUseCase) placeOrder(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	item := strings.TrimSpace(stringValue(input.Payload["item"]))
	qty, ok := parseQty(input.Payload["qty"])
	email := strings.TrimSpace(stringValue(input.Payload["email"]))

	if item == "" || !ok || qty <= 0 {
		return nil, &DomainError{Code: "INVALID_ORDER", Message: "Datos de la orden inválidos"}
	}

	order, err := entity.NewOrder(input.CompanyID, item, qty, email)
	if err != nil {
		// Item y qty ya pasaron la validación: si la factory falla acá
		// es una inconsistencia interna, no un error del usuario.
		return nil, &TechnicalError{Code: "ORDER_BUILD", Message: "no se pudo armar la orden", Cause: err}
	}

	uc.dispatchNotification(ctx, order)

	return &ChatOutput{
		OK:    true,
		Reply: fmt.Sprintf("Orden recibida: %s x%d", order.Item, order.Qty),
	}, nil
}

func (uc *ChatUseCase) generatePaymentLink(input ChatInput) (*ChatOutput, error) {
	req := entity.PaymentRequest{
		Amount:      input.Payload["amount"],
		Description: stringValue(input.Payload["description"]),
	}
	if err := req.Validate(); err != nil {
		return nil, &DomainError{Code: "INVALID_PAYMENT", Message: "Datos de pago incompletos"}
	}

	link := uc.buildLink(input.CompanyID, req.Amount, strings.TrimSpace(req.Description))

	return &ChatOutput{
		OK:    true,
		Reply: "Link de pago generado",
		Data:  map[string]any{"payment_link": link},
	}, nil
}

// dispatchNotification es fire-and-forget: la orden se confirma al
// usuario aunque el aviso al dueño falle. Con cola configurada publica
// el evento; si no, llama al notifier directo en una goroutine.
func (uc *ChatUseCase) dispatchNotification(ctx context.Context, order *entity.Order) {
	switch {
	case uc.Events != nil:
		if err := uc.Events.PublishOrderPlaced(ctx, queue.NewOrderPlacedPayload(order)); err != nil {
			uc.Logger.Warn("no se pudo publicar la orden en la cola",
				zap.String("order_id", order.ID), zap.Error(err))
		}
	case uc.Notifier != nil:
		go func() {
			if err := uc.Notifier.NotifyOrder(order.CompanyID, order); err != nil {
				uc.Logger.Warn("no se pudo notificar la orden",
					zap.String("order_id", order.ID), zap.Error(err))
				middleware.RecordNotificationError()
			}
		}()
	}
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

// parseQty acepta cantidad como número o como string ("3" y 3 valen
// igual); lo que no sea un entero queda inválido.
func parseQty(v any) (int, bool) {
	switch q := v.(type) {
	case json.Number:
		n, err := strconv.Atoi(q.String())
		return n, err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(q))
		return n, err == nil
	case float64:
		n := int(q)
		return n, float64(n) == q
	case int:
		return q, true
	}
	return 0, false
}
