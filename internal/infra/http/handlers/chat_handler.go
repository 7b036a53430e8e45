package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/aurenstar/chat-backend/internal/infra/http/middleware"
	"github.com/aurenstar/chat-backend/internal/usecase"
)

// ChatExecutor es lo que esta frontera necesita del dispatcher.
type ChatExecutor interface {
	Execute(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error)
}

// ChatHandler es la frontera del contrato /chat: decodifica el body,
// resuelve el alias empresaid/empresa_id (body o query string) y mapea
// cada clase de error a una respuesta. Nada de lo que pase adentro
// llega al cliente como stack trace: siempre sale JSON {ok, reply}.
type ChatHandler struct {
	ChatUC ChatExecutor
	Logger *zap.Logger
}

func NewChatHandler(uc ChatExecutor, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{ChatUC: uc, Logger: logger}
}

type chatRequest struct {
	Message    string         `json:"message"`
	EmpresaID  string         `json:"empresaid"`
	EmpresaID2 string         `json:"empresa_id"`
	Payload    map[string]any `json:"payload"`
}

func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.Logger.Error("panic en /chat", zap.Any("panic", rec))
			writeJSON(w, http.StatusInternalServerError,
				usecase.ChatOutput{OK: false, Reply: "Error interno"})
		}
	}()

	var req chatRequest
	dec := json.NewDecoder(r.Body)
	// UseNumber: los montos llegan como json.Number y el link de pago
	// conserva la representación literal del cliente.
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest,
			usecase.ChatOutput{OK: false, Reply: "JSON inválido"})
		return
	}

	companyID := firstNonEmpty(
		req.EmpresaID,
		req.EmpresaID2,
		r.URL.Query().Get("empresaid"),
		r.URL.Query().Get("empresa_id"),
	)

	input := usecase.ChatInput{
		Message:   req.Message,
		CompanyID: companyID,
		Payload:   req.Payload,
	}

	output, err := h.ChatUC.Execute(r.Context(), input)
	if err != nil {
		h.writeFailure(w, err)
		return
	}

	switch strings.ToUpper(strings.TrimSpace(req.Message)) {
	case usecase.ActionOrdenar:
		middleware.RecordOrder()
	case usecase.ActionPagar:
		middleware.RecordPaymentLink()
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *ChatHandler) writeFailure(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		writeJSON(w, http.StatusBadRequest,
			usecase.ChatOutput{OK: false, Reply: err.Error()})
		return
	}

	// El detalle solo va al log; el cliente recibe un mensaje genérico.
	if usecase.IsTechnicalError(err) {
		h.Logger.Error("falla técnica en /chat", zap.Error(err))
	} else {
		h.Logger.Error("error interno en /chat", zap.Error(err))
	}
	writeJSON(w, http.StatusInternalServerError,
		usecase.ChatOutput{OK: false, Reply: "Error interno"})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
