package usecase

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// buildLink arma base/<empresa>?monto=<amount>&desc=<desc-codificada>.
// La base sale del config de la empresa (linkPagoBase, después
// payment_base) y si no hay config usable cae a la base por defecto.
func (uc *ChatUseCase) buildLink(companyID string, amount any, description string) string {
	base := uc.DefaultPaymentBase
	if cfg, err := uc.Companies.GetConfig(companyID); err == nil && cfg.PaymentBase != "" {
		base = cfg.PaymentBase
	}

	return fmt.Sprintf("%s/%s?monto=%s&desc=%s",
		strings.TrimRight(base, "/"),
		companyID,
		stringifyAmount(amount),
		encodeQueryValue(description),
	)
}

// encodeQueryValue escapa solo el valor; los separadores ? y & del
// link quedan literales. QueryEscape usa '+' para el espacio y la UI
// de pagos espera %20.
func encodeQueryValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// stringifyAmount pasa el monto tal como llegó: un json.Number
// conserva la representación literal del cliente.
func stringifyAmount(v any) string {
	switch a := v.(type) {
	case json.Number:
		return a.String()
	case string:
		return a
	default:
		return fmt.Sprintf("%v", a)
	}
}
