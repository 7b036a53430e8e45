package entity

import (
	"errors"
	"strings"
)

// PaymentRequest es el pedido de link de pago. Amount se mantiene sin
// tipar: el monto viaja al link exactamente como llegó en el request,
// sin formateo numérico.
type PaymentRequest struct {
	Amount      any
	Description string
}

func (p PaymentRequest) Validate() error {
	if p.Amount == nil {
		return errors.New("amount is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errors.New("description is required")
	}
	return nil
}
