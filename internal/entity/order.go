package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Entidad: Order. Efímera — nunca se persiste, solo valida los datos
// y sirve para armar la respuesta y la notificación.
type Order struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Item      string    `json:"item"`
	Qty       int       `json:"qty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Factory
func NewOrder(companyID, item string, qty int, email string) (*Order, error) {
	order := &Order{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Item:      item,
		Qty:       qty,
		Email:     email,
		CreatedAt: time.Now(),
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

func (o *Order) Validate() error {
	if o.CompanyID == "" {
		return errors.New("company id is required")
	}
	if o.Item == "" {
		return errors.New("item is required")
	}
	if o.Qty <= 0 {
		return errors.New("qty must be a positive integer")
	}
	return nil
}
