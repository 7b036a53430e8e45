package mail

import (
	"github.com/aurenstar/chat-backend/internal/entity"
)

type OrderEmailData struct {
	CompanyName string
	OrderID     string
	Item        string
	Qty         int
	BuyerEmail  string
	CreatedAt   string
}

// ConfigReader resuelve el correo destino desde el config de la
// empresa.
type ConfigReader interface {
	GetConfig(companyID string) (*entity.CompanyConfig, error)
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	Companies ConfigReader
}
