package mail

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/aurenstar/chat-backend/internal/entity"
)

var orderTemplate = template.Must(template.New("orden").Parse(`Hola {{.CompanyName}},

Entró una orden nueva por el chat:

  Orden:    {{.OrderID}}
  Artículo: {{.Item}}
  Cantidad: {{.Qty}}
{{- if .BuyerEmail}}
  Contacto: {{.BuyerEmail}}
{{- end}}
  Fecha:    {{.CreatedAt}}

Este aviso es automático, no respondas a este correo.
`))

func NewEmailSender(host string, port int, user, password, from string, companies ConfigReader) *EmailSender {
	return &EmailSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		From:      from,
		Companies: companies,
	}
}

// NotifyOrder manda el aviso en texto plano al correo configurado por
// la empresa. Sin credenciales o sin destino es error de configuración;
// no hay reintentos ni confirmación de entrega más allá del SMTP.
func (s *EmailSender) NotifyOrder(companyID string, order *entity.Order) error {
	if s.User == "" || s.Password == "" {
		return fmt.Errorf("credenciales SMTP no configuradas")
	}

	cfg, err := s.Companies.GetConfig(companyID)
	if err != nil {
		return fmt.Errorf("config de la empresa %s: %w", companyID, err)
	}
	if cfg.Email == "" {
		return fmt.Errorf("la empresa %s no tiene correo configurado", companyID)
	}

	name := cfg.Name
	if name == "" {
		name = companyID
	}

	data := OrderEmailData{
		CompanyName: name,
		OrderID:     order.ID,
		Item:        order.Item,
		Qty:         order.Qty,
		BuyerEmail:  order.Email,
		CreatedAt:   order.CreatedAt.Format(time.RFC3339),
	}

	var body bytes.Buffer
	if err := orderTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("error al armar el cuerpo del correo: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", cfg.Email)
	m.SetHeader("Subject", fmt.Sprintf("Nueva orden: %s x%d", order.Item, order.Qty))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar email SMTP: %w", err)
	}

	return nil
}
