package usecase

// ChatInput es el request ya resuelto por el handler (el alias
// empresaid/empresa_id y el query string se resuelven antes de llegar
// acá). Payload llega decodificado con json.Number para que los montos
// pasen al link de pago sin reformatear.
type ChatInput struct {
	Message   string
	CompanyID string
	Payload   map[string]any
}

type ChatOutput struct {
	OK    bool           `json:"ok"`
	Reply string         `json:"reply"`
	Data  map[string]any `json:"data,omitempty"`
}
