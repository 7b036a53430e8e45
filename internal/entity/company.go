package entity

import "errors"

var (
	ErrCompanyNotFound  = errors.New("empresa no encontrada")
	ErrResourceNotFound = errors.New("recurso no encontrado")
)

// CompanyConfig es la vista tipada del config.json de una empresa.
// El documento crudo se conserva para los endpoints informativos, que
// lo devuelven tal cual está en disco.
type CompanyConfig struct {
	Name        string
	Email       string
	PaymentBase string

	Raw map[string]any
}

// NewCompanyConfig builds the typed view over a raw config document.
// Both Spanish and English key spellings are accepted; Spanish wins.
func NewCompanyConfig(raw map[string]any) *CompanyConfig {
	return &CompanyConfig{
		Name:        stringKey(raw, "nombre", "name"),
		Email:       stringKey(raw, "correo", "email"),
		PaymentBase: stringKey(raw, "linkPagoBase", "payment_base"),
		Raw:         raw,
	}
}

func stringKey(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
