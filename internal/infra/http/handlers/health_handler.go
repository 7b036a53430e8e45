package handlers

import (
	"net/http"
)

// HealthHandler responde OK en texto plano. Los probes existentes
// dependen del cuerpo exacto, no cambiar a JSON.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// StatusHandler es la raíz informativa: confirma que el backend está
// arriba y si el correo quedó configurado en el entorno.
type StatusHandler struct {
	MailConfigured bool
}

func NewStatusHandler(mailConfigured bool) *StatusHandler {
	return &StatusHandler{MailConfigured: mailConfigured}
}

type statusResponse struct {
	Status           string `json:"status"`
	EmailConfigurado bool   `json:"email_configurado"`
}

func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:           "Backend correcto",
		EmailConfigurado: h.MailConfigured,
	})
}
