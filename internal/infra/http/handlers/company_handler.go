package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aurenstar/chat-backend/internal/entity"
)

// DocumentReader es lo que este handler necesita del Company Store.
type DocumentReader interface {
	GetDocument(companyID, resource string) (json.RawMessage, error)
}

// CompanyHandler sirve los endpoints informativos de empresa. Los
// documentos salen tal cual están en disco; ausente y malformado se
// responden igual: 404.
type CompanyHandler struct {
	Store DocumentReader
}

func NewCompanyHandler(store DocumentReader) *CompanyHandler {
	return &CompanyHandler{Store: store}
}

func (h *CompanyHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, entity.ResourceConfig, "Empresa no encontrada")
}

func (h *CompanyHandler) HandleGetFAQ(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, entity.ResourceFAQ, "FAQ no encontrado")
}

func (h *CompanyHandler) HandleGetPromos(w http.ResponseWriter, r *http.Request) {
	h.serveDocument(w, r, entity.ResourcePromos, "Promos no encontradas")
}

func (h *CompanyHandler) serveDocument(w http.ResponseWriter, r *http.Request, resource, notFoundMsg string) {
	companyID := chi.URLParam(r, "empresaID")

	doc, err := h.Store.GetDocument(companyID, resource)
	if err != nil {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
