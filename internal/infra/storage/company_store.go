package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurenstar/chat-backend/internal/entity"
)

// CompanyStore resuelve empresas contra un directorio base con un
// subdirectorio por empresa (empresas/<id>/<recurso>.json). No cachea
// nada: cada llamada relee el archivo, así las ediciones en caliente
// se ven en el próximo request.
type CompanyStore struct {
	BaseDir string
}

func NewCompanyStore(baseDir string) *CompanyStore {
	return &CompanyStore{BaseDir: baseDir}
}

// GetConfig devuelve la vista tipada del config.json de la empresa.
// Ausente, malformado o vacío cuentan igual: ErrCompanyNotFound.
func (s *CompanyStore) GetConfig(companyID string) (*entity.CompanyConfig, error) {
	raw, err := s.readFile(companyID, entity.ResourceConfig)
	if err != nil {
		return nil, entity.ErrCompanyNotFound
	}

	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil || len(doc) == 0 {
		return nil, entity.ErrCompanyNotFound
	}

	return entity.NewCompanyConfig(doc), nil
}

// GetItems devuelve la lista de items de empresas/<id>/<recurso>.json.
// Normaliza en la frontera de storage: acepta {"items": [...]} o
// directamente [...]; cualquier otra cosa (directorio ausente, archivo
// ausente, JSON inválido, forma incorrecta) degrada a lista vacía.
// Los items se conservan como JSON crudo para que vuelvan byte a byte.
func (s *CompanyStore) GetItems(companyID, resource string) []json.RawMessage {
	// Solo los recursos de catálogo son listas; config no pasa por acá.
	if !entity.IsCatalogResource(resource) {
		return []json.RawMessage{}
	}

	raw, err := s.readFile(companyID, resource)
	if err != nil {
		return []json.RawMessage{}
	}
	return normalizeItems(raw)
}

// GetDocument devuelve el documento completo de un recurso, sin
// normalizar, para los endpoints informativos. Ausente, malformado o
// vacío devuelven ErrResourceNotFound.
func (s *CompanyStore) GetDocument(companyID, resource string) (json.RawMessage, error) {
	raw, err := s.readFile(companyID, resource)
	if err != nil {
		return nil, entity.ErrResourceNotFound
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, entity.ErrResourceNotFound
	}
	if isEmptyDocument(doc) {
		return nil, entity.ErrResourceNotFound
	}

	return json.RawMessage(raw), nil
}

func (s *CompanyStore) readFile(companyID, resource string) ([]byte, error) {
	if !safePathElement(companyID) || !safePathElement(resource) {
		return nil, fmt.Errorf("invalid path element")
	}
	path := filepath.Join(s.BaseDir, companyID, resource+".json")
	return os.ReadFile(path)
}

// safePathElement rechaza ids que escapan del directorio base.
func safePathElement(v string) bool {
	return v != "" && v != "." && v != ".." && v == filepath.Base(v)
}

func normalizeItems(raw []byte) []json.RawMessage {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return []json.RawMessage{}
	}

	switch trimmed[0] {
	case '{':
		var doc struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil || doc.Items == nil {
			return []json.RawMessage{}
		}
		return doc.Items
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return []json.RawMessage{}
		}
		if items == nil {
			items = []json.RawMessage{}
		}
		return items
	}
	return []json.RawMessage{}
}

func isEmptyDocument(doc any) bool {
	switch d := doc.(type) {
	case nil:
		return true
	case map[string]any:
		return len(d) == 0
	case []any:
		return len(d) == 0
	case string:
		return d == ""
	case bool:
		return !d
	case float64:
		return d == 0
	}
	return false
}
