package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurenstar/chat-backend/internal/entity"
	"github.com/aurenstar/chat-backend/internal/infra/storage"
)

func writeCompanyFile(t *testing.T, baseDir, companyID, name, content string) {
	t.Helper()
	dir := filepath.Join(baseDir, companyID)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestGetItemsWrappedShape(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "precios.json",
		`{"items": [{"nombre": "Curso", "precio": 100}, {"nombre": "Taller", "precio": 50}]}`)

	store := storage.NewCompanyStore(baseDir)
	items := store.GetItems("acme", entity.ResourcePrecios)

	require.Len(t, items, 2)
	assert.JSONEq(t, `{"nombre": "Curso", "precio": 100}`, string(items[0]))
	assert.JSONEq(t, `{"nombre": "Taller", "precio": 50}`, string(items[1]))
}

func TestGetItemsBareArray(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "faq.json",
		`[{"q": "¿Envíos?", "a": "Sí"}, "texto suelto"]`)

	store := storage.NewCompanyStore(baseDir)
	items := store.GetItems("acme", entity.ResourceFAQ)

	require.Len(t, items, 2)
	assert.JSONEq(t, `{"q": "¿Envíos?", "a": "Sí"}`, string(items[0]))
	assert.Equal(t, `"texto suelto"`, string(items[1]))
}

func TestGetItemsDegradesToEmpty(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "promos.json", `{"items": [1, 2`)
	writeCompanyFile(t, baseDir, "acme", "productos.json", `{"otra": "cosa"}`)
	writeCompanyFile(t, baseDir, "acme", "precios.json", `"un string"`)

	store := storage.NewCompanyStore(baseDir)

	cases := []struct {
		name     string
		company  string
		resource string
	}{
		{"json malformado", "acme", entity.ResourcePromos},
		{"mapa sin items", "acme", entity.ResourceProductos},
		{"forma incorrecta", "acme", entity.ResourcePrecios},
		{"archivo ausente", "acme", entity.ResourceFAQ},
		{"empresa ausente", "fantasma", entity.ResourcePrecios},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := store.GetItems(tc.company, tc.resource)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestGetItemsOnlyServesCatalogResources(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "config.json", `{"nombre": "Acme"}`)

	store := storage.NewCompanyStore(baseDir)

	// config es un mapping, no catálogo: aunque el archivo exista la
	// lectura como lista degrada a vacío.
	for _, resource := range []string{entity.ResourceConfig, "inventario"} {
		items := store.GetItems("acme", resource)
		assert.NotNil(t, items, resource)
		assert.Empty(t, items, resource)
	}
}

func TestGetItemsRereadsOnEveryCall(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "precios.json", `{"items": [1]}`)

	store := storage.NewCompanyStore(baseDir)
	assert.Len(t, store.GetItems("acme", entity.ResourcePrecios), 1)

	// Sin cache: la edición en disco se ve en la siguiente llamada.
	writeCompanyFile(t, baseDir, "acme", "precios.json", `{"items": [1, 2, 3]}`)
	assert.Len(t, store.GetItems("acme", entity.ResourcePrecios), 3)
}

func TestGetConfig(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "config.json",
		`{"nombre": "Acme SA", "correo": "dueño@acme.test", "linkPagoBase": "https://pagos.acme.test"}`)

	store := storage.NewCompanyStore(baseDir)

	cfg, err := store.GetConfig("acme")
	require.NoError(t, err)
	assert.Equal(t, "Acme SA", cfg.Name)
	assert.Equal(t, "dueño@acme.test", cfg.Email)
	assert.Equal(t, "https://pagos.acme.test", cfg.PaymentBase)
	assert.Equal(t, "Acme SA", cfg.Raw["nombre"])
}

func TestGetConfigFallbackKeys(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "config.json",
		`{"name": "Acme", "email": "a@acme.test", "payment_base": "https://pagos.example.com/pay"}`)

	store := storage.NewCompanyStore(baseDir)

	cfg, err := store.GetConfig("acme")
	require.NoError(t, err)
	assert.Equal(t, "https://pagos.example.com/pay", cfg.PaymentBase)
	assert.Equal(t, "a@acme.test", cfg.Email)
}

func TestGetConfigNotFound(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "rota", "config.json", `{no es json}`)
	writeCompanyFile(t, baseDir, "vacia", "config.json", `{}`)

	store := storage.NewCompanyStore(baseDir)

	for _, id := range []string{"fantasma", "rota", "vacia"} {
		cfg, err := store.GetConfig(id)
		assert.Nil(t, cfg, id)
		assert.ErrorIs(t, err, entity.ErrCompanyNotFound, id)
	}
}

func TestGetDocument(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "faq.json", `{"items": [{"q": "?"}]}`)
	writeCompanyFile(t, baseDir, "acme", "promos.json", `[]`)

	store := storage.NewCompanyStore(baseDir)

	doc, err := store.GetDocument("acme", entity.ResourceFAQ)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items": [{"q": "?"}]}`, string(doc))

	// Documento vacío cuenta como ausente, igual que en el contrato.
	_, err = store.GetDocument("acme", entity.ResourcePromos)
	assert.ErrorIs(t, err, entity.ErrResourceNotFound)

	_, err = store.GetDocument("acme", entity.ResourceConfig)
	assert.ErrorIs(t, err, entity.ErrResourceNotFound)
}

func TestPathTraversalTreatedAsNotFound(t *testing.T) {
	baseDir := t.TempDir()
	writeCompanyFile(t, baseDir, "acme", "config.json", `{"nombre": "Acme"}`)
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "secreto.json"), []byte(`{"x":1}`), 0o644))

	store := storage.NewCompanyStore(filepath.Join(baseDir, "acme"))

	for _, id := range []string{"..", "../acme", "a/b", ""} {
		_, err := store.GetConfig(id)
		assert.ErrorIs(t, err, entity.ErrCompanyNotFound, id)
		assert.Empty(t, store.GetItems(id, entity.ResourcePrecios), id)
	}

	doc, err := store.GetDocument("acme", "../secreto")
	assert.Nil(t, doc)
	assert.Error(t, err)
}
