package entity

// Recursos de catálogo que cada empresa puede tener en su directorio.
const (
	ResourceConfig    = "config"
	ResourcePrecios   = "precios"
	ResourceProductos = "productos"
	ResourcePromos    = "promos"
	ResourceFAQ       = "faq"
)

// IsCatalogResource reports whether name is one of the list-style
// catalog resources (config is a mapping, not a catalog).
func IsCatalogResource(name string) bool {
	switch name {
	case ResourcePrecios, ResourceProductos, ResourcePromos, ResourceFAQ:
		return true
	}
	return false
}
