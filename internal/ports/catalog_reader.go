package ports

import "logcatalog/internal/types"

// CatalogReaderPort reads a persisted catalog the way a consumer of the
// generated bundle would, with escapes resolved.
type CatalogReaderPort interface {
	ReadCatalog(id types.ResourceID) (types.CatalogView, error)
}
