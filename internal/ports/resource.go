package ports

import (
	"io"

	"logcatalog/internal/types"
)

// ResourcePort provides byte streams for persisted resources keyed by
// logical name.
type ResourcePort interface {
	// OpenResource opens an existing resource for reading. A missing or
	// empty resource yields an errbuilder.CodeNotFound error.
	OpenResource(id types.ResourceID) (io.ReadCloser, error)

	// CreateResource opens a resource for writing. Providers may allow
	// this at most once per logical name per round.
	CreateResource(id types.ResourceID) (io.WriteCloser, error)
}
