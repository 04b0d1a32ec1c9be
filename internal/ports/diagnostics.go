package ports

import "logcatalog/internal/types"

type DiagnosticsPort interface {
	Report(d types.Diagnostic)
}
