package ports

import "logcatalog/internal/types"

// DeclarationSourcePort supplies the declaration records of one round.
type DeclarationSourcePort interface {
	LoadDeclarations(paths []string) (types.Declarations, error)
}
