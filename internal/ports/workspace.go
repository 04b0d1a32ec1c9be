package ports

// WorkspacePort discovers declaration files within a source tree.
type WorkspacePort interface {
	FindDeclarations(root string) ([]string, error)
}
