package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"logcatalog/internal/ports"
)

// WorkspaceAdapter finds declaration files below a directory in lexical
// order, skipping build output and VCS metadata.
type WorkspaceAdapter struct {
	Fs afero.Fs
}

func NewWorkspaceAdapter(fsys afero.Fs) WorkspaceAdapter {
	return WorkspaceAdapter{Fs: fsys}
}

func (a WorkspaceAdapter) FindDeclarations(root string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace root is empty")
	}
	var paths []string
	err := afero.Walk(a.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && shouldSkipWorkspaceDir(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if isDeclarationFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan workspace").
			WithCause(err)
	}
	return paths, nil
}

func isDeclarationFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".toml":
		return true
	default:
		return false
	}
}

func shouldSkipWorkspaceDir(name string) bool {
	switch name {
	case "build", "target", "out", "META-INF", ".git", ".gradle", ".idea", "node_modules":
		return true
	default:
		return false
	}
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
