package adapters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"logcatalog/internal/ports"
	"logcatalog/internal/types"
)

// DeclarationFileAdapter reads declaration records from YAML, JSON or TOML
// files. Records keep the order of the files and of the entries in them.
// A directory stands for every declaration file below it.
type DeclarationFileAdapter struct {
	Fs afero.Fs
}

func NewDeclarationFileAdapter() DeclarationFileAdapter {
	return DeclarationFileAdapter{Fs: afero.NewOsFs()}
}

func (a DeclarationFileAdapter) LoadDeclarations(paths []string) (types.Declarations, error) {
	if len(paths) == 0 {
		return types.Declarations{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one declarations file is required")
	}
	files, err := a.expand(paths)
	if err != nil {
		return types.Declarations{}, err
	}
	var all types.Declarations
	for _, path := range files {
		decls, err := a.load(path)
		if err != nil {
			return types.Declarations{}, err
		}
		all.Append(decls)
	}
	return all, nil
}

func (a DeclarationFileAdapter) expand(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		isDir, err := afero.IsDir(a.Fs, path)
		if err != nil || !isDir {
			files = append(files, path)
			continue
		}
		found, err := NewWorkspaceAdapter(a.Fs).FindDeclarations(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func (a DeclarationFileAdapter) load(path string) (types.Declarations, error) {
	data, err := afero.ReadFile(a.Fs, path)
	if err != nil {
		return types.Declarations{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("declarations file not found: %s", path)).
			WithCause(err)
	}
	var decls types.Declarations
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &decls); err != nil {
			return types.Declarations{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("failed to parse declarations toml: %s", path)).
				WithCause(err)
		}
	case ".yaml", ".yml", ".json":
		if err := yaml.Unmarshal(data, &decls); err != nil {
			return types.Declarations{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("failed to parse declarations yaml: %s", path)).
				WithCause(err)
		}
	default:
		return types.Declarations{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported declarations file type %q: %s", ext, path))
	}
	defaultSources(&decls, path)
	return decls, nil
}

// defaultSources points records without provenance at the file they came from.
func defaultSources(decls *types.Declarations, path string) {
	for i := range decls.Bundles {
		if decls.Bundles[i].Source.File == "" {
			decls.Bundles[i].Source.File = path
		}
	}
	for i := range decls.Messages {
		if decls.Messages[i].Source.File == "" {
			decls.Messages[i].Source.File = path
		}
	}
	for i := range decls.Loggers {
		if decls.Loggers[i].Source.File == "" {
			decls.Loggers[i].Source.File = path
		}
	}
}

var _ ports.DeclarationSourcePort = DeclarationFileAdapter{}
