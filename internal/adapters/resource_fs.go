package adapters

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"

	"logcatalog/internal/ports"
	"logcatalog/internal/types"
)

const stagedSuffix = ".partial"

// FileResourceAdapter maps logical resource names onto an afero filesystem.
// Each resource can be created once per adapter; a round uses one adapter.
type FileResourceAdapter struct {
	Fs      afero.Fs
	created map[string]struct{}
}

// NewFileResourceAdapter serves resources below root on the local disk.
func NewFileResourceAdapter(root string) *FileResourceAdapter {
	return NewFsResourceAdapter(afero.NewBasePathFs(afero.NewOsFs(), root))
}

func NewFsResourceAdapter(fsys afero.Fs) *FileResourceAdapter {
	return &FileResourceAdapter{Fs: fsys, created: map[string]struct{}{}}
}

func (a *FileResourceAdapter) OpenResource(id types.ResourceID) (io.ReadCloser, error) {
	path := resourcePath(id)
	info, err := a.Fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, resourceNotFound(id)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to stat resource %s", id)).
			WithCause(err)
	}
	if info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("resource %s is a directory", id))
	}
	if info.Size() == 0 {
		return nil, resourceNotFound(id)
	}
	file, err := a.Fs.Open(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to open resource %s", id)).
			WithCause(err)
	}
	return file, nil
}

// CreateResource stages output next to the target and moves it into place
// on Close.
func (a *FileResourceAdapter) CreateResource(id types.ResourceID) (io.WriteCloser, error) {
	name := id.LogicalName()
	if _, ok := a.created[name]; ok {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("resource %s was already created in this round", id))
	}
	path := resourcePath(id)
	if dir := filepath.Dir(path); dir != "." {
		if err := a.Fs.MkdirAll(dir, 0o755); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to create directory for resource %s", id)).
				WithCause(err)
		}
	}
	staged := path + stagedSuffix
	file, err := a.Fs.Create(staged)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create resource %s", id)).
			WithCause(err)
	}
	a.created[name] = struct{}{}
	return &stagedWriter{fs: a.Fs, file: file, staged: staged, target: path}, nil
}

func resourcePath(id types.ResourceID) string {
	return filepath.FromSlash(id.LogicalName())
}

func resourceNotFound(id types.ResourceID) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("resource %s not found", id))
}

type stagedWriter struct {
	fs     afero.Fs
	file   afero.File
	staged string
	target string
	done   bool
}

func (w *stagedWriter) Write(p []byte) (int, error) {
	return w.file.Write(p)
}

func (w *stagedWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	if err := w.file.Close(); err != nil {
		_ = w.fs.Remove(w.staged)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close resource").
			WithCause(err)
	}
	if err := w.fs.Rename(w.staged, w.target); err != nil {
		_ = w.fs.Remove(w.staged)
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to move resource into place").
			WithCause(err)
	}
	return nil
}

// Abort discards the staged output and leaves the target untouched.
func (w *stagedWriter) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	_ = w.file.Close()
	return w.fs.Remove(w.staged)
}

var _ ports.ResourcePort = (*FileResourceAdapter)(nil)
