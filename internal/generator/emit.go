// Where: internal/generator/emit.go
// What: Commit rendered source to its destination path.
// Why: A crash mid-write must never leave a partial file at the target.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports a failure to commit rendered source to disk.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Emit writes content to path with replace semantics: the bytes land in a
// temp file in the destination directory and are renamed into place, so a
// reader observes either the previous file or the complete new one. The
// temp file is removed on every failure path. Destination writability is
// not validated up front; any failure surfaces as a WriteError.
func Emit(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	cleanup := func() {
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
