// Where: internal/infra/fileops/file_ops.go
// What: Filesystem writes for generated build files.
// Why: Give the command layer one typed error for every output failure.
package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

const outputFileMode os.FileMode = 0o644

// WriteError reports a failure to write a generated file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0o755)
}

// WriteFile writes content as UTF-8 to path, creating parent directories and
// replacing any existing file.
func WriteFile(path, content string) error {
	if path == "" {
		return &WriteError{Path: path, Err: fmt.Errorf("output path is required")}
	}
	if !utf8.ValidString(content) {
		return &WriteError{Path: path, Err: fmt.Errorf("content is not valid UTF-8")}
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return &WriteError{Path: path, Err: fmt.Errorf("path is a directory")}
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(content), outputFileMode); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
