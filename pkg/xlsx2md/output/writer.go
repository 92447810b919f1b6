// Package output writes rendered documents to disk.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// WriteError reports a failure to create a directory or write a file.
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

// Writer writes output files below Root.
type Writer struct {
	// Root is the output directory.
	Root string
	// Log receives one progress line per written file. Defaults to the
	// standard logrus logger.
	Log logrus.FieldLogger
}

// Write writes every file, creating directories as needed and overwriting
// existing files. It stops at the first failure; files already written
// are left in place.
func (w *Writer) Write(files []models.OutputFile) ([]string, error) {
	log := w.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	written := make([]string, 0, len(files))
	for _, file := range files {
		dir := filepath.Join(w.Root, file.Dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return written, &WriteError{Path: dir, Err: err}
		}

		path := filepath.Join(w.Root, file.Path())
		if err := os.WriteFile(path, []byte(file.Content), 0644); err != nil {
			return written, &WriteError{Path: path, Err: err}
		}
		written = append(written, path)
		log.WithField("path", path).Info("wrote")
	}
	return written, nil
}
