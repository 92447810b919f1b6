// Package render turns extracted records into text documents through
// mustache templates.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cbroglie/mustache"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// ErrTemplateNotFound indicates a record template missing from the template directory.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateFiles maps each record kind to its template file name.
var TemplateFiles = map[models.RecordKind]string{
	models.KindTestCase:                "TestCase.mustache",
	models.KindTestSpecification:       "TestSpecification.mustache",
	models.KindExperimentSpecification: "ExperimentSpecification.mustache",
}

// Templates holds one parsed template per record kind.
type Templates struct {
	byKind map[models.RecordKind]*mustache.Template
}

// LoadTemplates parses the three record templates from dir. Every
// template must be present.
func LoadTemplates(dir string) (*Templates, error) {
	t := &Templates{byKind: make(map[models.RecordKind]*mustache.Template)}
	for _, kind := range models.Kinds {
		path := filepath.Join(dir, TemplateFiles[kind])
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}
		tmpl, err := mustache.ParseFile(path)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", path, err)
		}
		t.byKind[kind] = tmpl
	}
	return t, nil
}

// ParseTemplates builds Templates from in-memory sources keyed by kind.
func ParseTemplates(sources map[models.RecordKind]string) (*Templates, error) {
	t := &Templates{byKind: make(map[models.RecordKind]*mustache.Template)}
	for _, kind := range models.Kinds {
		src, ok := sources[kind]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, kind)
		}
		tmpl, err := mustache.ParseString(src)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", kind, err)
		}
		t.byKind[kind] = tmpl
	}
	return t, nil
}

// Render renders rec through the template of its kind.
func (t *Templates) Render(rec *models.Record) (string, error) {
	tmpl, ok := t.byKind[rec.Kind]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, rec.Kind)
	}
	out, err := tmpl.Render(Context(rec))
	if err != nil {
		return "", fmt.Errorf("render %s %s: %w", rec.Kind, rec.ID, err)
	}
	return out, nil
}
