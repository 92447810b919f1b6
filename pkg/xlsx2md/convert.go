package xlsx2md

import (
	"fmt"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/output"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/parser"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/render"
)

// Result describes a finished conversion.
type Result struct {
	// Placements lists every planned document with its enriched record.
	Placements []models.Placement
	// Written lists the paths written, empty for dry runs.
	Written []string
}

// Convert extracts the records of the workbook at inputPath, renders them
// and writes the documents below outDir.
func Convert(inputPath, outDir string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	filter, err := NewFilter(opts.Filter)
	if err != nil {
		return nil, err
	}

	wb, err := parser.OpenWorkbook(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, inputPath, err)
	}
	defer wb.Close()

	date, err := opts.RunDate(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInputNotFound, inputPath, err)
	}

	var templates *render.Templates
	if !opts.DryRun {
		if templates, err = render.LoadTemplates(opts.TemplateDir); err != nil {
			return nil, err
		}
	}

	placements, err := Build(wb, filter, date)
	if err != nil {
		return nil, err
	}
	result := &Result{Placements: placements}
	if opts.DryRun {
		return result, nil
	}

	files, err := Render(templates, placements, opts.Extension)
	if err != nil {
		return nil, err
	}

	w := &output.Writer{Root: outDir}
	result.Written, err = w.Write(files)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Build assembles, places and enriches the records of wb.
func Build(wb parser.Workbook, filter *Filter, date string) ([]models.Placement, error) {
	doc, err := Assemble(wb, filter)
	if err != nil {
		return nil, err
	}
	placements := Plan(doc)
	for _, p := range placements {
		Enrich(p.Record, date)
	}
	return placements, nil
}

// Render renders every placement through its record template.
func Render(templates *render.Templates, placements []models.Placement, ext string) ([]models.OutputFile, error) {
	files := make([]models.OutputFile, 0, len(placements))
	for _, p := range placements {
		content, err := templates.Render(p.Record)
		if err != nil {
			return nil, err
		}
		files = append(files, models.OutputFile{
			Dir:      p.Dir,
			Filename: p.Filename,
			Ext:      ext,
			Content:  content,
		})
	}
	return files, nil
}
