package parser

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// Diagram table layout, relative to the "Diagrams" marker row.
const (
	diagramMarker      = "Diagrams"
	diagramFirstCol    = 3
	diagramNameOffset  = 1
	diagramURIOffset   = 3
	diagramRefSplitSep = ";"
)

// RootPath returns the relative path from a record written depth levels
// below the output root back to the root ("", "..", "../..").
func RootPath(depth int) string {
	parts := make([]string, depth)
	for i := range parts {
		parts[i] = ".."
	}
	return strings.Join(parts, "/")
}

// SplitDiagramRefs splits a reference list on ";" and trims each code.
// Empty tokens and duplicates are kept.
func SplitDiagramRefs(refText string) []string {
	if strings.TrimSpace(refText) == "" {
		return nil
	}
	parts := strings.Split(refText, diagramRefSplitSep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// ResolveDiagrams resolves a semicolon-separated list of diagram codes
// against the sheet's diagram table. Codes missing from the table are
// skipped. An empty list resolves to nothing, even without a table.
func ResolveDiagrams(sheet Sheet, refText, rootPath string) ([]models.DiagramRef, error) {
	codes := SplitDiagramRefs(refText)
	if len(codes) == 0 {
		return []models.DiagramRef{}, nil
	}

	headerRow, ok := locateDiagramTable(sheet)
	if !ok {
		return nil, fmt.Errorf("sheet %q: %w", sheet.Name(), ErrDiagramSectionNotFound)
	}

	result := []models.DiagramRef{}
	for _, code := range codes {
		for col := diagramFirstCol; ; col++ {
			header := sheet.Cell(headerRow, col)
			if header.Value == "" {
				break
			}
			if header.Value == code {
				result = append(result, models.DiagramRef{
					Name: sheet.Cell(headerRow+diagramNameOffset, col).Value,
					URI:  joinRoot(rootPath, sheet.Cell(headerRow+diagramURIOffset, col).Value),
				})
				break
			}
		}
	}
	return result, nil
}

// locateDiagramTable returns the header row of the diagram table, which
// sits right below the "Diagrams" marker in column A. When the marker
// appears more than once the last occurrence wins.
func locateDiagramTable(sheet Sheet) (int, bool) {
	var markers []int
	for row := 1; row <= MaxScanRows; row++ {
		if sheet.Cell(row, colA).Is(diagramMarker) {
			markers = append(markers, row)
		}
	}
	if len(markers) == 0 {
		return 0, false
	}
	if len(markers) > 1 {
		logrus.WithFields(logrus.Fields{
			"sheet": sheet.Name(),
			"rows":  markers,
		}).Warn("multiple Diagrams markers, using the last one")
	}
	return markers[len(markers)-1] + 1, true
}

func joinRoot(rootPath, uri string) string {
	if rootPath == "" {
		return uri
	}
	return rootPath + "/" + uri
}
