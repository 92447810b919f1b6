package parser

import (
	"fmt"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// Body labels recognised in column B.
const (
	labelDescription      = "Description"
	labelDiagramReference = "Diagram reference"
)

// sectionScan is the state threaded through a body scan.
type sectionScan struct {
	sheet    Sheet
	rootPath string
	sections []models.Section
	// current indexes the open section in sections, -1 before the first header.
	current int
}

// ExtractSections scans the body of a record sheet starting at startRow and
// builds its section tree. The scan stops at the "Diagrams" marker row or
// after MaxScanRows rows. Diagram references are resolved with rootPath
// prefixed to every asset path.
func ExtractSections(sheet Sheet, startRow int, rootPath string) ([]models.Section, error) {
	scan := &sectionScan{
		sheet:    sheet,
		rootPath: rootPath,
		sections: []models.Section{},
		current:  -1,
	}
	for row := startRow; row < startRow+MaxScanRows; row++ {
		if sheet.Cell(row, colA).Is(diagramMarker) {
			break
		}
		if err := scan.row(sheet.Cell(row, colB)); err != nil {
			return nil, err
		}
	}
	return scan.sections, nil
}

// row applies one body row, identified by its column B cell.
func (s *sectionScan) row(headline Cell) error {
	if headline.Bold {
		section := models.Section{
			Title:       headline.Value,
			Subsections: []models.Subsection{},
		}
		if value := headline.Right(); !value.IsPlaceholder() {
			section.Contents = value.Value
		}
		s.sections = append(s.sections, section)
		s.current = len(s.sections) - 1
		return nil
	}

	// Whitespace-only labels still count as values.
	if headline.Value == "" {
		return nil
	}

	section, err := s.open(headline)
	if err != nil {
		return err
	}

	switch {
	case headline.Is(labelDescription):
		section.Contents = headline.Right().Value
	case headline.Is(labelDiagramReference):
		diagrams, err := ResolveDiagrams(s.sheet, headline.Right().Value, s.rootPath)
		if err != nil {
			return fmt.Errorf("row %d: %w", headline.Row, err)
		}
		section.Diagrams = diagrams
	default:
		section.Subsections = append(section.Subsections, models.Subsection{
			Title:    headline.Value,
			Contents: headline.Right().Value,
		})
	}
	return nil
}

// open returns the section currently being filled.
func (s *sectionScan) open(headline Cell) (*models.Section, error) {
	if s.current < 0 {
		return nil, fmt.Errorf("sheet %q row %d (%q): %w", s.sheet.Name(), headline.Row, headline.Value, ErrNoOpenSection)
	}
	return &s.sections[s.current], nil
}
