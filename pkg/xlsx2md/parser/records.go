package parser

import (
	"fmt"

	"github.com/ukaji3/xlsx2md-go/pkg/xlsx2md/models"
)

// recordLayout describes where a record kind keeps its identity cells.
type recordLayout struct {
	idRef     string
	parentRef string
	nameRef   string
	bodyRow   int
}

var layouts = map[models.RecordKind]recordLayout{
	models.KindTestCase: {
		idRef:   "C2",
		nameRef: "C3",
		bodyRow: 4,
	},
	models.KindTestSpecification: {
		idRef:     "C2",
		parentRef: "C3",
		nameRef:   "C4",
		bodyRow:   6,
	},
	models.KindExperimentSpecification: {
		idRef:     "C2",
		parentRef: "C3",
		nameRef:   "C4",
		bodyRow:   6,
	},
}

// ExtractTestCase extracts a Test Case sheet. It returns nil when the sheet
// has no id.
func ExtractTestCase(sheet Sheet) (*models.Record, error) {
	return ExtractRecord(models.KindTestCase, sheet)
}

// ExtractTestSpecification extracts a Test Specification sheet. It returns
// nil when the sheet has no id.
func ExtractTestSpecification(sheet Sheet) (*models.Record, error) {
	return ExtractRecord(models.KindTestSpecification, sheet)
}

// ExtractExperimentSpecification extracts an Experiment Specification
// sheet. It returns nil when the sheet has no id.
func ExtractExperimentSpecification(sheet Sheet) (*models.Record, error) {
	return ExtractRecord(models.KindExperimentSpecification, sheet)
}

// ExtractRecord extracts a record of the given kind from sheet.
func ExtractRecord(kind models.RecordKind, sheet Sheet) (*models.Record, error) {
	layout, ok := layouts[kind]
	if !ok {
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}

	id, err := cellText(sheet, layout.idRef)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}

	rec := &models.Record{
		Kind:  kind,
		Sheet: sheet.Name(),
		ID:    id,
	}
	if rec.Name, err = cellText(sheet, layout.nameRef); err != nil {
		return nil, err
	}
	if layout.parentRef != "" {
		if rec.Parent, err = cellText(sheet, layout.parentRef); err != nil {
			return nil, err
		}
	}

	rec.Sections, err = ExtractSections(sheet, layout.bodyRow, RootPath(kind.Depth()))
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func cellText(sheet Sheet, ref string) (string, error) {
	c, err := CellAt(sheet, ref)
	if err != nil {
		return "", err
	}
	return c.Text(), nil
}
