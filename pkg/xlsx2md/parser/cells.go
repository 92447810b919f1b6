// Package parser provides layout-driven extraction of test documentation
// from spreadsheet sheets.
package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxScanRows caps every row scan; template sheets never grow past it.
const MaxScanRows = 1000

// Sheet is the read-only view of a worksheet that extraction works on.
type Sheet interface {
	// Name returns the sheet name.
	Name() string
	// Cell returns the cell at the 1-based row and column.
	// Cells outside the used range are blank.
	Cell(row, col int) Cell
}

// Workbook is an ordered collection of sheets.
type Workbook interface {
	Sheets() []Sheet
}

// Cell is a single cell with the formatting cues the layout relies on.
type Cell struct {
	// Sheet is the owning sheet, used for navigation.
	Sheet Sheet
	// Row is the 1-based row index.
	Row int
	// Col is the 1-based column index.
	Col int
	// Value is the displayed cell text ("" for blank cells).
	Value string
	// Bold reports whether the cell font is bold.
	Bold bool
	// ThemedFill reports whether the fill foreground is a theme colour.
	ThemedFill bool
}

// Right returns the cell one column to the right.
func (c Cell) Right() Cell {
	return c.Sheet.Cell(c.Row, c.Col+1)
}

// Below returns the cell one row below.
func (c Cell) Below() Cell {
	return c.Sheet.Cell(c.Row+1, c.Col)
}

// IsPlaceholder reports whether the cell is a gray placeholder slot,
// meaning "value intentionally absent here".
func (c Cell) IsPlaceholder() bool {
	return c.ThemedFill
}

// Text returns the trimmed cell value.
func (c Cell) Text() string {
	return strings.TrimSpace(c.Value)
}

// IsBlank reports whether the cell holds no text.
func (c Cell) IsBlank() bool {
	return c.Text() == ""
}

// Is reports whether the trimmed value equals label, ignoring case.
func (c Cell) Is(label string) bool {
	return strings.EqualFold(c.Text(), label)
}

// Ref returns the A1-style reference of the cell.
func (c Cell) Ref() string {
	name, err := excelize.CoordinatesToCellName(c.Col, c.Row)
	if err != nil {
		return ""
	}
	return name
}

// CellAt returns the cell at an A1-style reference such as "C2".
func CellAt(s Sheet, ref string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return Cell{}, err
	}
	return s.Cell(row, col), nil
}

// Column indices used by the layout.
const (
	colA = 1
	colB = 2
)
