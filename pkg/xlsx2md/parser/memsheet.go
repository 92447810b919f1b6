package parser

import "github.com/xuri/excelize/v2"

// MemSheet is an in-memory Sheet. It is used to describe layouts directly
// in code, independent of any file format.
type MemSheet struct {
	name  string
	cells map[[2]int]Cell
}

// NewMemSheet creates an empty in-memory sheet.
func NewMemSheet(name string) *MemSheet {
	return &MemSheet{
		name:  name,
		cells: make(map[[2]int]Cell),
	}
}

// Name returns the sheet name.
func (m *MemSheet) Name() string {
	return m.name
}

// Cell returns the stored cell, or a blank cell.
func (m *MemSheet) Cell(row, col int) Cell {
	c, ok := m.cells[[2]int{row, col}]
	if !ok {
		return Cell{Sheet: m, Row: row, Col: col}
	}
	return c
}

// Set stores a plain value at an A1-style reference.
func (m *MemSheet) Set(ref, value string) *MemSheet {
	return m.put(ref, value, false, false)
}

// SetBold stores a bold value at an A1-style reference.
func (m *MemSheet) SetBold(ref, value string) *MemSheet {
	return m.put(ref, value, true, false)
}

// SetPlaceholder marks the cell at ref as a gray placeholder.
func (m *MemSheet) SetPlaceholder(ref string) *MemSheet {
	return m.put(ref, "", false, true)
}

func (m *MemSheet) put(ref, value string, bold, themed bool) *MemSheet {
	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		panic(err)
	}
	m.cells[[2]int{row, col}] = Cell{
		Sheet:      m,
		Row:        row,
		Col:        col,
		Value:      value,
		Bold:       bold,
		ThemedFill: themed,
	}
	return m
}

// MemWorkbook is an in-memory Workbook.
type MemWorkbook []Sheet

// Sheets returns the sheets in order.
func (w MemWorkbook) Sheets() []Sheet {
	return w
}
