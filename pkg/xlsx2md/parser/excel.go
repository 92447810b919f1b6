package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelWorkbook is a Workbook backed by an excelize file.
type ExcelWorkbook struct {
	file  *excelize.File
	fills *fillTable
	bold  map[int]bool
}

// OpenWorkbook opens an xlsx file for extraction.
func OpenWorkbook(path string) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	fills, err := readFillTable(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read styles: %w", err)
	}
	return &ExcelWorkbook{
		file:  f,
		fills: fills,
		bold:  make(map[int]bool),
	}, nil
}

// Close releases the underlying file.
func (wb *ExcelWorkbook) Close() error {
	return wb.file.Close()
}

// Sheets returns the worksheets in workbook order.
func (wb *ExcelWorkbook) Sheets() []Sheet {
	names := wb.file.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		sheets = append(sheets, &excelSheet{wb: wb, name: name})
	}
	return sheets
}

// isBold reports whether the cell format uses a bold font.
func (wb *ExcelWorkbook) isBold(styleID int) bool {
	if b, ok := wb.bold[styleID]; ok {
		return b
	}
	bold := false
	style, err := wb.file.GetStyle(styleID)
	if err == nil && style != nil && style.Font != nil {
		bold = style.Font.Bold
	}
	wb.bold[styleID] = bold
	return bold
}

type excelSheet struct {
	wb   *ExcelWorkbook
	name string
}

func (s *excelSheet) Name() string {
	return s.name
}

func (s *excelSheet) Cell(row, col int) Cell {
	c := Cell{Sheet: s, Row: row, Col: col}
	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return c
	}
	if v, err := s.wb.file.GetCellValue(s.name, cellName); err == nil {
		c.Value = v
	}
	if styleID, err := s.wb.file.GetCellStyle(s.name, cellName); err == nil {
		c.Bold = s.wb.isBold(styleID)
		c.ThemedFill = s.wb.fills.Themed(styleID)
	}
	return c
}
