package workbook

import (
	"fmt"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet of a Workbook.
type Sheet struct {
	wb   *Workbook
	name string
}

// Name returns the sheet title.
func (s *Sheet) Name() string {
	return s.name
}

// Workbook returns the workbook s belongs to.
func (s *Sheet) Workbook() *Workbook {
	return s.wb
}

// Cells selects the cell or range written as coordinates, e.g. "B2" or "A1:C3".
// Malformed coordinates, and ranges reaching past the last column or row
// of a sheet, are reported by the returned selection's Err.
func (s *Sheet) Cells(coordinates string) *Cells {
	c := &Cells{sheet: s, coordinates: coordinates}

	r, err := coord.ParseRange(coordinates)
	if err != nil {
		c.err = fmt.Errorf("sheet %q: %w", s.name, err)
		return c
	}

	corner := r.Normalize().Corner
	if corner.ColumnIndex() >= excelize.MaxColumns || corner.Row > excelize.TotalRows {
		c.err = fmt.Errorf("sheet %q: %w: %s", s.name, ErrOutOfRange, coordinates)
		return c
	}

	c.rng = r
	return c
}

// SetColumnWidths sets the width of each named column.
func (s *Sheet) SetColumnWidths(widths map[string]float64) error {
	for column, width := range widths {
		if _, err := coord.ColumnNumber(column); err != nil {
			return err
		}
		if err := s.wb.file.SetColWidth(s.name, column, column, width); err != nil {
			return fmt.Errorf("column %s width: %w", column, err)
		}
	}
	return nil
}

// SetSameColumnWidths gives every column from `from` to `to` the same width.
func (s *Sheet) SetSameColumnWidths(from, to string, width float64) error {
	columns, err := coord.ColumnSpan(from, to)
	if err != nil {
		return err
	}

	widths := make(map[string]float64, len(columns))
	for _, column := range columns {
		widths[column] = width
	}
	return s.SetColumnWidths(widths)
}

// SetRowHeight sets the height of the 1-based row.
func (s *Sheet) SetRowHeight(row int, height float64) error {
	if err := s.wb.file.SetRowHeight(s.name, row, height); err != nil {
		return fmt.Errorf("row %d height: %w", row, err)
	}
	return nil
}

// SetBackground fills A1 through the single cell toCell, extended by
// extraColumns and extraRows, with color.
func (s *Sheet) SetBackground(color, toCell string, extraColumns, extraRows int) error {
	to, err := coord.ParseAddress(toCell)
	if err != nil {
		return err
	}
	corner, err := to.Add(extraColumns, extraRows)
	if err != nil {
		return err
	}
	return s.Cells("A1:" + corner.String()).Background(color).Err()
}

// Rows returns the displayed value of every cell, row by row.
func (s *Sheet) Rows() ([][]string, error) {
	rows, err := s.wb.file.GetRows(s.name)
	if err != nil {
		return nil, fmt.Errorf("sheet %q rows: %w", s.name, err)
	}
	return rows, nil
}
