package coord

import (
	"iter"
	"math"
	"slices"
)

// IterMode selects which cells of a range Cells yields.
type IterMode int

const (
	// IterColumns yields every column of the first row.
	IterColumns IterMode = 1 << iota
	// IterRows yields the first column of every row.
	IterRows
	// IterAll yields every cell, row by row.
	IterAll = IterColumns | IterRows
)

// extent returns the column and row counts mode walks over.
func (r Range) extent(mode IterMode) (cols, rows int) {
	cols, rows = r.Columns(), r.Rows()
	if mode&IterColumns == 0 {
		cols = 1
	}
	if mode&IterRows == 0 {
		rows = 1
	}
	return cols, rows
}

// Count is the number of addresses All and Cells yield for mode.
// It saturates at math.MaxInt instead of overflowing.
func (r Range) Count(mode IterMode) int {
	cols, rows := r.extent(mode)
	if rows > 0 && cols > math.MaxInt/rows {
		return math.MaxInt
	}
	return cols * rows
}

// All walks the addresses of the normalized range according to mode
// without materializing them.
func (r Range) All(mode IterMode) iter.Seq[Address] {
	return func(yield func(Address) bool) {
		n := r.Normalize()
		startCol := n.Origin.ColumnIndex()
		cols, rows := n.extent(mode)

		for dr := range rows {
			for dc := range cols {
				if !yield(Address{Column: ColumnName(startCol + dc), Row: n.Origin.Row + dr}) {
					return
				}
			}
		}
	}
}

// Cells lists the addresses of the normalized range according to mode.
// Check Count first when the range comes from untrusted input.
func (r Range) Cells(mode IterMode) []Address {
	return slices.Collect(r.All(mode))
}
