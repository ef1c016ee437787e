// Package coord converts between Excel-style coordinate strings ("B2",
// "A1:C3") and their numeric form, and translates them by column/row deltas.
//
// Column numbers are zero-based (A=0, Z=25, AA=26); row numbers are
// one-based, as written. All functions are pure and safe for concurrent use.
package coord

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var addressPat = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// Address is a single cell reference such as "AB100".
type Address struct {
	Column string
	Row    int
}

// String formats the address as <Column><Row>.
func (a Address) String() string {
	return fmt.Sprintf("%s%d", a.Column, a.Row)
}

// ColumnIndex returns the zero-based column number of a. Addresses from
// ParseAddress always have one; a hand-built address with an invalid column
// yields -1.
func (a Address) ColumnIndex() int {
	n, err := ColumnNumber(a.Column)
	if err != nil {
		return -1
	}
	return n
}

// Add shifts a by dc columns and dr rows.
func (a Address) Add(dc, dr int) (Address, error) {
	col, err := ColumnNumber(a.Column)
	if err != nil {
		return Address{}, err
	}

	col += dc
	row := a.Row + dr
	if col < 0 || row < 1 {
		return Address{}, outOfBounds(fmt.Sprintf("%s by (%d, %d)", a, dc, dr))
	}

	return Address{Column: ColumnName(col), Row: row}, nil
}

// ParseAddress splits s into its column letters and row number.
// Leading zeros in the row are accepted and dropped; row 0 is rejected, as
// are columns too long to number.
func ParseAddress(s string) (Address, error) {
	m := addressPat.FindStringSubmatch(s)
	if m == nil {
		return Address{}, malformed(s)
	}

	if _, err := ColumnNumber(m[1]); err != nil {
		return Address{}, malformed(s)
	}

	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 {
		return Address{}, malformed(s)
	}

	return Address{Column: m[1], Row: row}, nil
}

// CellName converts 0-based row and column indices to a cell reference (0,0 → "A1").
func CellName(row, col int) string {
	return fmt.Sprintf("%s%d", ColumnName(col), row+1)
}

// ColumnName converts a 0-based column index to column letters (0→A, 25→Z, 26→AA).
// It returns "" for negative n.
func ColumnName(n int) string {
	result := ""
	for n >= 0 {
		result = string(rune('A'+(n%26))) + result
		n = n/26 - 1
	}
	return result
}

// ColumnNumber converts column letters to a 0-based column index (A→0, AA→26).
func ColumnNumber(name string) (int, error) {
	if name == "" {
		return 0, malformed(name)
	}

	n := 0
	for _, c := range name {
		if c < 'A' || c > 'Z' {
			return 0, malformed(name)
		}
		if n > (math.MaxInt-26)/26 {
			return 0, malformed(name)
		}
		n = n*26 + int(c-'A'+1)
	}

	return n - 1, nil
}

// Modify replaces the column and/or row of the address s.
// An empty column or a row below 1 keeps the existing part.
func Modify(s, column string, row int) (string, error) {
	a, err := ParseAddress(s)
	if err != nil {
		return "", err
	}

	if column != "" {
		if _, err := ColumnNumber(column); err != nil {
			return "", err
		}
		a.Column = column
	}
	if row >= 1 {
		a.Row = row
	}

	return a.String(), nil
}

// ColumnSpan lists every column name from `from` to `to`, both inclusive.
// The span is returned in ascending order regardless of argument order.
func ColumnSpan(from, to string) ([]string, error) {
	start, err := ColumnNumber(from)
	if err != nil {
		return nil, err
	}
	end, err := ColumnNumber(to)
	if err != nil {
		return nil, err
	}
	if start > end {
		start, end = end, start
	}

	names := make([]string, 0, end-start+1)
	for n := start; n <= end; n++ {
		names = append(names, ColumnName(n))
	}
	return names, nil
}
