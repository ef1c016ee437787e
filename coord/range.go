package coord

import "regexp"

var rangePat = regexp.MustCompile(`^([A-Z]+[0-9]+):([A-Z]+[0-9]+)$`)

// Range is either a single address or an origin:corner pair, kept in the
// order it was written. Descending pairs such as "C3:A1" are valid.
type Range struct {
	Origin Address
	Corner Address
	Pair   bool
}

// Single returns a range made of the address a alone.
func Single(a Address) Range {
	return Range{Origin: a, Corner: a}
}

// Span returns the pair range origin:corner.
func Span(origin, corner Address) Range {
	return Range{Origin: origin, Corner: corner, Pair: true}
}

// ParseRange parses "B2" or "A1:C3". Anything else is malformed.
func ParseRange(s string) (Range, error) {
	if m := rangePat.FindStringSubmatch(s); m != nil {
		origin, err := ParseAddress(m[1])
		if err != nil {
			return Range{}, malformed(s)
		}
		corner, err := ParseAddress(m[2])
		if err != nil {
			return Range{}, malformed(s)
		}
		return Span(origin, corner), nil
	}

	a, err := ParseAddress(s)
	if err != nil {
		return Range{}, malformed(s)
	}
	return Single(a), nil
}

// String formats the range as "B2" or "B2:C3".
func (r Range) String() string {
	if !r.Pair {
		return r.Origin.String()
	}
	return r.Origin.String() + ":" + r.Corner.String()
}

// Width is the signed column delta corner - origin; 0 for a single address.
func (r Range) Width() int {
	if !r.Pair {
		return 0
	}
	return r.Corner.ColumnIndex() - r.Origin.ColumnIndex()
}

// Height is the signed row delta corner - origin; 0 for a single address.
func (r Range) Height() int {
	if !r.Pair {
		return 0
	}
	return r.Corner.Row - r.Origin.Row
}

// Columns is the number of columns the range covers.
func (r Range) Columns() int {
	return abs(r.Width()) + 1
}

// Rows is the number of rows the range covers.
func (r Range) Rows() int {
	return abs(r.Height()) + 1
}

// Multi reports whether the range covers more than one cell.
func (r Range) Multi() bool {
	return r.Columns() > 1 || r.Rows() > 1
}

// Normalize returns the range rewritten as top-left:bottom-right.
// A single address is returned unchanged.
func (r Range) Normalize() Range {
	if !r.Pair {
		return r
	}

	left, right := r.Origin.Column, r.Corner.Column
	if r.Width() < 0 {
		left, right = right, left
	}
	top, bottom := r.Origin.Row, r.Corner.Row
	if top > bottom {
		top, bottom = bottom, top
	}

	return Span(Address{Column: left, Row: top}, Address{Column: right, Row: bottom})
}

// Translate shifts both endpoints by dc columns and dr rows.
func (r Range) Translate(dc, dr int) (Range, error) {
	origin, err := r.Origin.Add(dc, dr)
	if err != nil {
		return Range{}, err
	}
	if !r.Pair {
		return Single(origin), nil
	}

	corner, err := r.Corner.Add(dc, dr)
	if err != nil {
		return Range{}, err
	}
	return Span(origin, corner), nil
}

// Origin returns the address written first in s.
func Origin(s string) (Address, error) {
	r, err := ParseRange(s)
	if err != nil {
		return Address{}, err
	}
	return r.Origin, nil
}

// RangeWidth returns the signed column delta of s (0 for a single address).
func RangeWidth(s string) (int, error) {
	r, err := ParseRange(s)
	if err != nil {
		return 0, err
	}
	return r.Width(), nil
}

// RangeHeight returns the signed row delta of s (0 for a single address).
func RangeHeight(s string) (int, error) {
	r, err := ParseRange(s)
	if err != nil {
		return 0, err
	}
	return r.Height(), nil
}

// Translate shifts the address or both ends of the range s by dc columns
// and dr rows and returns it in the same form.
func Translate(s string, dc, dr int) (string, error) {
	r, err := ParseRange(s)
	if err != nil {
		return "", err
	}

	moved, err := r.Translate(dc, dr)
	if err != nil {
		return "", err
	}
	return moved.String(), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
