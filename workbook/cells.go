package workbook

import (
	"fmt"
	"time"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/xuri/excelize/v2"
)

// Number format codes used by the As* helpers.
const (
	FormatDate        = "dd.mm.yyyy"
	FormatMonthOfYear = "mmmm yyyy"
	FormatFloat       = "#,##0.00"
	FormatCurrency    = "#,##0.00 €"
)

// MaxSelectionCells bounds the selections Each and the style modifiers walk
// cell by cell.
const MaxSelectionCells = 1 << 20

// Style is a set of changes applied on top of a cell's current style.
// Zero fields leave the existing setting untouched.
type Style struct {
	FontFamily string
	FontSize   float64
	FontColor  string
	Bold       bool
	Italic     bool
	Underline  bool
	Strike     bool

	Background  string // fill color, e.g. "FFFF00"
	BorderColor string // draws a thin border around each cell

	Horizontal   string
	Vertical     string
	WrapText     bool
	TextRotation int

	NumberFormat string
}

func (st Style) apply(s *excelize.Style) {
	if st.FontFamily != "" || st.FontSize > 0 || st.FontColor != "" || st.Bold || st.Italic || st.Underline || st.Strike {
		f := fontOf(s)
		if st.FontFamily != "" {
			f.Family = st.FontFamily
		}
		if st.FontSize > 0 {
			f.Size = st.FontSize
		}
		if st.FontColor != "" {
			f.Color = st.FontColor
		}
		f.Bold = f.Bold || st.Bold
		f.Italic = f.Italic || st.Italic
		if st.Underline {
			f.Underline = "single"
		}
		f.Strike = f.Strike || st.Strike
	}

	if st.Background != "" {
		s.Fill = solidFill(st.Background)
	}
	if st.BorderColor != "" {
		s.Border = allBorders(st.BorderColor, 1)
	}

	if st.Horizontal != "" || st.Vertical != "" || st.WrapText || st.TextRotation != 0 {
		a := alignmentOf(s)
		if st.Horizontal != "" {
			a.Horizontal = st.Horizontal
		}
		if st.Vertical != "" {
			a.Vertical = st.Vertical
		}
		a.WrapText = a.WrapText || st.WrapText
		if st.TextRotation != 0 {
			a.TextRotation = st.TextRotation
		}
	}

	if st.NumberFormat != "" {
		code := st.NumberFormat
		s.CustomNumFmt = &code
	}
}

// Cells is a selection of one cell or a rectangular range on a sheet.
//
// Methods return the receiver so calls can be chained. The first failure is
// kept and reported by Err; every later call on the selection is a no-op.
type Cells struct {
	sheet       *Sheet
	coordinates string
	rng         coord.Range
	err         error
}

// Sheet returns the sheet the selection belongs to.
func (c *Cells) Sheet() *Sheet {
	return c.sheet
}

// Coordinates returns the selection as it was written.
func (c *Cells) Coordinates() string {
	return c.coordinates
}

// Range returns the parsed selection.
func (c *Cells) Range() coord.Range {
	return c.rng
}

// Err returns the first error met by the selection.
func (c *Cells) Err() error {
	return c.err
}

func (c *Cells) fail(op string, err error) *Cells {
	if err != nil && c.err == nil {
		c.err = fmt.Errorf("%s %s!%s: %w", op, c.sheet.name, c.coordinates, err)
	}
	return c
}

// SetValue writes v into the selection. A selection spanning several cells
// is merged first and v lands in its top-left cell. A time.Time is stored as
// a date and formatted with FormatDate.
func (c *Cells) SetValue(v any) *Cells {
	if c.err != nil {
		return c
	}

	f := c.sheet.wb.file
	target := c.rng.Origin

	if c.rng.Multi() {
		n := c.rng.Normalize()
		if err := f.MergeCell(c.sheet.name, n.Origin.String(), n.Corner.String()); err != nil {
			return c.fail("merge", err)
		}
		target = n.Origin
	}

	if err := f.SetCellValue(c.sheet.name, target.String(), v); err != nil {
		return c.fail("set value", err)
	}

	if _, ok := v.(time.Time); ok {
		c.FormatAsDate(FormatDate)
	}

	return c
}

// SetValues writes values into consecutive cells of the origin's row,
// starting at the origin.
func (c *Cells) SetValues(values ...any) *Cells {
	if c.err != nil {
		return c
	}

	cursor := c.rng.Origin
	for i, v := range values {
		if i > 0 {
			next, err := cursor.Add(1, 0)
			if err != nil {
				return c.fail("set values", err)
			}
			cursor = next
		}

		if err := c.sheet.Cells(cursor.String()).SetValue(v).Err(); err != nil {
			return c.fail("set values", err)
		}
	}

	return c
}

// Value returns the displayed value of the selection's origin.
func (c *Cells) Value() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	v, err := c.sheet.wb.file.GetCellValue(c.sheet.name, c.rng.Origin.String())
	if err != nil {
		return "", fmt.Errorf("get value %s!%s: %w", c.sheet.name, c.coordinates, err)
	}
	return v, nil
}

// Each splits the selection into single-cell selections; see coord.IterMode.
func (c *Cells) Each(mode coord.IterMode) []*Cells {
	if c.err != nil || c.checkSize("each", mode) != nil {
		return nil
	}

	cells := make([]*Cells, 0, c.rng.Count(mode))
	for a := range c.rng.All(mode) {
		cells = append(cells, c.sheet.Cells(a.String()))
	}
	return cells
}

func (c *Cells) checkSize(op string, mode coord.IterMode) error {
	if n := c.rng.Count(mode); n > MaxSelectionCells {
		c.fail(op, fmt.Errorf("%w: %d cells", ErrSelectionTooLarge, n))
	}
	return c.err
}

// modify re-styles every cell of the selection, keeping what each cell
// already has and applying change on top. Neighbours in a row that share a
// base style are restyled with one call.
func (c *Cells) modify(change string, apply func(*excelize.Style)) *Cells {
	if c.err != nil || c.checkSize("style", coord.IterAll) != nil {
		return c
	}

	f := c.sheet.wb.file

	var (
		first, last coord.Address
		runBase     = -1
	)
	flush := func() error {
		if runBase < 0 {
			return nil
		}
		id, err := c.sheet.wb.styles.Derive(runBase, change, apply)
		if err != nil {
			return err
		}
		return f.SetCellStyle(c.sheet.name, first.String(), last.String(), id)
	}

	for a := range c.rng.All(coord.IterAll) {
		base, err := f.GetCellStyle(c.sheet.name, a.String())
		if err != nil {
			return c.fail("style", err)
		}

		if runBase == base && a.Row == last.Row {
			last = a
			continue
		}
		if err := flush(); err != nil {
			return c.fail("style", err)
		}
		first, last, runBase = a, a, base
	}

	return c.fail("style", flush())
}

// ApplyStyle merges st into the style of every cell.
func (c *Cells) ApplyStyle(st Style) *Cells {
	return c.modify(fmt.Sprintf("style:%+v", st), st.apply)
}

// FormatAsDate sets a date number format, e.g. "dd.mm.yyyy".
func (c *Cells) FormatAsDate(format string) *Cells {
	return c.ApplyStyle(Style{NumberFormat: format})
}

// Centered centers the content horizontally.
func (c *Cells) Centered() *Cells {
	return c.ApplyStyle(Style{Horizontal: "center"})
}

// CenteredVertically centers the content vertically.
func (c *Cells) CenteredVertically() *Cells {
	return c.ApplyStyle(Style{Vertical: "center"})
}

// Background fills the cells with a solid color.
func (c *Cells) Background(color string) *Cells {
	return c.ApplyStyle(Style{Background: color})
}

func (c *Cells) Bold() *Cells          { return c.ApplyStyle(Style{Bold: true}) }
func (c *Cells) Italic() *Cells        { return c.ApplyStyle(Style{Italic: true}) }
func (c *Cells) Underlined() *Cells    { return c.ApplyStyle(Style{Underline: true}) }
func (c *Cells) Strikethrough() *Cells { return c.ApplyStyle(Style{Strike: true}) }

// Border draws a thin border of the given color around every cell.
func (c *Cells) Border(color string) *Cells {
	if color == "" {
		color = "000000"
	}
	return c.ApplyStyle(Style{BorderColor: color})
}

func (c *Cells) AsFloat() *Cells       { return c.ApplyStyle(Style{NumberFormat: FormatFloat}) }
func (c *Cells) AsDate() *Cells        { return c.ApplyStyle(Style{NumberFormat: FormatDate}) }
func (c *Cells) AsMonthOfYear() *Cells { return c.ApplyStyle(Style{NumberFormat: FormatMonthOfYear}) }
func (c *Cells) AsCurrency() *Cells    { return c.ApplyStyle(Style{NumberFormat: FormatCurrency}) }

// WrapText turns text wrapping on or off.
func (c *Cells) WrapText(wrap bool) *Cells {
	return c.modify(fmt.Sprintf("wrap:%t", wrap), func(s *excelize.Style) {
		alignmentOf(s).WrapText = wrap
	})
}

// TextRotation rotates the text by the given number of degrees.
func (c *Cells) TextRotation(degrees int) *Cells {
	return c.modify(fmt.Sprintf("rotation:%d", degrees), func(s *excelize.Style) {
		alignmentOf(s).TextRotation = degrees
	})
}

// RowHeight sets the height of every row the selection covers.
func (c *Cells) RowHeight(height float64) *Cells {
	if c.err != nil {
		return c
	}

	for a := range c.rng.All(coord.IterRows) {
		if err := c.sheet.SetRowHeight(a.Row, height); err != nil {
			return c.fail("row height", err)
		}
	}
	return c
}

// ColumnWidth sets the width of every column the selection covers.
func (c *Cells) ColumnWidth(width float64) *Cells {
	if c.err != nil {
		return c
	}

	widths := make(map[string]float64, c.rng.Count(coord.IterColumns))
	for a := range c.rng.All(coord.IterColumns) {
		widths[a.Column] = width
	}
	return c.fail("column width", c.sheet.SetColumnWidths(widths))
}
