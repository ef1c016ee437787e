package workbook

import (
	"errors"
	"testing"
	"time"

	"github.com/bxcodec/faker/v4"
	"github.com/orayew2002/xlfluent/coord"
	"github.com/xuri/excelize/v2"
)

func styleAt(t *testing.T, s *Sheet, cell string) *excelize.Style {
	t.Helper()

	id, err := s.wb.file.GetCellStyle(s.name, cell)
	if err != nil {
		t.Fatalf("GetCellStyle(%s): %v", cell, err)
	}
	style, err := s.wb.file.GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle(%d): %v", id, err)
	}
	return style
}

func TestWriteRead(t *testing.T) {
	sheet := newTestSheet(t)
	content := faker.Sentence()

	if err := sheet.Cells("B3").SetValue(content).Err(); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	got, err := sheet.Cells("B3").Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if got != content {
		t.Errorf("Value() = %q, want %q", got, content)
	}
}

func TestSetValueMergesRange(t *testing.T) {
	sheet := newTestSheet(t)

	if err := sheet.Cells("C3:B2").SetValue("title").Err(); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	merges, err := sheet.wb.file.GetMergeCells(sheet.name)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("merges = %d, want 1", len(merges))
	}
	if merges[0].GetStartAxis() != "B2" || merges[0].GetEndAxis() != "C3" {
		t.Errorf("merged %s:%s, want B2:C3", merges[0].GetStartAxis(), merges[0].GetEndAxis())
	}

	got, _ := sheet.Cells("B2").Value()
	if got != "title" {
		t.Errorf("B2 = %q, want title", got)
	}
}

func TestSetValueSingleCellDoesNotMerge(t *testing.T) {
	sheet := newTestSheet(t)

	if err := sheet.Cells("A1:A1").SetValue("x").Err(); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	merges, err := sheet.wb.file.GetMergeCells(sheet.name)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merges) != 0 {
		t.Errorf("merges = %d, want 0", len(merges))
	}
}

func TestSetValues(t *testing.T) {
	sheet := newTestSheet(t)
	words := []any{faker.Word(), faker.Word(), faker.Word()}

	if err := sheet.Cells("Y5").SetValues(words...).Err(); err != nil {
		t.Fatalf("SetValues: %v", err)
	}

	for i, cell := range []string{"Y5", "Z5", "AA5"} {
		got, err := sheet.Cells(cell).Value()
		if err != nil {
			t.Fatalf("Value(%s): %v", cell, err)
		}
		if got != words[i] {
			t.Errorf("%s = %q, want %q", cell, got, words[i])
		}
	}
}

func TestSetValueDate(t *testing.T) {
	sheet := newTestSheet(t)
	day := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)

	if err := sheet.Cells("A1").SetValue(day).Err(); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	style := styleAt(t, sheet, "A1")
	if style.CustomNumFmt == nil || *style.CustomNumFmt != FormatDate {
		t.Errorf("number format = %v, want %q", style.CustomNumFmt, FormatDate)
	}

	got, err := sheet.Cells("A1").Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if got != "18.10.2026" {
		t.Errorf("A1 = %q, want 18.10.2026", got)
	}
}

func TestMalformedCoordinates(t *testing.T) {
	sheet := newTestSheet(t)

	c := sheet.Cells("100AB").SetValue("x").Bold()
	if !errors.Is(c.Err(), coord.ErrMalformed) {
		t.Errorf("Err() = %v, want coord.ErrMalformed", c.Err())
	}
	if _, err := c.Value(); !errors.Is(err, coord.ErrMalformed) {
		t.Errorf("Value error = %v, want coord.ErrMalformed", err)
	}
	if c.Each(coord.IterAll) != nil {
		t.Error("Each on a failed selection returned cells")
	}
}

func TestStylesAccumulate(t *testing.T) {
	sheet := newTestSheet(t)

	err := sheet.Cells("B6").
		SetValue("Hello World!").
		Bold().
		Italic().
		Underlined().
		Strikethrough().
		Err()
	if err != nil {
		t.Fatalf("styling: %v", err)
	}

	font := styleAt(t, sheet, "B6").Font
	if font == nil {
		t.Fatal("no font on B6")
	}
	if !font.Bold || !font.Italic || font.Underline != "single" || !font.Strike {
		t.Errorf("font = %+v", font)
	}
	if font.Family != "Calibri" || font.Size != 10 {
		t.Errorf("default font not applied: %s %v", font.Family, font.Size)
	}

	plain := styleAt(t, sheet, "B7").Font
	if plain != nil && plain.Bold {
		t.Error("B7 became bold")
	}
}

func TestStyleRange(t *testing.T) {
	sheet := newTestSheet(t)

	err := sheet.Cells("B2:C3").
		Border("").
		Background("FFFF00").
		Centered().
		CenteredVertically().
		WrapText(true).
		AsCurrency().
		Err()
	if err != nil {
		t.Fatalf("styling: %v", err)
	}

	for _, cell := range []string{"B2", "C2", "B3", "C3"} {
		s := styleAt(t, sheet, cell)
		if len(s.Border) != 4 {
			t.Errorf("%s borders = %d, want 4", cell, len(s.Border))
		}
		if s.Fill.Pattern != 1 || len(s.Fill.Color) != 1 {
			t.Errorf("%s fill = %+v", cell, s.Fill)
		}
		if s.Alignment == nil || s.Alignment.Horizontal != "center" || s.Alignment.Vertical != "center" || !s.Alignment.WrapText {
			t.Errorf("%s alignment = %+v", cell, s.Alignment)
		}
		if s.CustomNumFmt == nil || *s.CustomNumFmt != FormatCurrency {
			t.Errorf("%s number format = %v", cell, s.CustomNumFmt)
		}
	}

	if s := styleAt(t, sheet, "D4"); len(s.Border) != 0 {
		t.Error("D4 outside the range got a border")
	}
}

func TestRowHeightAndColumnWidth(t *testing.T) {
	sheet := newTestSheet(t)

	if err := sheet.Cells("B2:D4").RowHeight(30).ColumnWidth(18).Err(); err != nil {
		t.Fatalf("dimensions: %v", err)
	}

	for row := 2; row <= 4; row++ {
		h, err := sheet.wb.file.GetRowHeight(sheet.name, row)
		if err != nil {
			t.Fatalf("GetRowHeight(%d): %v", row, err)
		}
		if h != 30 {
			t.Errorf("row %d height = %v, want 30", row, h)
		}
	}

	for _, col := range []string{"B", "C", "D"} {
		w, err := sheet.wb.file.GetColWidth(sheet.name, col)
		if err != nil {
			t.Fatalf("GetColWidth(%s): %v", col, err)
		}
		if w != 18 {
			t.Errorf("column %s width = %v, want 18", col, w)
		}
	}
}

func TestSetSameColumnWidths(t *testing.T) {
	sheet := newTestSheet(t)

	if err := sheet.SetSameColumnWidths("Y", "AB", 7); err != nil {
		t.Fatalf("SetSameColumnWidths: %v", err)
	}
	for _, col := range []string{"Y", "Z", "AA", "AB"} {
		w, err := sheet.wb.file.GetColWidth(sheet.name, col)
		if err != nil {
			t.Fatalf("GetColWidth(%s): %v", col, err)
		}
		if w != 7 {
			t.Errorf("column %s width = %v, want 7", col, w)
		}
	}

	if err := sheet.SetColumnWidths(map[string]float64{"a": 3}); !errors.Is(err, coord.ErrMalformed) {
		t.Errorf("lowercase column error = %v, want coord.ErrMalformed", err)
	}
}

func TestSetBackground(t *testing.T) {
	sheet := newTestSheet(t)

	if err := sheet.SetBackground("FFFFFF", "C3", 1, 2); err != nil {
		t.Fatalf("SetBackground: %v", err)
	}

	if s := styleAt(t, sheet, "D5"); s.Fill.Pattern != 1 {
		t.Errorf("D5 fill = %+v", s.Fill)
	}
	if s := styleAt(t, sheet, "E6"); s.Fill.Pattern == 1 {
		t.Error("E6 outside the background range was filled")
	}

	if err := sheet.SetBackground("FFFFFF", "A1", -1, 0); !errors.Is(err, coord.ErrOutOfBounds) {
		t.Errorf("SetBackground out of bounds error = %v", err)
	}
	if err := sheet.SetBackground("FFFFFF", "B2:C3", 1, 1); !errors.Is(err, coord.ErrMalformed) {
		t.Errorf("SetBackground with a range error = %v, want ErrMalformed", err)
	}
}

func TestEach(t *testing.T) {
	sheet := newTestSheet(t)
	c := sheet.Cells("B2:C3")

	tests := []struct {
		mode coord.IterMode
		want []string
	}{
		{coord.IterAll, []string{"B2", "C2", "B3", "C3"}},
		{coord.IterRows, []string{"B2", "B3"}},
		{coord.IterColumns, []string{"B2", "C2"}},
	}

	for _, tt := range tests {
		cells := c.Each(tt.mode)
		if len(cells) != len(tt.want) {
			t.Fatalf("Each(%d) = %d cells, want %d", tt.mode, len(cells), len(tt.want))
		}
		for i, cell := range cells {
			if cell.Coordinates() != tt.want[i] {
				t.Errorf("Each(%d)[%d] = %s, want %s", tt.mode, i, cell.Coordinates(), tt.want[i])
			}
		}
	}
}

func TestSelectionLimits(t *testing.T) {
	sheet := newTestSheet(t)

	tests := []struct {
		coordinates string
		want        error
	}{
		{"A1:A99999999", ErrOutOfRange},
		{"XFE1", ErrOutOfRange},
		{"A1:XFD1048576", ErrSelectionTooLarge},
		{"A1:B524289", ErrSelectionTooLarge},
	}

	for _, tt := range tests {
		err := sheet.Cells(tt.coordinates).Bold().Err()
		if !errors.Is(err, tt.want) {
			t.Errorf("Cells(%q).Bold() error = %v, want %v", tt.coordinates, err, tt.want)
		}
	}

	whole := sheet.Cells("A1:XFD1048576")
	if cells := whole.Each(coord.IterAll); cells != nil {
		t.Errorf("Each on the whole sheet returned %d cells", len(cells))
	}
	if !errors.Is(whole.Err(), ErrSelectionTooLarge) {
		t.Errorf("Each error = %v, want ErrSelectionTooLarge", whole.Err())
	}

	if err := sheet.Cells("A1:XFD1").Bold().Err(); err != nil {
		t.Errorf("styling a full row: %v", err)
	}
	if err := sheet.Cells("XFD1048576").SetValue("last").Err(); err != nil {
		t.Errorf("writing the last cell: %v", err)
	}
}

func TestStyleKeepsMixedBases(t *testing.T) {
	sheet := newTestSheet(t)

	if err := sheet.Cells("B1").Bold().Err(); err != nil {
		t.Fatalf("Bold: %v", err)
	}
	if err := sheet.Cells("A1:D1").Italic().Err(); err != nil {
		t.Fatalf("Italic: %v", err)
	}

	for _, cell := range []string{"A1", "B1", "C1", "D1"} {
		s := styleAt(t, sheet, cell)
		if s.Font == nil || !s.Font.Italic {
			t.Errorf("%s is not italic", cell)
		}
		bold := s.Font != nil && s.Font.Bold
		if bold != (cell == "B1") {
			t.Errorf("%s bold = %v", cell, bold)
		}
	}

	a, _ := sheet.wb.file.GetCellStyle(sheet.name, "A1")
	d, _ := sheet.wb.file.GetCellStyle(sheet.name, "D1")
	if a != d {
		t.Errorf("A1 and D1 share a base but got styles %d and %d", a, d)
	}
}
