// Package pdf renders workbook sheets as plain PDF tables.
//
// Each sheet starts on a new page with its title, followed by a bordered
// grid of the displayed cell values. Column widths follow the sheet's
// column widths, scaled down to fit the page. Merged cells, images and
// charts are not drawn.
package pdf

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/orayew2002/xlfluent/coord"
	"github.com/orayew2002/xlfluent/workbook"
	"github.com/xuri/excelize/v2"
)

const (
	margin     = 10.0 // mm
	rowHeight  = 6.0
	titleSize  = 12.0
	cellSize   = 8.0
	minColumn  = 4.0
	fontFamily = "Helvetica"
)

// Renderer implements workbook.PDFRenderer.
type Renderer struct {
	// Title is written into the document metadata when set.
	Title string
}

// New returns a Renderer.
func New() *Renderer {
	return &Renderer{}
}

var _ workbook.PDFRenderer = (*Renderer)(nil)

// RenderPDF draws the given sheets of f to w, in order.
func (r *Renderer) RenderPDF(w io.Writer, f *excelize.File, sheets []string, page workbook.PageSetup) error {
	orientation := "P"
	if page.Orientation == "landscape" {
		orientation = "L"
	}

	doc := fpdf.New(orientation, "mm", page.PaperSize, "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(false, margin)
	if r.Title != "" {
		doc.SetTitle(r.Title, true)
	}

	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, sheet := range sheets {
		if err := r.renderSheet(doc, tr, f, sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

func (r *Renderer) renderSheet(doc *fpdf.Fpdf, tr func(string) string, f *excelize.File, sheet string) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("get rows: %w", err)
	}

	doc.AddPage()
	doc.SetFont(fontFamily, "B", titleSize)
	doc.CellFormat(0, rowHeight+2, tr(sheet), "", 1, "L", false, 0, "")

	widths, err := columnWidths(doc, f, sheet, rows)
	if err != nil {
		return err
	}

	_, pageHeight := doc.GetPageSize()
	bold := newBoldLookup(f, sheet)

	for row, values := range rows {
		if doc.GetY()+rowHeight > pageHeight-margin {
			doc.AddPage()
		}

		for col, w := range widths {
			value := ""
			if col < len(values) {
				value = values[col]
			}

			style := ""
			if value != "" && bold.at(coord.CellName(row, col)) {
				style = "B"
			}
			doc.SetFont(fontFamily, style, cellSize)

			doc.CellFormat(w, rowHeight, fit(doc, tr(value), w), "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	return doc.Error()
}

// columnWidths converts the sheet's column widths (in characters) to
// millimetres, scaled so the grid fits between the margins.
func columnWidths(doc *fpdf.Fpdf, f *excelize.File, sheet string, rows [][]string) ([]float64, error) {
	cols := 0
	for _, values := range rows {
		cols = max(cols, len(values))
	}

	widths := make([]float64, cols)
	total := 0.0
	for i := range widths {
		w, err := f.GetColWidth(sheet, coord.ColumnName(i))
		if err != nil {
			return nil, fmt.Errorf("column %s width: %w", coord.ColumnName(i), err)
		}
		widths[i] = max(w*2, minColumn)
		total += widths[i]
	}

	pageWidth, _ := doc.GetPageSize()
	usable := pageWidth - 2*margin
	if total > usable {
		scale := usable / total
		for i := range widths {
			widths[i] *= scale
		}
	}

	return widths, nil
}

// fit shortens s until it fits into a cell of width w.
func fit(doc *fpdf.Fpdf, s string, w float64) string {
	const pad = 2.0
	for s != "" && doc.GetStringWidth(s) > w-pad {
		s = s[:len(s)-1]
	}
	return s
}

// boldLookup reports whether a cell's font is bold, caching by style ID.
type boldLookup struct {
	file  *excelize.File
	sheet string
	cache map[int]bool
}

func newBoldLookup(f *excelize.File, sheet string) *boldLookup {
	return &boldLookup{file: f, sheet: sheet, cache: make(map[int]bool)}
}

func (b *boldLookup) at(cell string) bool {
	id, err := b.file.GetCellStyle(b.sheet, cell)
	if err != nil || id == 0 {
		return false
	}
	if bold, ok := b.cache[id]; ok {
		return bold
	}

	bold := false
	if style, err := b.file.GetStyle(id); err == nil && style.Font != nil {
		bold = style.Font.Bold
	}
	b.cache[id] = bold
	return bold
}
