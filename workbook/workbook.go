package workbook

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"slices"

	"github.com/orayew2002/xlfluent/response"
	"github.com/xuri/excelize/v2"
)

// Default download names used when BuildResponse gets an empty filename.
const (
	DefaultXLSXName = "Export.xlsx"
	DefaultPDFName  = "Export.pdf"
)

// PageSetup controls paper size and orientation of PDF output.
// Empty fields fall back to the engine's configured defaults.
type PageSetup struct {
	PaperSize   string // A3, A4, A5, Letter or Legal
	Orientation string // portrait or landscape
}

var paperSizes = map[string]int{
	"Letter": 1,
	"Legal":  5,
	"A3":     8,
	"A4":     9,
	"A5":     11,
}

// Workbook is a spreadsheet document made of named sheets.
type Workbook struct {
	engine *Engine
	file   *excelize.File
	styles *StyleManager

	// placeholder is the sheet excelize creates with every new file. It is
	// hidden from callers and renamed by the first CreateSheet.
	placeholder string
}

func newWorkbook(e *Engine, f *excelize.File) *Workbook {
	return &Workbook{engine: e, file: f, styles: NewStyleManager(f)}
}

// File exposes the underlying excelize file.
func (wb *Workbook) File() *excelize.File {
	return wb.file
}

// ApplyDefaultFont sets the workbook font family and the size used for
// styled cells.
func (wb *Workbook) ApplyDefaultFont(family string, size float64) error {
	if err := wb.file.SetDefaultFont(family); err != nil {
		return fmt.Errorf("set default font: %w", err)
	}
	wb.styles.SetDefaultFont(family, size)
	return nil
}

// Sheets lists the sheet titles in workbook order.
func (wb *Workbook) Sheets() []string {
	var titles []string
	for _, name := range wb.file.GetSheetList() {
		if name != wb.placeholder {
			titles = append(titles, name)
		}
	}
	return titles
}

// Sheet returns the sheet titled title.
func (wb *Workbook) Sheet(title string) (*Sheet, error) {
	if !slices.Contains(wb.Sheets(), title) {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, title)
	}
	return &Sheet{wb: wb, name: title}, nil
}

// CreateSheet appends a new sheet titled title.
func (wb *Workbook) CreateSheet(title string) (*Sheet, error) {
	if slices.Contains(wb.Sheets(), title) {
		return nil, fmt.Errorf("%w: %q", ErrSheetExists, title)
	}

	if wb.placeholder != "" {
		if err := wb.file.SetSheetName(wb.placeholder, title); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", title, err)
		}
		wb.placeholder = ""
		return &Sheet{wb: wb, name: title}, nil
	}

	if _, err := wb.file.NewSheet(title); err != nil {
		return nil, fmt.Errorf("create sheet %q: %w", title, err)
	}
	return &Sheet{wb: wb, name: title}, nil
}

// WriteTo writes the workbook as XLSX to w.
func (wb *Workbook) WriteTo(w io.Writer) (int64, error) {
	n, err := wb.file.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write workbook: %w", err)
	}
	return n, nil
}

// Bytes renders the workbook as XLSX.
func (wb *Workbook) Bytes() ([]byte, error) {
	buf, err := wb.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteToTempFile renders the workbook as XLSX into a temporary file.
func (wb *Workbook) WriteToTempFile() (*response.TempFile, error) {
	return response.NewTempFile(wb.engine.cfg.TmpDir, "workbook-*.xlsx", func(w io.Writer) error {
		_, err := wb.WriteTo(w)
		return err
	})
}

// BuildResponse sends the workbook as an XLSX download.
func (wb *Workbook) BuildResponse(w http.ResponseWriter, filename string) error {
	if filename == "" {
		filename = DefaultXLSXName
	}

	tf, err := wb.WriteToTempFile()
	if err != nil {
		return fmt.Errorf("build response: %w", err)
	}
	return tf.BuildResponse(w, filename, response.MIMEXLSX)
}

// WritePDF renders every sheet as PDF to w. The page setup is applied to a
// copy, the workbook itself is left unchanged. An unknown paper size or
// orientation fails with ErrInvalidPageSetup.
func (wb *Workbook) WritePDF(w io.Writer, page PageSetup) error {
	if wb.engine.pdf == nil {
		return ErrPDFUnavailable
	}

	page = wb.resolvePage(page)
	size, ok := paperSizes[page.PaperSize]
	if !ok {
		return fmt.Errorf("%w: paper size %q", ErrInvalidPageSetup, page.PaperSize)
	}
	if page.Orientation != "portrait" && page.Orientation != "landscape" {
		return fmt.Errorf("%w: orientation %q", ErrInvalidPageSetup, page.Orientation)
	}

	sheets := wb.Sheets()

	data, err := wb.Bytes()
	if err != nil {
		return err
	}

	cp, err := excelize.OpenReader(bytes.NewReader(data), wb.engine.options())
	if err != nil {
		return fmt.Errorf("copy workbook: %w", err)
	}
	defer cp.Close()

	for _, sheet := range sheets {
		if err := cp.SetPageLayout(sheet, &excelize.PageLayoutOptions{
			Size:        &size,
			Orientation: &page.Orientation,
		}); err != nil {
			return fmt.Errorf("page layout %q: %w", sheet, err)
		}
	}

	if err := wb.engine.pdf.RenderPDF(w, cp, sheets, page); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// WritePDFToTempFile renders the workbook as PDF into a temporary file.
func (wb *Workbook) WritePDFToTempFile(page PageSetup) (*response.TempFile, error) {
	return response.NewTempFile(wb.engine.cfg.TmpDir, "workbook-*.pdf", func(w io.Writer) error {
		return wb.WritePDF(w, page)
	})
}

// BuildPDFResponse sends the workbook as a PDF download.
func (wb *Workbook) BuildPDFResponse(w http.ResponseWriter, filename string, page PageSetup) error {
	if filename == "" {
		filename = DefaultPDFName
	}

	tf, err := wb.WritePDFToTempFile(page)
	if err != nil {
		return fmt.Errorf("build pdf response: %w", err)
	}
	return tf.BuildResponse(w, filename, response.MIMEPDF)
}

// Close releases the temporary files held by the engine.
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

func (wb *Workbook) resolvePage(page PageSetup) PageSetup {
	def := wb.engine.page
	if page.PaperSize == "" {
		page.PaperSize = def.PaperSize
	}
	if page.Orientation == "" {
		page.Orientation = def.Orientation
	}
	if page.PaperSize == "" {
		page.PaperSize = "A4"
	}
	if page.Orientation == "" {
		page.Orientation = "portrait"
	}
	return page
}
