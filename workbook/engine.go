// Package workbook is a fluent layer over excelize: workbooks hold sheets,
// sheets hand out Cells selections addressed with coordinate strings such as
// "B2" or "A1:C3", and a workbook renders to XLSX, PDF or an HTTP download.
package workbook

import (
	"fmt"
	"io"

	"github.com/orayew2002/xlfluent/config"
	"github.com/xuri/excelize/v2"
)

// PDFRenderer draws the named sheets of a prepared excelize file as PDF.
type PDFRenderer interface {
	RenderPDF(w io.Writer, f *excelize.File, sheets []string, page PageSetup) error
}

// Engine creates workbooks with a fixed configuration. Build one at startup
// and share it; it is safe for concurrent use.
type Engine struct {
	cfg  config.Workbook
	page PageSetup
	pdf  PDFRenderer
}

// Option customizes an Engine.
type Option func(*Engine)

// WithPDFRenderer enables PDF export through r.
func WithPDFRenderer(r PDFRenderer) Option {
	return func(e *Engine) { e.pdf = r }
}

// NewEngine builds an engine from the workbook and pdf configuration sections.
func NewEngine(cfg config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg.Workbook,
		page: PageSetup{
			PaperSize:   cfg.PDF.PaperSize,
			Orientation: cfg.PDF.Orientation,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PDFAvailable reports whether workbooks from e can be rendered as PDF.
func (e *Engine) PDFAvailable() bool {
	return e.pdf != nil
}

// PageSetup returns the configured default page setup.
func (e *Engine) PageSetup() PageSetup {
	return e.page
}

func (e *Engine) options() excelize.Options {
	return excelize.Options{
		UnzipXMLSizeLimit: e.cfg.UnzipXMLSizeLimit,
		TmpDir:            e.cfg.TmpDir,
	}
}

// NewWorkbook creates an empty workbook. It has no sheets until CreateSheet
// is called.
func (e *Engine) NewWorkbook() (*Workbook, error) {
	f := excelize.NewFile(e.options())
	wb := newWorkbook(e, f)
	wb.placeholder = f.GetSheetName(0)

	if e.cfg.ApplyDefaultStyle {
		font := e.cfg.DefaultFont
		if err := wb.ApplyDefaultFont(font.Name, font.Size); err != nil {
			f.Close()
			return nil, err
		}
	}

	return wb, nil
}

// OpenWorkbook reads an existing XLSX document.
func (e *Engine) OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r, e.options())
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return newWorkbook(e, f), nil
}
