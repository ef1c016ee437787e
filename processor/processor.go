package processor

import (
	"bytes"
	"fmt"
	"os"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/orayew2002/xlfluent/template"
	"github.com/orayew2002/xlfluent/workbook"
)

// Processor applies registered template handlers to workbooks.
type Processor struct {
	engine   *workbook.Engine
	registry *template.Registry
}

// New creates a Processor with the given engine and template registry.
func New(engine *workbook.Engine, registry *template.Registry) *Processor {
	return &Processor{engine: engine, registry: registry}
}

// ProcessFile opens the input file, processes all sheets and saves the
// result to output.
func (p *Processor) ProcessFile(input, output string) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}

	out, err := p.ProcessBytes(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	return nil
}

// ProcessBytes reads a workbook from raw bytes, processes all sheets and
// returns the resulting file as bytes.
func (p *Processor) ProcessBytes(data []byte) ([]byte, error) {
	wb, err := p.engine.OpenWorkbook(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	if err := p.Process(wb); err != nil {
		return nil, err
	}

	return wb.Bytes()
}

// Process runs the registry over every non-empty cell of every sheet.
func (p *Processor) Process(wb *workbook.Workbook) error {
	for _, title := range wb.Sheets() {
		sheet, err := wb.Sheet(title)
		if err != nil {
			return err
		}
		if err := p.processSheet(sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", title, err)
		}
	}

	return nil
}

func (p *Processor) processSheet(s *workbook.Sheet) error {
	rows, err := s.Rows()
	if err != nil {
		return err
	}

	for row := range rows {
		for col := range rows[row] {
			value := rows[row][col]
			if value == "" {
				continue
			}

			at := coord.Address{Column: coord.ColumnName(col), Row: row + 1}
			if _, err := p.registry.Process(s, at, value); err != nil {
				return fmt.Errorf("cell %s: %w", at, err)
			}
		}
	}

	return nil
}
