package sample

import (
	"testing"

	"github.com/orayew2002/xlfluent/config"
	"github.com/orayew2002/xlfluent/workbook"
)

func TestBuilders(t *testing.T) {
	cfg := config.Default()
	cfg.Workbook.TmpDir = t.TempDir()
	engine := workbook.NewEngine(cfg)

	tests := []struct {
		name  string
		sheet string
		cell  string
		want  string
	}{
		{"hello", "My Sheet!", "B2", "Hello World"},
		{"formatting", "My Sheet", "B6", "Hello World!"},
		{"formatting", "My Sheet", "D2", "Merged"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.cell, func(t *testing.T) {
			wb, err := Builders[tt.name](engine)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			defer wb.Close()

			sheet, err := wb.Sheet(tt.sheet)
			if err != nil {
				t.Fatalf("Sheet: %v", err)
			}
			got, err := sheet.Cells(tt.cell).Value()
			if err != nil {
				t.Fatalf("Value: %v", err)
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.cell, got, tt.want)
			}
		})
	}
}
