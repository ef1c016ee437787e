package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/orayew2002/xlfluent/config"
	"github.com/orayew2002/xlfluent/template"
	"github.com/orayew2002/xlfluent/workbook"
)

func newEngine(t *testing.T) *workbook.Engine {
	t.Helper()
	cfg := config.Default()
	cfg.Workbook.TmpDir = t.TempDir()
	return workbook.NewEngine(cfg)
}

func buildTemplate(t *testing.T, engine *workbook.Engine) []byte {
	t.Helper()

	wb, err := engine.NewWorkbook()
	if err != nil {
		t.Fatalf("NewWorkbook: %v", err)
	}
	defer wb.Close()

	sheet, err := wb.CreateSheet("Report")
	if err != nil {
		t.Fatalf("CreateSheet: %v", err)
	}

	cells := map[string]string{
		"A1": "Report for {{month}} {{year}}[0:2]",
		"D1": "Total&border",
		"A3": "{{rows}}",
	}
	for cell, value := range cells {
		if err := sheet.Cells(cell).SetValue(value).Err(); err != nil {
			t.Fatalf("SetValue(%s): %v", cell, err)
		}
	}

	data, err := wb.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	return data
}

func TestProcessBytes(t *testing.T) {
	engine := newEngine(t)
	data := buildTemplate(t, engine)

	first := template.New()
	template.NewReplaceHandler().
		Add("{{month}}", "October").
		Add("{{year}}", "2026").
		Register(first)
	template.RegisterRowsHandler(first, "{{rows}}", [][]any{
		{1, "Atageldi Orazow"},
		{2, "Merdan Annayew"},
		{3, "Aynur Saparowa"},
	})
	template.RegisterBorderHandler(first)

	data, err := New(engine, first).ProcessBytes(data)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}

	second := template.New()
	template.RegisterMergeHandler(second)

	data, err = New(engine, second).ProcessBytes(data)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}

	path := filepath.Join(t.TempDir(), "result.xlsx")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write result: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open result: %v", err)
	}
	defer f.Close()

	wb, err := engine.OpenWorkbook(f)
	if err != nil {
		t.Fatalf("OpenWorkbook: %v", err)
	}
	defer wb.Close()

	sheet, err := wb.Sheet("Report")
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}

	want := map[string]string{
		"A1": "Report for October 2026",
		"D1": "Total",
		"A3": "1",
		"B3": "Atageldi Orazow",
		"A5": "3",
		"B5": "Aynur Saparowa",
	}
	for cell, v := range want {
		got, err := sheet.Cells(cell).Value()
		if err != nil {
			t.Fatalf("Value(%s): %v", cell, err)
		}
		if got != v {
			t.Errorf("%s = %q, want %q", cell, got, v)
		}
	}

	merges, err := wb.File().GetMergeCells("Report")
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	if len(merges) != 1 || merges[0].GetStartAxis() != "A1" || merges[0].GetEndAxis() != "C1" {
		t.Errorf("merges = %v, want A1:C1", merges)
	}

	id, err := wb.File().GetCellStyle("Report", "D1")
	if err != nil {
		t.Fatalf("GetCellStyle: %v", err)
	}
	style, err := wb.File().GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle: %v", err)
	}
	if len(style.Border) != 4 {
		t.Errorf("D1 borders = %d, want 4", len(style.Border))
	}
}

func TestProcessFile(t *testing.T) {
	engine := newEngine(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "table.xlsx")
	output := filepath.Join(dir, "result.xlsx")

	if err := os.WriteFile(input, buildTemplate(t, engine), 0644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	registry := template.New()
	template.RegisterReplaceHandler(registry, "{{month}}", "May")

	if err := New(engine, registry).ProcessFile(input, output); err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Fatalf("output missing: %v", err)
	}

	if err := New(engine, registry).ProcessFile(filepath.Join(dir, "missing.xlsx"), output); err == nil {
		t.Error("ProcessFile of a missing input succeeded")
	}
}
