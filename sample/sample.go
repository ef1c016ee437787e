// Package sample builds the demonstration workbooks served by the CLI and
// the export server.
package sample

import (
	"fmt"

	"github.com/orayew2002/xlfluent/workbook"
)

// Hello builds a one-sheet workbook with a greeting in B2.
func Hello(engine *workbook.Engine) (*workbook.Workbook, error) {
	wb, err := engine.NewWorkbook()
	if err != nil {
		return nil, err
	}

	sheet, err := wb.CreateSheet("My Sheet!")
	if err != nil {
		wb.Close()
		return nil, err
	}

	if err := sheet.Cells("B2").SetValue("Hello World").Err(); err != nil {
		wb.Close()
		return nil, fmt.Errorf("hello: %w", err)
	}

	return wb, nil
}

// Formatting builds a workbook showing each font decoration, then all of
// them combined.
func Formatting(engine *workbook.Engine) (*workbook.Workbook, error) {
	wb, err := engine.NewWorkbook()
	if err != nil {
		return nil, err
	}

	sheet, err := wb.CreateSheet("My Sheet")
	if err != nil {
		wb.Close()
		return nil, err
	}

	const text = "Hello World!"
	steps := []*workbook.Cells{
		sheet.Cells("B2").SetValue(text).Bold(),
		sheet.Cells("B3").SetValue(text).Italic(),
		sheet.Cells("B4").SetValue(text).Underlined(),
		sheet.Cells("B5").SetValue(text).Strikethrough(),
		sheet.Cells("B6").SetValue(text).Bold().Italic().Underlined().Strikethrough(),
		sheet.Cells("D2:F2").SetValue("Merged").Centered().Border(""),
		sheet.Cells("D4").SetValue(1234.5).AsCurrency(),
	}
	for _, c := range steps {
		if err := c.Err(); err != nil {
			wb.Close()
			return nil, fmt.Errorf("formatting: %w", err)
		}
	}

	if err := sheet.SetSameColumnWidths("B", "F", 16); err != nil {
		wb.Close()
		return nil, fmt.Errorf("formatting: %w", err)
	}

	return wb, nil
}

// Builders maps sample names to their builders.
var Builders = map[string]func(*workbook.Engine) (*workbook.Workbook, error){
	"hello":      Hello,
	"formatting": Formatting,
}
