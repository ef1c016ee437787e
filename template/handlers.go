package template

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/orayew2002/xlfluent/workbook"
)

// ---------- ReplaceHandler ----------

// ReplaceHandler accumulates key→value pairs and registers a single shared
// handler for all of them. Because the registry stops at the first matched
// handler per cell, sharing one handler replaces ALL pairs in one pass, even
// when a cell holds several keys (e.g. "{{year}} {{month}}").
//
// Usage:
//
//	rh := template.NewReplaceHandler()
//	rh.Add("{{year}}", "2026")
//	rh.Add("{{month}}", "October")
//	rh.Register(registry)
type ReplaceHandler struct {
	pairs []replacePair
}

type replacePair struct{ key, val string }

// NewReplaceHandler creates an empty ReplaceHandler.
func NewReplaceHandler() *ReplaceHandler {
	return &ReplaceHandler{}
}

// Add appends a key→val pair. Returns h so calls can be chained.
func (h *ReplaceHandler) Add(key, val string) *ReplaceHandler {
	h.pairs = append(h.pairs, replacePair{key, val})
	return h
}

// Register registers h into r for every key added via Add.
func (h *ReplaceHandler) Register(r *Registry) {
	for _, p := range h.pairs {
		r.Register(p.key, h.apply)
	}
}

func (h *ReplaceHandler) apply(s *workbook.Sheet, at coord.Address, value string) error {
	replaced := value
	for _, p := range h.pairs {
		replaced = strings.ReplaceAll(replaced, p.key, p.val)
	}

	if err := s.Cells(at.String()).SetValue(replaced).Err(); err != nil {
		return fmt.Errorf("replace handler: %w", err)
	}
	return nil
}

// ---------- RegisterMergeHandler ----------

var mergeCodePat = regexp.MustCompile(`\[(\d+):(\d+)\]`)

// RegisterMergeHandler registers a handler that detects [extraRows:extraCols]
// codes embedded in cell values, strips the code and merges the cell with
// its neighbours.
//
//	[1:0] → merge with 1 row below
//	[1:1] → merge with 1 row below and 1 column to the right
//	[0:2] → merge 2 columns to the right
//	[0:0] → strip the code only
//
// Run it in its own pass, after every row/column insertion, so addresses are
// stable.
func RegisterMergeHandler(r *Registry) {
	r.Register("[", handleMergeCode)
}

func handleMergeCode(s *workbook.Sheet, at coord.Address, value string) error {
	m := mergeCodePat.FindStringSubmatch(value)
	if m == nil {
		return nil // "[" present but not a merge code
	}

	extraRows, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("merge handler: rows %q: %w", m[1], err)
	}
	extraCols, err := strconv.Atoi(m[2])
	if err != nil {
		return fmt.Errorf("merge handler: cols %q: %w", m[2], err)
	}

	cleaned := mergeCodePat.ReplaceAllString(value, "")

	corner, err := at.Add(extraCols, extraRows)
	if err != nil {
		return fmt.Errorf("merge handler: %w", err)
	}
	area := coord.Span(at, corner).String()

	f := s.Workbook().File()
	styleID, _ := f.GetCellStyle(s.Name(), at.String())

	if err := s.Cells(area).SetValue(cleaned).Err(); err != nil {
		return fmt.Errorf("merge handler: %w", err)
	}

	if styleID != 0 && (extraRows > 0 || extraCols > 0) {
		if err := f.SetCellStyle(s.Name(), at.String(), corner.String(), styleID); err != nil {
			return fmt.Errorf("merge handler: style: %w", err)
		}
	}

	return nil
}

// ---------- RegisterBorderHandler ----------

// BorderMarker outlines the cell holding it: "&border" is stripped and a thin
// black border is drawn around the cell.
const BorderMarker = "&border"

// RegisterBorderHandler registers the BorderMarker handler.
func RegisterBorderHandler(r *Registry) {
	r.Register(BorderMarker, func(s *workbook.Sheet, at coord.Address, value string) error {
		cleaned := strings.ReplaceAll(value, BorderMarker, "")
		if err := s.Cells(at.String()).SetValue(cleaned).Border("000000").Err(); err != nil {
			return fmt.Errorf("border handler: %w", err)
		}
		return nil
	})
}

// ---------- RegisterRowsHandler ----------

// RegisterRowsHandler registers a handler for key that writes rows as a
// block anchored at the placeholder cell: rows[0] replaces the template row,
// and len(rows)-1 new rows are inserted beneath it. Each written row copies
// the placeholder's style.
//
// Example:
//
//	template.RegisterRowsHandler(registry, "{{employees}}", [][]any{
//	    {1, "Atageldi Orazow", "Backend Developer"},
//	    {2, "Merdan Annayew", "Frontend Developer"},
//	})
func RegisterRowsHandler(r *Registry, key string, rows [][]any) {
	r.Register(key, func(s *workbook.Sheet, at coord.Address, _ string) error {
		return writeRows(s, at, rows)
	})
}

func writeRows(s *workbook.Sheet, at coord.Address, rows [][]any) error {
	f := s.Workbook().File()
	styleID, _ := f.GetCellStyle(s.Name(), at.String())

	if len(rows) == 0 {
		return s.Cells(at.String()).SetValue("").Err()
	}

	if len(rows) > 1 {
		if err := f.InsertRows(s.Name(), at.Row+1, len(rows)-1); err != nil {
			return fmt.Errorf("rows handler: insert rows: %w", err)
		}
	}

	for i, values := range rows {
		start, err := at.Add(0, i)
		if err != nil {
			return fmt.Errorf("rows handler: %w", err)
		}

		if err := s.Cells(start.String()).SetValues(values...).Err(); err != nil {
			return fmt.Errorf("rows handler: row %d: %w", i, err)
		}

		if styleID != 0 && len(values) > 0 {
			end, err := start.Add(len(values)-1, 0)
			if err != nil {
				return fmt.Errorf("rows handler: %w", err)
			}
			if err := f.SetCellStyle(s.Name(), start.String(), end.String(), styleID); err != nil {
				return fmt.Errorf("rows handler: style row %d: %w", i, err)
			}
		}
	}

	return nil
}

// RegisterReplaceHandler is a convenience wrapper for a single key→val pair.
// For cells that contain multiple keys, use NewReplaceHandler instead.
func RegisterReplaceHandler(r *Registry, key, val string) {
	NewReplaceHandler().Add(key, val).Register(r)
}
