package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StyleManager caches derived styles so each (base style, change) pair is
// registered with the file only once.
type StyleManager struct {
	file  *excelize.File
	font  *excelize.Font // applied to styles derived from the default style
	cache map[derivedKey]int
}

type derivedKey struct {
	base   int
	change string
}

// NewStyleManager creates a style manager bound to the given file.
func NewStyleManager(f *excelize.File) *StyleManager {
	return &StyleManager{file: f, cache: make(map[derivedKey]int)}
}

// SetDefaultFont sets the font used whenever a change is applied to a cell
// that still has the default style.
func (sm *StyleManager) SetDefaultFont(family string, size float64) {
	sm.font = &excelize.Font{Family: family, Size: size}
}

// Derive returns the ID of base with apply run on it. change names the
// modification and must uniquely describe what apply does.
func (sm *StyleManager) Derive(base int, change string, apply func(*excelize.Style)) (int, error) {
	key := derivedKey{base: base, change: change}
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	style, err := sm.file.GetStyle(base)
	if err != nil {
		return 0, fmt.Errorf("get style %d: %w", base, err)
	}

	if base == 0 && sm.font != nil {
		font := fontOf(style)
		font.Family = sm.font.Family
		font.Size = sm.font.Size
	}

	apply(style)

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, fmt.Errorf("new style (%s): %w", change, err)
	}

	sm.cache[key] = id
	return id, nil
}

func fontOf(s *excelize.Style) *excelize.Font {
	if s.Font == nil {
		s.Font = &excelize.Font{}
	}
	return s.Font
}

func alignmentOf(s *excelize.Style) *excelize.Alignment {
	if s.Alignment == nil {
		s.Alignment = &excelize.Alignment{}
	}
	return s.Alignment
}

func allBorders(color string, style int) []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: color, Style: style},
		{Type: "right", Color: color, Style: style},
		{Type: "top", Color: color, Style: style},
		{Type: "bottom", Color: color, Style: style},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}
