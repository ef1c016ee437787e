// Package template fills placeholders embedded in the cells of an existing
// workbook.
package template

import (
	"strings"

	"github.com/orayew2002/xlfluent/coord"
	"github.com/orayew2002/xlfluent/workbook"
)

// HandlerFunc processes a matched placeholder. It receives the sheet, the
// address of the cell and the raw cell value.
type HandlerFunc func(s *workbook.Sheet, at coord.Address, value string) error

// Registry holds pattern → handler mappings.
type Registry struct {
	handlers []entry
}

type entry struct {
	pattern string
	handler HandlerFunc
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Register adds a handler for the given pattern (e.g. "{{title}}").
// Handlers are checked in registration order; the first match wins.
func (r *Registry) Register(pattern string, handler HandlerFunc) {
	r.handlers = append(r.handlers, entry{pattern: pattern, handler: handler})
}

// Len returns the number of registered patterns.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// Process runs the first handler whose pattern occurs in value.
// Returns true if a handler was executed.
func (r *Registry) Process(s *workbook.Sheet, at coord.Address, value string) (bool, error) {
	for _, e := range r.handlers {
		if strings.Contains(value, e.pattern) {
			if err := e.handler(s, at, value); err != nil {
				return false, err
			}

			return true, nil
		}
	}

	return false, nil
}
