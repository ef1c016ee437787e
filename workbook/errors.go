package workbook

import "errors"

// ErrSheetNotFound indicates a lookup of a sheet title that does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetExists indicates an attempt to create a sheet whose title is taken.
var ErrSheetExists = errors.New("sheet already exists")

// ErrPDFUnavailable indicates PDF export without a configured renderer.
var ErrPDFUnavailable = errors.New("no PDF renderer configured")

// ErrOutOfRange indicates coordinates beyond the last column or row a sheet
// can hold.
var ErrOutOfRange = errors.New("coordinates beyond sheet limits")

// ErrSelectionTooLarge indicates a cell-by-cell operation on a selection
// holding more than MaxSelectionCells cells.
var ErrSelectionTooLarge = errors.New("selection too large")

// ErrInvalidPageSetup indicates an unknown paper size or orientation.
var ErrInvalidPageSetup = errors.New("invalid page setup")
