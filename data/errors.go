package data

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoLabels indicates a source without any category labels.
var ErrNoLabels = errors.New("no category labels")

// LoadError represents an error while loading chart data.
type LoadError struct {
	Source string // file name
	Sheet  string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("loading %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("loading %s (sheet %q): %v", e.Source, e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
