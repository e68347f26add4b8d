package datatable

import "errors"

var (
	// ErrUnknownScaleType is returned if a scale type is not registered.
	ErrUnknownScaleType = errors.New("datatable: unknown scale type")

	// ErrUnknownTransformation is returned for an unknown value
	// transformation name.
	ErrUnknownTransformation = errors.New("datatable: unknown transformation")
)
