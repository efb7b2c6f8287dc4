package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	// Conversion errors.
	ErrReadSource  = errors.New("cannot read source")
	ErrRender      = errors.New("rendering failed")
	ErrWriteOutput = errors.New("cannot write output")

	// Setup errors.
	ErrStyleNotFound     = errors.New("style not found")
	ErrInvalidStyle      = errors.New("invalid style sheet")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidAssetPath  = errors.New("invalid asset path")
)
