package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no font file matches a lookup.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrNotScalable is returned for operations that need glyph outlines
	// on a bitmap face.
	ErrNotScalable = errors.New("text: face has no outlines")

	// ErrNoInk is returned when shaped text covers no pixels.
	ErrNoInk = errors.New("text: text has no ink")
)
