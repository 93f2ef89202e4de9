package text

import (
	"errors"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Method identifies how an Extents value was measured.
type Method int

const (
	// MethodInk measures the union of the shaped glyph outlines.
	MethodInk Method = iota

	// MethodAdvance measures the advance width and the ascent+descent line height.
	MethodAdvance
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodInk:
		return "ink"
	case MethodAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Extents is the measured size of a string in whole pixels.
type Extents struct {
	Width  int
	Height int
	Method Method
}

// Measure returns the pixel size of text drawn with face.
//
// The ink bounding box is preferred. When it cannot be computed (bitmap
// face, text without outlines) the advance box is returned instead.
func Measure(text string, face *Face) (Extents, error) {
	if face == nil {
		return Extents{}, errors.New("text: nil face")
	}
	if ext, err := MeasureInk(text, face); err == nil {
		return ext, nil
	}
	return MeasureAdvance(text, face), nil
}

// MeasureAdvance returns the advance width of text and the line height
// (ascent plus descent) of face.
func MeasureAdvance(text string, face *Face) Extents {
	adv := font.MeasureString(face.face, text)
	m := face.face.Metrics()
	return Extents{
		Width:  adv.Ceil(),
		Height: (m.Ascent + m.Descent).Ceil(),
		Method: MethodAdvance,
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
