package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// builtinName identifies the built-in bitmap face.
const builtinName = "basicfont 7x13"

// Face is a font at a fixed size, ready for measuring and drawing.
//
// A Face is either backed by a FontSource (scalable outlines) or is the
// built-in bitmap face returned by Builtin, whose size is fixed.
type Face struct {
	source *FontSource
	face   font.Face
	size   float64
	name   string
}

// Metrics holds line metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the top of the line to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line (positive).
	Descent float64

	// Height is the recommended line height.
	Height float64
}

// Builtin returns the built-in 7x13 bitmap face. It renders at its native
// size whatever size was requested.
func Builtin() *Face {
	return &Face{
		face: basicfont.Face7x13,
		size: float64(basicfont.Face7x13.Height),
		name: builtinName,
	}
}

// Name returns the family name of the face.
func (f *Face) Name() string {
	return f.name
}

// Size returns the size of the face in pixels.
func (f *Face) Size() float64 {
	return f.size
}

// Scalable reports whether the face has outlines.
func (f *Face) Scalable() bool {
	return f.source != nil
}

// Source returns the FontSource the face was created from, or nil for the
// built-in face.
func (f *Face) Source() *FontSource {
	return f.source
}

// Metrics returns the line metrics of the face.
func (f *Face) Metrics() Metrics {
	m := f.face.Metrics()
	return Metrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
		Height:  fixedToFloat64(m.Height),
	}
}

// Close releases the rasterizer state of the face.
func (f *Face) Close() error {
	if f.source == nil {
		return nil
	}
	return f.face.Close()
}
