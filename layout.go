package appicon

import (
	"image"
	"math"
)

// Layout holds the placement of the circle and the text on a canvas.
type Layout struct {
	Size     int
	Padding  int
	Circle   image.Rectangle
	FontSize float64
}

// NewLayout computes the circle box and font size for an icon of size
// pixels: the circle is inset by size/8 and the font is 60% of the size.
func NewLayout(size int) Layout {
	p := size / 8
	return Layout{
		Size:     size,
		Padding:  p,
		Circle:   image.Rect(p, p, size-p, size-p),
		FontSize: math.Round(float64(size) * 0.6),
	}
}

// TextOrigin returns the top-left corner at which text of the given pixel
// extents is centered, raised by size/20.
func (l Layout) TextOrigin(textW, textH int) image.Point {
	return image.Point{
		X: floorDiv(l.Size-textW, 2),
		Y: floorDiv(l.Size-textH, 2) - floorDiv(l.Size, 20),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
