package text

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Draw renders text to a destination image.
// Position (x, y) is the top-left corner of the line box; the baseline
// sits one ascent below y.
func Draw(dst draw.Image, text string, face *Face, x, y int, col color.Color) {
	if text == "" || face == nil {
		return
	}

	m := face.face.Metrics()
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face.face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y) + m.Ascent},
	}
	d.DrawString(text)
}
