package appicon

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/appicon/text"
)

// kappa is the control point distance of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

// Canvas is a square RGBA pixel buffer, fully transparent when created.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, size, size))}
}

// Size returns the edge length of the canvas.
func (c *Canvas) Size() int {
	return c.img.Bounds().Dx()
}

// Image returns the underlying pixel buffer.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillEllipse fills the ellipse inscribed in r with col, anti-aliased
// along its edge.
func (c *Canvas) FillEllipse(r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}

	rx := float32(r.Dx()) / 2
	ry := float32(r.Dy()) / 2
	cx := float32(r.Min.X) + rx
	cy := float32(r.Min.Y) + ry
	kx := rx * kappa
	ky := ry * kappa

	size := c.img.Bounds().Size()
	z := vector.NewRasterizer(size.X, size.Y)
	z.DrawOp = draw.Over
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// DrawText draws s with face, (x, y) being the top-left of the line box.
func (c *Canvas) DrawText(s string, face *text.Face, x, y int, col color.Color) {
	text.Draw(c.img, s, face, x, y, col)
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return c.img.ColorModel()
}
