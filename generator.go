package appicon

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	goico "github.com/sergeymakinen/go-ico"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/appicon/text"
)

// Generator renders the icon canvases and packages them into an ICO file.
type Generator struct {
	cfg            Config
	resolver       FontResolver
	logger         *slog.Logger
	frameSizes     []int
	renderedFrames bool
}

// New creates a Generator. Without options it renders DefaultConfig and
// looks fonts up on the system.
func New(opts ...Option) *Generator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{
		cfg:            o.config,
		resolver:       o.resolver,
		logger:         o.logger,
		frameSizes:     o.frameSizes,
		renderedFrames: o.renderedFrames,
	}
	if g.resolver == nil {
		r := text.NewResolver(o.config.FontName, o.config.FontPath)
		r.Logger = g.log()
		g.resolver = r
	}
	return g
}

// Config returns the configuration of the generator.
func (g *Generator) Config() Config {
	return g.cfg
}

// log returns the generator logger, or one that follows SetLogger.
func (g *Generator) log() *slog.Logger {
	if g.logger != nil {
		return g.logger
	}
	return slog.New(packageHandler{})
}

// Render draws one icon of size pixels: the circle, then the text centered
// on the canvas using the measured text extents.
func (g *Generator) Render(size int) (*Canvas, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	l := NewLayout(size)
	c := NewCanvas(size)
	c.FillEllipse(l.Circle, g.cfg.CircleColor)

	if g.cfg.Text == "" {
		return c, nil
	}

	face := g.resolver.Resolve(l.FontSize)
	defer func() {
		_ = face.Close()
	}()

	ext, err := text.Measure(g.cfg.Text, face)
	if err != nil {
		return nil, fmt.Errorf("appicon: measure %q: %w", g.cfg.Text, err)
	}

	origin := l.TextOrigin(ext.Width, ext.Height)
	c.DrawText(g.cfg.Text, face, origin.X, origin.Y, g.cfg.TextColor)

	g.log().Debug("rendered icon",
		"size", size,
		"font", face.Name(),
		"font_size", face.Size(),
		"measure", ext.Method.String(),
		"text_w", ext.Width,
		"text_h", ext.Height,
		"x", origin.X,
		"y", origin.Y,
	)
	return c, nil
}

// Generate validates the configuration and renders every size in order.
func (g *Generator) Generate() ([]*Canvas, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	canvases := make([]*Canvas, 0, len(g.cfg.Sizes))
	for _, size := range g.cfg.Sizes {
		c, err := g.Render(size)
		if err != nil {
			return nil, err
		}
		canvases = append(canvases, c)
	}
	return canvases, nil
}

// Encode writes canvases as one ICO container. The first canvas is the
// base image and every frame is resampled from it, the way the original
// icon encoder derives its sizes. WithRenderedFrames embeds the canvas of
// matching size instead.
func (g *Generator) Encode(w io.Writer, canvases []*Canvas) error {
	if len(canvases) == 0 {
		return fmt.Errorf("appicon: encode: %w", ErrNoFrames)
	}

	sizes := g.frameSizes
	if sizes == nil {
		sizes = make([]int, len(canvases))
		for i, c := range canvases {
			sizes[i] = c.Size()
		}
	}
	if err := validateSizes(sizes); err != nil {
		return err
	}

	frames := make([]image.Image, len(sizes))
	for i, size := range sizes {
		frames[i] = g.frame(canvases, size)
	}
	if err := goico.EncodeAll(w, frames); err != nil {
		return fmt.Errorf("appicon: encode: %w", err)
	}
	return nil
}

// frame returns the image stored for size: the base itself at its own
// size, a rendered canvas when WithRenderedFrames is set, otherwise the
// base resampled.
func (g *Generator) frame(canvases []*Canvas, size int) image.Image {
	base := canvases[0].Image()
	if base.Bounds().Dx() == size {
		return base
	}
	if g.renderedFrames {
		for _, c := range canvases {
			if c.Size() == size {
				return c.Image()
			}
		}
	}
	return resample(base, size)
}

// resample scales src to a size×size image with Catmull-Rom filtering.
func resample(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}

// WriteFile renders and encodes the icon, then writes it to path in one
// write, replacing any existing file. It returns the absolute path written.
func (g *Generator) WriteFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	canvases, err := g.Generate()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := g.Encode(&buf, canvases); err != nil {
		return "", err
	}

	if err := os.WriteFile(abs, buf.Bytes(), 0o644); err != nil { //nolint:gosec // icon files are world-readable
		return "", err
	}

	g.log().Info("icon written",
		"path", abs,
		"canvases", len(canvases),
		"bytes", humanize.Bytes(uint64(buf.Len())),
	)
	return abs, nil
}

// OutputPath returns filename placed in the directory of the running
// executable.
func OutputPath(filename string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("appicon: locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), filename), nil
}
