package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
type FontSource struct {
	data []byte
	font *opentype.Font
	name string
	path string

	// go-text parse of data, built on first shaping request.
	shapeOnce sync.Once
	shapeFont *gtfont.Font
	shapeErr  error
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	return &FontSource{
		data: dataCopy,
		font: f,
		name: extractFontName(f),
	}, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- font paths come from the resolver configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	s, err := NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.path = path
	return s, nil
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Path returns the file the source was loaded from, or "" for in-memory data.
func (s *FontSource) Path() string {
	return s.path
}

// Face creates a Face at the specified size in points (72 DPI, so points
// equal pixels).
func (s *FontSource) Face(size float64, opts ...FaceOption) (*Face, error) {
	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	otFace, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: mapHinting(config.hinting),
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}

	return &Face{
		source: s,
		face:   otFace,
		size:   size,
		name:   s.name,
	}, nil
}

// shaperFont returns the go-text view of the font used for shaping.
func (s *FontSource) shaperFont() (*gtfont.Font, error) {
	s.shapeOnce.Do(func() {
		face, err := gtfont.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.shapeErr = fmt.Errorf("text: failed to parse font for shaping: %w", err)
			return
		}
		s.shapeFont = face.Font
	})
	return s.shapeFont, s.shapeErr
}

// extractFontName extracts the font family name from the parsed font.
func extractFontName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// mapHinting converts text.Hinting to font.Hinting.
func mapHinting(h Hinting) font.Hinting {
	switch h {
	case HintingNone:
		return font.HintingNone
	case HintingVertical:
		return font.HintingVertical
	default:
		return font.HintingFull
	}
}
