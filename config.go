package appicon

import (
	"image/color"
	"runtime"
)

// MaxSize is the largest edge length an ICO directory entry can express.
const MaxSize = 256

// Config holds the fixed literals of the icon.
type Config struct {
	// Sizes are the edge lengths to render, largest first. The first size
	// supplies the base image of the container.
	Sizes []int

	// CircleColor fills the circle.
	CircleColor color.RGBA

	// Text is drawn centered over the circle. Empty text draws only the circle.
	Text string

	// TextColor colors the glyphs.
	TextColor color.RGBA

	// Filename is the name of the icon file.
	Filename string

	// FontName is looked up as given and then in the system font directories.
	FontName string

	// FontPath is the absolute location of the same font, tried second.
	FontPath string
}

// DefaultSizes are the edge lengths of the application icon.
var DefaultSizes = []int{256, 128, 64, 48, 32, 16}

// DefaultConfig returns the application icon configuration: a green circle
// with a white "C", written to app_icon.ico.
func DefaultConfig() Config {
	return Config{
		Sizes:       append([]int(nil), DefaultSizes...),
		CircleColor: color.RGBA{R: 76, G: 175, B: 80, A: 255},
		Text:        "C",
		TextColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Filename:    "app_icon.ico",
		FontName:    "arial.ttf",
		FontPath:    defaultFontPath(runtime.GOOS),
	}
}

// defaultFontPath returns where Arial normally lives on goos.
func defaultFontPath(goos string) string {
	switch goos {
	case "windows":
		return `C:\Windows\Fonts\arial.ttf`
	case "darwin":
		return "/System/Library/Fonts/Supplemental/Arial.ttf"
	default:
		return "/usr/share/fonts/truetype/msttcorefonts/Arial.ttf"
	}
}

// Validate checks the size list and the file name.
func (c Config) Validate() error {
	if c.Filename == "" {
		return ErrNoFilename
	}
	return validateSizes(c.Sizes)
}

func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return ErrNoSizes
	}
	seen := make(map[int]bool, len(sizes))
	for i, s := range sizes {
		if s < 1 || s > MaxSize {
			return &SizeError{Index: i, Size: s, Err: ErrInvalidSize}
		}
		if seen[s] {
			return &SizeError{Index: i, Size: s, Err: ErrDuplicateSize}
		}
		seen[s] = true
	}
	return nil
}
