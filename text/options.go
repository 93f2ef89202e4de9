package text

// Hinting selects how glyph outlines are snapped to the pixel grid.
type Hinting int

const (
	// HintingFull snaps outlines horizontally and vertically.
	HintingFull Hinting = iota

	// HintingVertical snaps outlines vertically only.
	HintingVertical

	// HintingNone leaves outlines unhinted.
	HintingNone
)

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	hinting Hinting
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		hinting: HintingFull,
	}
}

// WithHinting sets the hinting mode for the face.
func WithHinting(h Hinting) FaceOption {
	return func(c *faceConfig) {
		c.hinting = h
	}
}
