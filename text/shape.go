package text

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// MeasureInk shapes text with HarfBuzz and returns the pixel size of the
// union of the glyph ink boxes.
func MeasureInk(text string, face *Face) (Extents, error) {
	if face == nil || face.source == nil {
		return Extents{}, ErrNotScalable
	}
	if text == "" {
		return Extents{}, ErrNoInk
	}

	gf, err := face.source.shaperFont()
	if err != nil {
		return Extents{}, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(gf),
		Size:      fixed.Int26_6(face.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	var hb shaping.HarfbuzzShaper
	out := hb.Shape(input)

	// Boxes are collected y-down, relative to the baseline origin.
	var (
		pen    fixed.Int26_6
		ink    fixed.Rectangle26_6
		hasInk bool
	)
	for _, g := range out.Glyphs {
		if g.Width != 0 && g.Height != 0 {
			x0 := pen + g.XOffset + g.XBearing
			x1 := x0 + g.Width
			y0 := -(g.YOffset + g.YBearing)
			y1 := y0 - g.Height
			box := fixed.Rectangle26_6{
				Min: fixed.Point26_6{X: min(x0, x1), Y: min(y0, y1)},
				Max: fixed.Point26_6{X: max(x0, x1), Y: max(y0, y1)},
			}
			if hasInk {
				ink = ink.Union(box)
			} else {
				ink, hasInk = box, true
			}
		}
		pen += g.Advance
	}
	if !hasInk {
		return Extents{}, ErrNoInk
	}

	return Extents{
		Width:  ink.Max.X.Ceil() - ink.Min.X.Floor(),
		Height: ink.Max.Y.Ceil() - ink.Min.Y.Floor(),
		Method: MethodInk,
	}, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
