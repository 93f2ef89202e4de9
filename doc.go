// Package appicon generates the multi-resolution application icon.
//
// # Overview
//
// For every size in a descending list (256, 128, 64, 48, 32 and 16 pixels)
// the generator draws a transparent square canvas holding a filled circle
// and a centered letter, then packages the canvases into one ICO file.
//
//	g := appicon.New()
//	path, err := g.WriteFile("app_icon.ico")
//
// # Layout
//
// The circle is inscribed in the box inset by size/8 on every side. The
// letter is drawn at round(size*0.6) points, centered on its measured
// extents and raised by size/20. All divisions round toward negative
// infinity.
//
// # Fonts
//
// Fonts are resolved through a fallback chain (see text.Resolver): the
// named font, then its well-known absolute path, then a built-in bitmap
// face whose size is fixed. Generation never fails for lack of a font.
package appicon
