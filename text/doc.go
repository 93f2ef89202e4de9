// Package text loads fonts, measures strings and draws them onto images.
//
// Fonts come from TrueType/OpenType files (FontSource) or from the built-in
// 7x13 bitmap face (Builtin). Resolver chooses between them.
//
// Measure prefers the ink bounding box of the shaped text and falls back to
// the advance width and line height when the face has no outlines:
//
//	face := text.NewResolver("arial.ttf", "").Resolve(154)
//	ext, _ := text.Measure("C", face)
//	text.Draw(dst, "C", face, (256-ext.Width)/2, (256-ext.Height)/2, color.White)
package text
