// Package text turns a font face into a single-strip glyph atlas and lays
// strings out as textured quads over it.
//
// Construction runs in three immutable stages:
//
//	src, _ := text.OpenFontFile("RobotoMono.ttf", 0, nil)
//	store, _ := text.BuildLinearStore(src, nil) // glyph bitmaps back to back
//	atlas, _ := text.PackAtlas(store)            // one row, shared baseline
//	verts, _ := text.BuildTextMesh(atlas, "hello", mgl32.Vec2{10, 40})
//
// FontContainer and FontRegistry wrap the same pipeline for callers that keep
// fonts around by name.
package text
