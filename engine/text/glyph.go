package text

import (
	"image"
	"math"
)

// GlyphDescriptor holds the metrics of one rendered glyph.
type GlyphDescriptor struct {
	Rune rune
	// Offset is a byte offset into the owning buffer: the start of the glyph's
	// bitmap in a LinearGlyphStore, or the glyph's byte column in a TextAtlas.
	Offset   int
	Width    int
	Height   int
	Pitch    int // bytes per source row, >= Width * bytes per pixel
	BearingX int
	BearingY int // baseline to top of the ink box, positive up
	Advance  int // in 1/64 pixels
}

// Descent is how far the glyph reaches below the baseline.
func (d GlyphDescriptor) Descent() int { return d.Height - d.BearingY }

// AdvancePx is the pen advance in whole pixels, fractional part truncated.
func (d GlyphDescriptor) AdvancePx() int { return d.Advance >> 6 }

// GlyphRect is a glyph's placement in atlas pixel space. Both corners are
// inclusive, so a glyph of width w spans TopLeft.X..TopLeft.X+w-1.
//
// Zero-sized glyphs keep the placement formula and therefore have
// BottomRight one texel above and left of TopLeft; see Empty.
type GlyphRect struct {
	TopLeft     image.Point
	BottomRight image.Point
}

func newGlyphRect(x, y, w, h int) GlyphRect {
	return GlyphRect{
		TopLeft:     image.Pt(x, y),
		BottomRight: image.Pt(x+w-1, y+h-1),
	}
}

// Size returns the rect's width and height in texels.
func (r GlyphRect) Size() (w, h int) {
	return r.BottomRight.X - r.TopLeft.X + 1, r.BottomRight.Y - r.TopLeft.Y + 1
}

// Empty reports whether the rect covers no texels.
func (r GlyphRect) Empty() bool {
	w, h := r.Size()
	return w <= 0 || h <= 0
}

// UVRect is a GlyphRect in normalized [0,1] texture coordinates.
type UVRect struct {
	U0, V0 float32 // top-left
	U1, V1 float32 // bottom-right
}

// Normalized converts the rect to texture coordinates for an atlas of the
// given height and width in texels (not bytes). Empty rects collapse onto
// their top-left corner so the result is never inverted.
//
// Atlas dimensions must be non-zero.
func (r GlyphRect) Normalized(height, width int) UVRect {
	w, h := float32(width), float32(height)
	uv := UVRect{
		U0: float32(r.TopLeft.X) / w,
		V0: float32(r.TopLeft.Y) / h,
	}
	if r.Empty() {
		uv.U1, uv.V1 = uv.U0, uv.V0
		return uv
	}
	uv.U1 = float32(r.BottomRight.X) / w
	uv.V1 = float32(r.BottomRight.Y) / h
	return uv
}

// Denormalize maps texture coordinates back to integer atlas texels,
// rounding to the nearest texel.
func (uv UVRect) Denormalize(height, width int) GlyphRect {
	round := func(v float32, n int) int { return int(math.Round(float64(v) * float64(n))) }
	return GlyphRect{
		TopLeft:     image.Pt(round(uv.U0, width), round(uv.V0, height)),
		BottomRight: image.Pt(round(uv.U1, width), round(uv.V1, height)),
	}
}
