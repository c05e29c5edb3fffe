package text

// PixelFormat describes how a glyph bitmap stores its pixels.
type PixelFormat int

const (
	PixelNone PixelFormat = iota
	PixelMono
	PixelGray2
	PixelGray4
	PixelGray8
	PixelLCD
	PixelLCDV
	PixelBGRA
)

// BitsPerPixel returns the storage size of one pixel.
func (f PixelFormat) BitsPerPixel() int {
	switch f {
	case PixelMono:
		return 1
	case PixelGray2:
		return 2
	case PixelGray4:
		return 4
	case PixelGray8, PixelLCD, PixelLCDV:
		return 8
	case PixelBGRA:
		return 32
	default:
		return 0
	}
}

// BytesPerPixel returns the byte size of one pixel, or 0 for sub-byte formats.
func (f PixelFormat) BytesPerPixel() int { return f.BitsPerPixel() / 8 }

func (f PixelFormat) String() string {
	switch f {
	case PixelMono:
		return "mono"
	case PixelGray2:
		return "gray2"
	case PixelGray4:
		return "gray4"
	case PixelGray8:
		return "gray8"
	case PixelLCD:
		return "lcd"
	case PixelLCDV:
		return "lcd-v"
	case PixelBGRA:
		return "bgra"
	default:
		return "none"
	}
}

// GlyphBitmap is one rasterized glyph as produced by a GlyphSource.
// Pix holds Rows*Pitch bytes, top row first.
type GlyphBitmap struct {
	Pix      []byte
	Width    int
	Rows     int
	Pitch    int
	BearingX int
	BearingY int
	Advance  int // in 1/64 pixels
	Format   PixelFormat
}

// FaceMetrics are whole-pixel vertical metrics of a face at its configured size.
type FaceMetrics struct {
	Ascent  int
	Descent int // positive, below the baseline
}

// GlyphSource rasterizes glyphs of one font face at a fixed size.
//
// RenderGlyph returns an error wrapping ErrGlyphNotFound when the face has no
// glyph for r. Any other error is treated as a render failure.
type GlyphSource interface {
	RenderGlyph(r rune) (GlyphBitmap, error)
	Metrics() FaceMetrics
}
