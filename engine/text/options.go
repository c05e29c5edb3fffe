package text

import "golang.org/x/image/font"

// MissingGlyphPolicy decides what the store builder does with runes the face
// cannot render.
type MissingGlyphPolicy int

const (
	// MissingGlyphBox substitutes a hollow box sized from the face ascent.
	MissingGlyphBox MissingGlyphPolicy = iota
	// MissingGlyphEmpty records a zero-sized glyph with no advance.
	MissingGlyphEmpty
	// MissingGlyphFail aborts the build.
	MissingGlyphFail
)

func (p MissingGlyphPolicy) String() string {
	switch p {
	case MissingGlyphBox:
		return "box"
	case MissingGlyphEmpty:
		return "empty"
	case MissingGlyphFail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseMissingGlyphPolicy maps "box", "empty" or "fail" to a policy.
func ParseMissingGlyphPolicy(s string) (MissingGlyphPolicy, bool) {
	switch s {
	case "box":
		return MissingGlyphBox, true
	case "empty":
		return MissingGlyphEmpty, true
	case "fail":
		return MissingGlyphFail, true
	}
	return 0, false
}

// Options configures glyph rasterization and atlas construction.
// Zero Size, DPI and RowAlign and a nil Charset take the values of
// DefaultOptions. Hinting is used as given.
type Options struct {
	Size    float64 // points
	DPI     float64
	Hinting font.Hinting
	// Charset lists the runes to put in the atlas, in atlas order.
	Charset []rune
	// RowAlign rounds each bitmap pitch up to a multiple of this many bytes.
	RowAlign     int
	MissingGlyph MissingGlyphPolicy
}

// ASCII returns the runes 0 through 127.
func ASCII() []rune {
	rs := make([]rune, 128)
	for i := range rs {
		rs[i] = rune(i)
	}
	return rs
}

// DefaultOptions returns 30pt at 72 DPI, full hinting, ASCII, tight rows and
// box substitution for missing glyphs.
func DefaultOptions() *Options {
	return &Options{
		Size:         30,
		DPI:          72,
		Hinting:      font.HintingFull,
		Charset:      ASCII(),
		RowAlign:     1,
		MissingGlyph: MissingGlyphBox,
	}
}

func (o *Options) withDefaults() *Options {
	d := DefaultOptions()
	if o == nil {
		return d
	}
	out := *o
	if out.Size <= 0 {
		out.Size = d.Size
	}
	if out.DPI <= 0 {
		out.DPI = d.DPI
	}
	if out.Charset == nil {
		out.Charset = d.Charset
	}
	if out.RowAlign <= 0 {
		out.RowAlign = d.RowAlign
	}
	return &out
}

func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
