package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for the text package.
var (
	// ErrFaceLoad is returned when a font file cannot be read or parsed, or
	// the requested face index does not exist.
	ErrFaceLoad = errors.New("text: failed to load font face")

	// ErrGlyphRender is returned when the rasterizer fails on a glyph.
	ErrGlyphRender = errors.New("text: failed to render glyph")

	// ErrGlyphNotFound is returned by a GlyphSource that has no glyph for a rune.
	ErrGlyphNotFound = errors.New("text: glyph not found")

	// ErrCharacterOutOfRange is returned when a rune is not part of an atlas charset.
	ErrCharacterOutOfRange = errors.New("text: character out of atlas range")

	// ErrEmptyAtlas is returned when packing would produce a zero-sized atlas.
	ErrEmptyAtlas = errors.New("text: atlas has zero width or height")

	// ErrNegativePitch is returned for bottom-up bitmaps, which are not supported.
	ErrNegativePitch = errors.New("text: negative bitmap pitch is not supported")

	// ErrUnsupportedPixelFormat is returned for bitmaps that cannot be packed
	// byte-wise (sub-byte pixels, mixed formats, misaligned pitch).
	ErrUnsupportedPixelFormat = errors.New("text: unsupported pixel format")

	// ErrEmptyCharset is returned when Options.Charset has no runes.
	ErrEmptyCharset = errors.New("text: empty charset")

	// ErrUnknownFont is returned by FontRegistry for ids or names never registered.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrFontExists is returned when registering a name twice.
	ErrFontExists = errors.New("text: font already registered")
)

// GlyphError reports a failure tied to a single rune.
type GlyphError struct {
	Rune rune
	Err  error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("%v (rune %U)", e.Err, e.Rune)
}

func (e *GlyphError) Unwrap() error { return e.Err }

func glyphErr(r rune, err error) error {
	return &GlyphError{Rune: r, Err: err}
}
