package text

import (
	"errors"
	"fmt"
	"io"
)

// FontContainer owns one font face together with its glyph store and atlas.
// Both are built once at construction and never change.
type FontContainer struct {
	source GlyphSource
	store  *LinearGlyphStore
	atlas  *TextAtlas
}

// NewFontContainer opens face faceIndex of the font at path and builds its atlas.
func NewFontContainer(path string, faceIndex int, opts *Options) (*FontContainer, error) {
	src, err := OpenFontFile(path, faceIndex, opts)
	if err != nil {
		return nil, err
	}
	fc, err := NewFontContainerFromSource(src, opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return fc, nil
}

// NewFontContainerFromSource builds the glyph store and atlas from src.
// The container takes ownership of src: it is closed by Close if it
// implements io.Closer, and immediately if the build fails.
func NewFontContainerFromSource(src GlyphSource, opts *Options) (*FontContainer, error) {
	store, err := BuildLinearStore(src, opts)
	if err != nil {
		return nil, closeSource(src, err)
	}
	atlas, err := PackAtlas(store)
	if err != nil {
		return nil, closeSource(src, err)
	}
	return &FontContainer{source: src, store: store, atlas: atlas}, nil
}

func (fc *FontContainer) Atlas() *TextAtlas        { return fc.atlas }
func (fc *FontContainer) Store() *LinearGlyphStore { return fc.store }

// GlyphBitmap returns the descriptor and raw bitmap of r as rendered.
func (fc *FontContainer) GlyphBitmap(r rune) (GlyphDescriptor, []byte, error) {
	return fc.store.Glyph(r)
}

func closeSource(src GlyphSource, err error) error {
	if c, ok := src.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil {
			return errors.Join(err, cerr)
		}
	}
	return err
}

// Close releases the underlying face. The atlas stays usable.
func (fc *FontContainer) Close() error {
	if c, ok := fc.source.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
