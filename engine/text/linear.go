package text

import (
	"errors"
	"fmt"
)

// LinearGlyphStore holds every rendered glyph bitmap back to back, in charset
// order, together with the aggregate metrics the packer needs.
type LinearGlyphStore struct {
	descriptors []GlyphDescriptor
	index       map[rune]int
	bytes       []byte
	format      PixelFormat
	sumPitch    int
	maxAscent   int
	maxDescent  int
}

// BuildLinearStore renders opts.Charset from src. The first glyph that cannot
// be rendered aborts the build, unless it is missing and the missing-glyph
// policy allows a substitute.
func BuildLinearStore(src GlyphSource, opts *Options) (*LinearGlyphStore, error) {
	opts = opts.withDefaults()
	if len(opts.Charset) == 0 {
		return nil, ErrEmptyCharset
	}

	s := &LinearGlyphStore{
		descriptors: make([]GlyphDescriptor, 0, len(opts.Charset)),
		index:       make(map[rune]int, len(opts.Charset)),
	}
	type rendered struct {
		r       rune
		bm      GlyphBitmap
		missing bool
	}
	glyphs := make([]rendered, 0, len(opts.Charset))
	seen := make(map[rune]struct{}, len(opts.Charset))
	missing := 0
	for _, r := range opts.Charset {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}

		bm, err := src.RenderGlyph(r)
		if err != nil {
			if !errors.Is(err, ErrGlyphNotFound) {
				return nil, glyphErr(r, fmt.Errorf("%w: %w", ErrGlyphRender, err))
			}
			if opts.MissingGlyph == MissingGlyphFail {
				return nil, glyphErr(r, err)
			}
			missing++
		}
		glyphs = append(glyphs, rendered{r: r, bm: bm, missing: err != nil})
	}

	// Substitutes are drawn in the format of the rendered glyphs.
	format := PixelGray8
	for _, g := range glyphs {
		if !g.missing && g.bm.Pitch > 0 {
			format = g.bm.Format
			break
		}
	}
	for _, g := range glyphs {
		if g.missing {
			g.bm = substituteGlyph(opts.MissingGlyph, src.Metrics(), opts.RowAlign, format)
		}
		if err := s.append(g.r, g.bm); err != nil {
			return nil, glyphErr(g.r, err)
		}
	}

	if s.format == PixelNone {
		s.format = PixelGray8
	}
	if missing > 0 {
		Logger().Warn("text: substituted missing glyphs",
			"count", missing, "policy", opts.MissingGlyph.String())
	}
	Logger().Debug("text: linear glyph store built",
		"glyphs", len(s.descriptors), "bytes", len(s.bytes),
		"sumPitch", s.sumPitch, "maxAscent", s.maxAscent, "maxDescent", s.maxDescent)
	return s, nil
}

func (s *LinearGlyphStore) append(r rune, bm GlyphBitmap) error {
	if bm.Pitch < 0 {
		return ErrNegativePitch
	}
	size := bm.Rows * bm.Pitch
	if bm.Pitch > 0 {
		if err := s.checkFormat(bm); err != nil {
			return err
		}
	}
	if len(bm.Pix) < size {
		return fmt.Errorf("%w: bitmap has %d bytes, want %d", ErrGlyphRender, len(bm.Pix), size)
	}

	d := GlyphDescriptor{
		Rune:     r,
		Offset:   len(s.bytes),
		Width:    bm.Width,
		Height:   bm.Rows,
		Pitch:    bm.Pitch,
		BearingX: bm.BearingX,
		BearingY: bm.BearingY,
		Advance:  bm.Advance,
	}
	s.bytes = append(s.bytes, bm.Pix[:size]...)
	s.sumPitch += d.Pitch
	s.maxAscent = max(s.maxAscent, d.BearingY)
	s.maxDescent = max(s.maxDescent, d.Descent())

	s.index[r] = len(s.descriptors)
	s.descriptors = append(s.descriptors, d)
	return nil
}

// checkFormat fixes the store format on the first glyph with a row pitch and
// rejects anything that cannot be copied byte-wise into the same atlas.
func (s *LinearGlyphStore) checkFormat(bm GlyphBitmap) error {
	bpp := bm.Format.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedPixelFormat, bm.Format)
	}
	if s.format == PixelNone {
		s.format = bm.Format
	} else if bm.Format != s.format {
		return fmt.Errorf("%w: %s glyph in %s store", ErrUnsupportedPixelFormat, bm.Format, s.format)
	}
	if bm.Pitch%bpp != 0 || bm.Pitch < bm.Width*bpp {
		return fmt.Errorf("%w: pitch %d for width %d at %d bytes per pixel",
			ErrUnsupportedPixelFormat, bm.Pitch, bm.Width, bpp)
	}
	return nil
}

// substituteGlyph builds the stand-in bitmap for a missing glyph in format f.
func substituteGlyph(p MissingGlyphPolicy, m FaceMetrics, rowAlign int, f PixelFormat) GlyphBitmap {
	bpp := f.BytesPerPixel()
	if p != MissingGlyphBox || m.Ascent <= 0 || bpp == 0 {
		return GlyphBitmap{Format: f}
	}

	h := m.Ascent
	w := max(h/2, 3)
	pitch := alignUp(w*bpp, rowAlign)
	for pitch%bpp != 0 {
		pitch += max(rowAlign, 1)
	}
	pix := make([]byte, h*pitch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if y == 0 || y == h-1 || x == 0 || x == w-1 {
				for c := 0; c < bpp; c++ {
					pix[y*pitch+x*bpp+c] = 0xff
				}
			}
		}
	}
	return GlyphBitmap{
		Pix:      pix,
		Width:    w,
		Rows:     h,
		Pitch:    pitch,
		BearingX: 1,
		BearingY: h,
		Advance:  (w + 2) << 6,
		Format:   f,
	}
}

// Descriptors returns the glyph descriptors in charset order.
func (s *LinearGlyphStore) Descriptors() []GlyphDescriptor { return s.descriptors }

// Bytes returns the concatenated glyph bitmaps.
func (s *LinearGlyphStore) Bytes() []byte { return s.bytes }

// Format returns the pixel format shared by every glyph with pixel data.
func (s *LinearGlyphStore) Format() PixelFormat { return s.format }

// SumPitch is the sum of all glyph pitches in bytes.
func (s *LinearGlyphStore) SumPitch() int { return s.sumPitch }

// MaxAscent is the largest bearing above the baseline over all glyphs.
func (s *LinearGlyphStore) MaxAscent() int { return s.maxAscent }

// MaxDescent is the largest extent below the baseline over all glyphs.
func (s *LinearGlyphStore) MaxDescent() int { return s.maxDescent }

// Glyph returns the descriptor and bitmap bytes of r.
func (s *LinearGlyphStore) Glyph(r rune) (GlyphDescriptor, []byte, error) {
	i, ok := s.index[r]
	if !ok {
		return GlyphDescriptor{}, nil, glyphErr(r, ErrCharacterOutOfRange)
	}
	d := s.descriptors[i]
	return d, s.bytes[d.Offset : d.Offset+d.Height*d.Pitch], nil
}
