package text

import (
	"fmt"
	"testing"
)

// fakeSource is a synthetic face with hand-written glyph bitmaps.
type fakeSource struct {
	glyphs  map[rune]GlyphBitmap
	errs    map[rune]error
	metrics FaceMetrics
	calls   []rune
	closed  bool
}

func (s *fakeSource) RenderGlyph(r rune) (GlyphBitmap, error) {
	s.calls = append(s.calls, r)
	if err, ok := s.errs[r]; ok {
		return GlyphBitmap{}, err
	}
	bm, ok := s.glyphs[r]
	if !ok {
		return GlyphBitmap{}, fmt.Errorf("no glyph for %q: %w", r, ErrGlyphNotFound)
	}
	return bm, nil
}

func (s *fakeSource) Metrics() FaceMetrics { return s.metrics }

func (s *fakeSource) Close() error {
	s.closed = true
	return nil
}

// solidGlyph returns a Gray8 glyph whose every pixel holds fill. Padding
// bytes beyond width hold 0.
func solidGlyph(w, h, pitch, bearingX, bearingY, advance int, fill byte) GlyphBitmap {
	pix := make([]byte, h*pitch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*pitch+x] = fill
		}
	}
	return GlyphBitmap{
		Pix:      pix,
		Width:    w,
		Rows:     h,
		Pitch:    pitch,
		BearingX: bearingX,
		BearingY: bearingY,
		Advance:  advance,
		Format:   PixelGray8,
	}
}

// abSpace is the three-glyph face used throughout the packer tests.
func abSpace() *fakeSource {
	return &fakeSource{
		glyphs: map[rune]GlyphBitmap{
			'A': solidGlyph(8, 10, 8, 0, 8, 9<<6, 'A'),
			'B': solidGlyph(6, 6, 6, 1, 6, 7<<6+32, 'B'),
			' ': solidGlyph(0, 0, 0, 0, 0, 5<<6, 0),
		},
		metrics: FaceMetrics{Ascent: 8, Descent: 2},
	}
}

func abSpaceOptions() *Options {
	opts := DefaultOptions()
	opts.Charset = []rune{'A', 'B', ' '}
	return opts
}

func TestPixelFormatSizes(t *testing.T) {
	tests := []struct {
		f    PixelFormat
		bits int
		b    int
	}{
		{PixelNone, 0, 0},
		{PixelMono, 1, 0},
		{PixelGray2, 2, 0},
		{PixelGray4, 4, 0},
		{PixelGray8, 8, 1},
		{PixelLCD, 8, 1},
		{PixelLCDV, 8, 1},
		{PixelBGRA, 32, 4},
	}
	for _, tt := range tests {
		if got := tt.f.BitsPerPixel(); got != tt.bits {
			t.Errorf("%s: expected %d bits, got %d", tt.f, tt.bits, got)
		}
		if got := tt.f.BytesPerPixel(); got != tt.b {
			t.Errorf("%s: expected %d bytes, got %d", tt.f, tt.b, got)
		}
	}
}
