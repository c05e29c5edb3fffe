package text

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenTypeSource rasterizes glyphs from a TrueType/OpenType face with the
// golang.org/x/image rasterizer. Bitmaps are 8-bit coverage.
type OpenTypeSource struct {
	face     font.Face
	rowAlign int
	metrics  FaceMetrics
}

// OpenFontFile reads a font file and opens face faceIndex of it.
func OpenFontFile(path string, faceIndex int, opts *Options) (*OpenTypeSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrFaceLoad, path, err)
	}
	src, err := LoadOpenTypeSource(data, faceIndex, opts)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	return src, nil
}

// LoadOpenTypeSource parses font data (a single font or a collection) and
// creates a face for faceIndex at the size configured in opts.
func LoadOpenTypeSource(data []byte, faceIndex int, opts *Options) (*OpenTypeSource, error) {
	opts = opts.withDefaults()
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrFaceLoad)
	}

	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrFaceLoad, err)
	}
	if faceIndex < 0 || faceIndex >= coll.NumFonts() {
		return nil, fmt.Errorf("%w: face index %d out of range [0,%d)", ErrFaceLoad, faceIndex, coll.NumFonts())
	}
	f, err := coll.Font(faceIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: face %d: %w", ErrFaceLoad, faceIndex, err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: opts.Hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: new face: %w", ErrFaceLoad, err)
	}

	m := face.Metrics()
	return &OpenTypeSource{
		face:     face,
		rowAlign: opts.RowAlign,
		metrics: FaceMetrics{
			Ascent:  m.Ascent.Ceil(),
			Descent: m.Descent.Ceil(),
		},
	}, nil
}

// Metrics implements GlyphSource.
func (s *OpenTypeSource) Metrics() FaceMetrics { return s.metrics }

// RenderGlyph implements GlyphSource. The glyph is rendered with the pen at
// the origin, so the mask rectangle gives the bearings directly.
func (s *OpenTypeSource) RenderGlyph(r rune) (GlyphBitmap, error) {
	dr, mask, maskp, advance, ok := s.face.Glyph(fixed.P(0, 0), r)
	if !ok {
		return GlyphBitmap{}, ErrGlyphNotFound
	}

	w, h := dr.Dx(), dr.Dy()
	bm := GlyphBitmap{
		Width:    w,
		Rows:     h,
		Pitch:    alignUp(w, s.rowAlign),
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
		Advance:  int(advance),
		Format:   PixelGray8,
	}
	if w == 0 || h == 0 || mask == nil {
		// Nothing to copy; keep an empty but consistent bitmap.
		bm.Pix = make([]byte, bm.Rows*bm.Pitch)
		return bm, nil
	}

	// The face reuses its mask between calls, so copy it out.
	dst := image.NewAlpha(image.Rect(0, 0, bm.Pitch, h))
	draw.Draw(dst, image.Rect(0, 0, w, h), mask, maskp, draw.Src)
	bm.Pix = dst.Pix
	return bm, nil
}

// Close releases the face.
func (s *OpenTypeSource) Close() error {
	return s.face.Close()
}
