package text

// TextAtlas is a single-row glyph atlas: every glyph sits side by side on one
// horizontal strip with all baselines on row MaxAscent. The pixel buffer is
// row-major with Stride bytes per row and no extra padding.
type TextAtlas struct {
	descriptors []GlyphDescriptor
	rects       []GlyphRect
	index       map[rune]int
	pix         []byte
	format      PixelFormat
	width       int // texels
	height      int
	stride      int // bytes, == sum of pitches
	maxAscent   int
	maxDescent  int
}

// PackAtlas lays the glyphs of store out left to right. Each glyph starts
// where the previous one's pitch ended and is lowered so its baseline lands
// on row MaxAscent; its rows are copied verbatim, padding included.
func PackAtlas(store *LinearGlyphStore) (*TextAtlas, error) {
	stride := store.SumPitch()
	height := store.MaxAscent() + store.MaxDescent()
	if stride == 0 || height == 0 {
		return nil, ErrEmptyAtlas
	}
	bpp := store.Format().BytesPerPixel()

	src := store.Bytes()
	a := &TextAtlas{
		descriptors: make([]GlyphDescriptor, len(store.Descriptors())),
		rects:       make([]GlyphRect, len(store.Descriptors())),
		index:       make(map[rune]int, len(store.Descriptors())),
		pix:         make([]byte, stride*height),
		format:      store.Format(),
		width:       stride / bpp,
		height:      height,
		stride:      stride,
		maxAscent:   store.MaxAscent(),
		maxDescent:  store.MaxDescent(),
	}

	xStart := 0
	for i, d := range store.Descriptors() {
		y := a.maxAscent - d.BearingY
		for row := 0; row < d.Height; row++ {
			dst := (y+row)*stride + xStart
			s := d.Offset + row*d.Pitch
			copy(a.pix[dst:dst+d.Pitch], src[s:s+d.Pitch])
		}

		a.rects[i] = newGlyphRect(xStart/bpp, y, d.Width, d.Height)
		d.Offset = xStart
		a.descriptors[i] = d
		a.index[d.Rune] = i

		xStart += d.Pitch
	}

	Logger().Debug("text: atlas packed",
		"width", a.width, "height", a.height, "stride", a.stride, "glyphs", len(a.descriptors))
	return a, nil
}

// Width is the atlas width in texels.
func (a *TextAtlas) Width() int { return a.width }

// Height is the atlas height in rows.
func (a *TextAtlas) Height() int { return a.height }

// Stride is the byte length of one atlas row.
func (a *TextAtlas) Stride() int { return a.stride }

// Pix returns the packed pixel buffer of Stride*Height bytes.
func (a *TextAtlas) Pix() []byte { return a.pix }

func (a *TextAtlas) Format() PixelFormat { return a.format }
func (a *TextAtlas) MaxAscent() int      { return a.maxAscent }
func (a *TextAtlas) MaxDescent() int     { return a.maxDescent }

// Descriptors returns glyph descriptors in atlas order. Offset is the glyph's
// byte column in the atlas.
func (a *TextAtlas) Descriptors() []GlyphDescriptor { return a.descriptors }

// Rects returns glyph rects, parallel to Descriptors.
func (a *TextAtlas) Rects() []GlyphRect { return a.rects }

// Glyph looks up r in the atlas charset.
func (a *TextAtlas) Glyph(r rune) (GlyphDescriptor, GlyphRect, error) {
	i, ok := a.index[r]
	if !ok {
		return GlyphDescriptor{}, GlyphRect{}, glyphErr(r, ErrCharacterOutOfRange)
	}
	return a.descriptors[i], a.rects[i], nil
}

// UV returns the normalized texture rect of r.
func (a *TextAtlas) UV(r rune) (UVRect, error) {
	_, rect, err := a.Glyph(r)
	if err != nil {
		return UVRect{}, err
	}
	return rect.Normalized(a.height, a.width), nil
}
