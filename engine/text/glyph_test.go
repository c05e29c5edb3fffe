package text

import (
	"image"
	"testing"
)

func TestGlyphRect_Normalized(t *testing.T) {
	r := GlyphRect{TopLeft: image.Pt(8, 2), BottomRight: image.Pt(13, 7)}
	uv := r.Normalized(10, 14)

	if uv.U0 != 8.0/14 || uv.V0 != 2.0/10 {
		t.Errorf("expected top-left (%v,%v), got (%v,%v)", 8.0/14, 2.0/10, uv.U0, uv.V0)
	}
	if uv.U1 != 13.0/14 || uv.V1 != 7.0/10 {
		t.Errorf("expected bottom-right (%v,%v), got (%v,%v)", 13.0/14, 7.0/10, uv.U1, uv.V1)
	}
}

func TestGlyphRect_NormalizedEmptyIsCollapsed(t *testing.T) {
	r := newGlyphRect(14, 8, 0, 0)
	uv := r.Normalized(10, 14)

	if uv.U0 != 1 || uv.V0 != 0.8 {
		t.Errorf("expected top-left (1,0.8), got (%v,%v)", uv.U0, uv.V0)
	}
	if uv.U1 != uv.U0 || uv.V1 != uv.V0 {
		t.Errorf("expected collapsed rect, got %+v", uv)
	}
}

func TestUVRect_DenormalizeRoundTrip(t *testing.T) {
	sizes := [][2]int{{10, 14}, {37, 1913}, {64, 4096}, {3, 7}}
	for _, hw := range sizes {
		h, w := hw[0], hw[1]
		for x := 0; x < w; x += max(1, w/17) {
			for y := 0; y < h; y += max(1, h/5) {
				r := GlyphRect{TopLeft: image.Pt(x, y), BottomRight: image.Pt(w-1, h-1)}
				got := r.Normalized(h, w).Denormalize(h, w)
				if got != r {
					t.Fatalf("%dx%d: expected %v, got %v", w, h, r, got)
				}
			}
		}
	}
}

func TestGlyphRect_SizeAndEmpty(t *testing.T) {
	tests := []struct {
		w, h  int
		empty bool
	}{
		{8, 10, false},
		{1, 1, false},
		{0, 0, true},
		{0, 5, true},
		{5, 0, true},
	}
	for _, tt := range tests {
		r := newGlyphRect(3, 4, tt.w, tt.h)
		if w, h := r.Size(); w != tt.w || h != tt.h {
			t.Errorf("expected size %dx%d, got %dx%d", tt.w, tt.h, w, h)
		}
		if r.Empty() != tt.empty {
			t.Errorf("%dx%d: expected empty=%v", tt.w, tt.h, tt.empty)
		}
	}
}

func TestGlyphDescriptor_AdvancePxTruncates(t *testing.T) {
	d := GlyphDescriptor{Advance: 7<<6 + 63}
	if d.AdvancePx() != 7 {
		t.Errorf("expected 7, got %d", d.AdvancePx())
	}
}
