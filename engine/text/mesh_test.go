package text

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuildTextMesh_VertexCountAndAdvance(t *testing.T) {
	atlas := packABSpace(t)

	verts, err := BuildTextMesh(atlas, "AB", mgl32.Vec2{0, 0})
	if err != nil {
		t.Fatalf("BuildTextMesh: %v", err)
	}
	if len(verts) != 12 {
		t.Fatalf("expected 12 vertices, got %d", len(verts))
	}

	dA, _, _ := atlas.Glyph('A')
	dB, _, _ := atlas.Glyph('B')
	// Left edges differ by A's advance plus the change in bearing.
	want := float32(dA.AdvancePx() + dB.BearingX - dA.BearingX)
	if got := verts[6].Position.X() - verts[0].Position.X(); got != want {
		t.Errorf("expected second quad offset %v, got %v", want, got)
	}
}

func TestBuildTextMesh_QuadGeometry(t *testing.T) {
	atlas := packABSpace(t)

	verts, err := BuildTextMesh(atlas, "B", mgl32.Vec2{100, 50})
	if err != nil {
		t.Fatalf("BuildTextMesh: %v", err)
	}
	uv, _ := atlas.UV('B')

	// B: width 6, height 6, bearing (1,6) -> spans x 101..107, y 50..56.
	tl := Vertex{Position: mgl32.Vec3{101, 56, 0}, UV: mgl32.Vec2{uv.U0, uv.V0}}
	bl := Vertex{Position: mgl32.Vec3{101, 50, 0}, UV: mgl32.Vec2{uv.U0, uv.V1}}
	br := Vertex{Position: mgl32.Vec3{107, 50, 0}, UV: mgl32.Vec2{uv.U1, uv.V1}}
	tr := Vertex{Position: mgl32.Vec3{107, 56, 0}, UV: mgl32.Vec2{uv.U1, uv.V0}}
	want := []Vertex{tl, bl, br, br, tr, tl}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("vertex %d: expected %+v, got %+v", i, want[i], verts[i])
		}
	}
}

func TestBuildTextMesh_DescenderBelowBaseline(t *testing.T) {
	atlas := packABSpace(t)

	verts, err := BuildTextMesh(atlas, "A", mgl32.Vec2{0, 20})
	if err != nil {
		t.Fatalf("BuildTextMesh: %v", err)
	}
	// A has height 10 and bearing 8: bottom sits 2px under the baseline.
	if verts[1].Position.Y() != 18 || verts[0].Position.Y() != 28 {
		t.Errorf("expected y span 18..28, got %v..%v", verts[1].Position.Y(), verts[0].Position.Y())
	}
}

func TestBuildTextMesh_SpaceEmitsDegenerateQuad(t *testing.T) {
	atlas := packABSpace(t)

	verts, err := BuildTextMesh(atlas, " A", mgl32.Vec2{0, 0})
	if err != nil {
		t.Fatalf("BuildTextMesh: %v", err)
	}
	if len(verts) != 12 {
		t.Fatalf("expected 12 vertices, got %d", len(verts))
	}
	for _, v := range verts[:6] {
		if v.Position != verts[0].Position {
			t.Fatalf("expected degenerate quad for space, got %+v", verts[:6])
		}
	}
	if verts[6].Position.X() != 5 {
		t.Errorf("expected 'A' after a 5px space, got x=%v", verts[6].Position.X())
	}
}

func TestBuildTextMesh_FractionalAdvanceTruncated(t *testing.T) {
	atlas := packABSpace(t)

	// B advances 7.5px, truncated to 7.
	verts, err := BuildTextMesh(atlas, "BB", mgl32.Vec2{0, 0})
	if err != nil {
		t.Fatalf("BuildTextMesh: %v", err)
	}
	if got := verts[6].Position.X() - verts[0].Position.X(); got != 7 {
		t.Errorf("expected 7px step, got %v", got)
	}
}

func TestBuildTextMesh_OutOfRange(t *testing.T) {
	atlas := packABSpace(t)

	verts, err := BuildTextMesh(atlas, "A€B", mgl32.Vec2{0, 0})
	if !errors.Is(err, ErrCharacterOutOfRange) {
		t.Fatalf("expected ErrCharacterOutOfRange, got %v", err)
	}
	var ge *GlyphError
	if !errors.As(err, &ge) || ge.Rune != '€' {
		t.Errorf("expected GlyphError for '€', got %v", err)
	}
	if verts != nil {
		t.Errorf("expected no vertices on error, got %d", len(verts))
	}
}

func TestMeasureText(t *testing.T) {
	atlas := packABSpace(t)

	w, h, err := MeasureText(atlas, "AB A")
	if err != nil {
		t.Fatalf("MeasureText: %v", err)
	}
	if w != 9+7+5+9 || h != 10 {
		t.Errorf("expected 30x10, got %dx%d", w, h)
	}
	if _, _, err := MeasureText(atlas, "?"); !errors.Is(err, ErrCharacterOutOfRange) {
		t.Errorf("expected ErrCharacterOutOfRange, got %v", err)
	}
}
