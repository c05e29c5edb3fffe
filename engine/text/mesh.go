package text

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one corner of a text quad: position then texture coordinate.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// VertexStride is the size of a Vertex in bytes.
const VertexStride = 5 * 4

// VerticesPerGlyph is the number of vertices emitted per character: two
// triangles, no index buffer.
const VerticesPerGlyph = 6

// BuildTextMesh lays s out on a baseline starting at anchor (the pen origin)
// and returns a triangle list with one quad per rune. Y grows upward. The pen
// moves by each glyph's advance truncated to whole pixels.
//
// Zero-sized glyphs still produce a (degenerate) quad, so the result always
// holds VerticesPerGlyph vertices per rune. A rune outside the atlas charset
// fails the whole call.
func BuildTextMesh(atlas *TextAtlas, s string, anchor mgl32.Vec2) ([]Vertex, error) {
	verts := make([]Vertex, 0, len(s)*VerticesPerGlyph)

	penX, penY := anchor.X(), anchor.Y()
	for _, r := range s {
		d, rect, err := atlas.Glyph(r)
		if err != nil {
			return nil, err
		}
		uv := rect.Normalized(atlas.height, atlas.width)

		x0 := penX + float32(d.BearingX)
		y0 := penY - float32(d.Descent())
		x1 := x0 + float32(d.Width)
		y1 := y0 + float32(d.Height)

		tl := Vertex{Position: mgl32.Vec3{x0, y1, 0}, UV: mgl32.Vec2{uv.U0, uv.V0}}
		bl := Vertex{Position: mgl32.Vec3{x0, y0, 0}, UV: mgl32.Vec2{uv.U0, uv.V1}}
		br := Vertex{Position: mgl32.Vec3{x1, y0, 0}, UV: mgl32.Vec2{uv.U1, uv.V1}}
		tr := Vertex{Position: mgl32.Vec3{x1, y1, 0}, UV: mgl32.Vec2{uv.U1, uv.V0}}
		verts = append(verts, tl, bl, br, br, tr, tl)

		penX += float32(d.AdvancePx())
	}
	return verts, nil
}

// MeasureText returns the pixel width of s as BuildTextMesh would advance
// the pen, and the atlas line height.
func MeasureText(atlas *TextAtlas, s string) (width, height int, err error) {
	for _, r := range s {
		d, _, err := atlas.Glyph(r)
		if err != nil {
			return 0, 0, err
		}
		width += d.AdvancePx()
	}
	return width, atlas.height, nil
}
