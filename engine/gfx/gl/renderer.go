package glbackend

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grovetext/engine/colors"
	"github.com/hubastard/grovetext/engine/core"
	"github.com/hubastard/grovetext/engine/text"
	"github.com/pkg/errors"
)

// RendererGL draws text meshes built from a glyph atlas.
type RendererGL struct {
	win      core.Window
	program  uint32
	vao      uint32
	vbo      uint32
	vboCap   int // vertices
	uVP      int32
	uTint    int32
	uAtlas   int32
	uColored int32
}

// AtlasTexture is a glyph atlas resident on the GPU.
type AtlasTexture struct {
	id            uint32
	width, height int
	format        text.PixelFormat
}

func (t *AtlasTexture) ID() uint32   { return t.id }
func (t *AtlasTexture) Width() int   { return t.width }
func (t *AtlasTexture) Height() int  { return t.height }
func (t *AtlasTexture) Delete()      { gl.DeleteTextures(1, &t.id); t.id = 0 }
func (t *AtlasTexture) colored() int { return btoi(t.format == text.PixelBGRA) }

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

// Open adapts NewRendererGL to core.Run's renderer factory.
func Open(win core.Window, cfg core.Config) (core.Renderer, error) {
	r, err := NewRendererGL(win, cfg)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return errors.Wrap(err, "text program")
	}
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	r.uTint = gl.GetUniformLocation(r.program, gl.Str("uTint\x00"))
	r.uAtlas = gl.GetUniformLocation(r.program, gl.Str("uAtlas\x00"))
	r.uColored = gl.GetUniformLocation(r.program, gl.Str("uColored\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// layout(location = 0) in vec3 aPos;
	// layout(location = 1) in vec2 aUV;
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, text.VertexStride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, text.VertexStride, unsafe.Pointer(uintptr(3*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// UploadAtlas copies the atlas bitmap into a new texture. 8-bit formats
// become single channel R8 textures; BGRA becomes RGBA8.
func (r *RendererGL) UploadAtlas(a *text.TextAtlas) (*AtlasTexture, error) {
	internal, format, err := textureFormat(a.Format())
	if err != nil {
		return nil, err
	}
	bpp := a.Format().BytesPerPixel()
	if a.Width() == 0 || a.Height() == 0 {
		return nil, errors.Wrap(text.ErrEmptyAtlas, "upload atlas")
	}

	t := &AtlasTexture{width: a.Width(), height: a.Height(), format: a.Format()}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	// Atlas rows are tightly packed bytes.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(a.Stride()/bpp))
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(a.Width()), int32(a.Height()), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(a.Pix()))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		t.Delete()
		return nil, errors.Errorf("upload atlas %dx%d: gl error 0x%x", a.Width(), a.Height(), code)
	}
	return t, nil
}

// DrawText draws a mesh produced by text.BuildTextMesh, tinted with c.
func (r *RendererGL) DrawText(tex *AtlasTexture, verts []text.Vertex, vp mgl32.Mat4, c colors.Color) error {
	if tex == nil || tex.id == 0 {
		return errors.New("draw text: no atlas texture")
	}
	if len(verts) == 0 {
		return nil
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])
	cr, cg, cb, ca := c.RGBA()
	gl.Uniform4f(r.uTint, cr, cg, cb, ca)
	gl.Uniform1i(r.uAtlas, 0)
	gl.Uniform1i(r.uColored, int32(tex.colored()))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(verts) * text.VertexStride
	if len(verts) > r.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		r.vboCap = len(verts)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	}
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Errorf("draw text (%d vertices): gl error 0x%x", len(verts), code)
	}
	return nil
}

func textureFormat(f text.PixelFormat) (internal int32, format uint32, err error) {
	switch f {
	case text.PixelGray8, text.PixelLCD, text.PixelLCDV:
		return gl.R8, gl.RED, nil
	case text.PixelBGRA:
		return gl.RGBA8, gl.BGRA, nil
	default:
		return 0, 0, errors.Wrapf(text.ErrUnsupportedPixelFormat, "upload atlas: %s", f)
	}
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}

// --- Shader utilities ---

const vertexSource = `
#version 330 core
layout(location=0) in vec3 aPos;
layout(location=1) in vec2 aUV;
uniform mat4 uVP;
out vec2 vUV;
void main() {
    vUV = aUV;
    gl_Position = uVP * vec4(aPos, 1.0);
}
` + "\x00"

const fragmentSource = `
#version 330 core
in vec2 vUV;
uniform sampler2D uAtlas;
uniform vec4 uTint;
uniform int uColored;
out vec4 FragColor;
void main() {
    vec4 s = texture(uAtlas, vUV);
    if (uColored == 1) {
        FragColor = s * vec4(1.0, 1.0, 1.0, uTint.a);
    } else {
        FragColor = vec4(uTint.rgb, uTint.a * s.r);
    }
}
` + "\x00"

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, errors.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, errors.Wrap(err, "vertex shader")
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, errors.Wrap(err, "fragment shader")
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, errors.Errorf("program link error: %s", log)
	}
	return prog, nil
}
