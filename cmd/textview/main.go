// Command textview opens a window and draws typed text with a glyph atlas.
// Tab switches font, Up/Down zoom, Backspace deletes, Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/faiface/mainthread"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/grovetext/engine/assets"
	"github.com/hubastard/grovetext/engine/colors"
	"github.com/hubastard/grovetext/engine/core"
	glbackend "github.com/hubastard/grovetext/engine/gfx/gl"
	"github.com/hubastard/grovetext/engine/platform"
	"github.com/hubastard/grovetext/engine/scene"
	"github.com/hubastard/grovetext/engine/text"
	"golang.org/x/image/font/gofont/goregular"
)

const margin = 20

type App struct {
	fonts   *text.FontRegistry
	current text.FontID
	gl      *glbackend.RendererGL
	tex     []*glbackend.AtlasTexture
	cam     *scene.OrthoCamera2D
	mesh    []text.Vertex
	status  []text.Vertex
	dirty   bool
	initial string
}

func (a *App) OnStart(e *core.Engine) {
	a.gl = e.Renderer.(*glbackend.RendererGL)
	e.Input = core.NewTextInput(a.initial, 256)
	for id := 0; id < a.fonts.Len(); id++ {
		fc, err := a.fonts.Get(text.FontID(id))
		if err != nil {
			log.Fatal(err)
		}
		tex, err := a.gl.UploadAtlas(fc.Atlas())
		if err != nil {
			log.Fatal(err)
		}
		a.tex = append(a.tex, tex)
	}
	w, h := e.Window.FramebufferSize()
	a.cam = scene.NewOrtho2D(w, h)
	a.dirty = true
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	if !a.dirty {
		return
	}
	a.dirty = false

	fc, err := a.fonts.Get(a.current)
	if err != nil {
		log.Fatal(err)
	}
	atlas := fc.Atlas()
	_, h := e.Window.FramebufferSize()
	top := float32(h - margin - atlas.MaxAscent())

	a.mesh, err = text.BuildTextMesh(atlas, e.Input.String(), mgl32.Vec2{margin, top})
	if err != nil {
		log.Printf("layout: %v", err)
		a.mesh = nil
	}
	status := fmt.Sprintf("%s  %d chars", a.fonts.Name(a.current), e.Input.Len())
	a.status, err = text.BuildTextMesh(atlas, status, mgl32.Vec2{margin, float32(margin + atlas.MaxDescent())})
	if err != nil {
		a.status = nil
	}
	e.Window.SetTitle("textview - " + a.fonts.Name(a.current))
}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	tex := a.tex[a.current]
	vp := a.cam.VP()
	if err := a.gl.DrawText(tex, a.mesh, vp, colors.White); err != nil {
		log.Print(err)
	}
	if err := a.gl.DrawText(tex, a.status, vp, colors.Gray); err != nil {
		log.Print(err)
	}
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch ev := ev.(type) {
	case core.EventResize:
		if ev.W >= 1 && ev.H >= 1 {
			a.cam.SetViewportPixels(ev.W, ev.H)
			a.dirty = true
		}
	case core.EventKey:
		if !ev.Down {
			break
		}
		switch ev.Key {
		case core.KeyEscape:
			e.Window.RequestClose()
		case core.KeyTab:
			a.current = text.FontID((int(a.current) + 1) % a.fonts.Len())
			a.dirty = true
		case core.KeyUp:
			a.cam.SetZoom(a.cam.Zoom * 1.25)
		case core.KeyDown:
			a.cam.SetZoom(a.cam.Zoom / 1.25)
		default:
			a.dirty = e.Input.Handle(ev) || a.dirty
		}
	case core.EventChar:
		fc, err := a.fonts.Get(a.current)
		if err != nil {
			return
		}
		// Only accept characters the atlas can draw.
		if _, _, err := fc.Atlas().Glyph(ev.Rune); err != nil {
			return
		}
		a.dirty = e.Input.Handle(ev) || a.dirty
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	for _, t := range a.tex {
		t.Delete()
	}
	if err := a.fonts.Close(); err != nil {
		log.Print(err)
	}
}

// loadFonts registers Go Regular and, when path is set, the font at path.
func loadFonts(path string, size float64) (*text.FontRegistry, error) {
	opts := text.DefaultOptions()
	opts.Size = size
	reg := text.NewFontRegistry(opts)

	src, err := text.LoadOpenTypeSource(goregular.TTF, 0, opts)
	if err != nil {
		return nil, err
	}
	if _, err := reg.RegisterSource("go-regular", src); err != nil {
		return nil, err
	}
	if path != "" {
		if _, err := reg.Register(filepath.Base(path), assets.FontPath(path)); err != nil {
			return nil, errors.Join(err, reg.Close())
		}
	}
	return reg, nil
}

func main() {
	mainthread.Run(run)
}

func run() {
	var (
		fontPath = flag.String("font", "", "font file (default: Go Regular)")
		size     = flag.Float64("size", 24, "font size in points")
		initial  = flag.String("text", "Hello, world", "initial text")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()
	if *verbose {
		text.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// Glyph rasterization needs no GL context and runs off the main thread.
	fonts, err := loadFonts(*fontPath, *size)
	if err != nil {
		log.Fatal(err)
	}

	cfg := core.Config{
		Title:      "textview",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: colors.DarkGray,
	}
	app := &App{fonts: fonts, initial: *initial}

	mainthread.Call(func() {
		err = core.Run(app, cfg, platform.Open, glbackend.Open)
	})
	if err != nil {
		log.Fatal(err)
	}
}
