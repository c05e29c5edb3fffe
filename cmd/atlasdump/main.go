// Command atlasdump bakes a font into a single-row glyph atlas and writes
// it to an image file (png, bmp or tiff by extension).
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hubastard/grovetext/engine/assets"
	"github.com/hubastard/grovetext/engine/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
)

func main() {
	var (
		fontName = flag.String("font", "", "font file or name under the fonts dir (default: Go Regular)")
		face     = flag.Int("face", 0, "face index inside a collection")
		size     = flag.Float64("size", 30, "font size in points")
		dpi      = flag.Float64("dpi", 72, "resolution in dots per inch")
		align    = flag.Int("align", 1, "glyph row alignment in bytes")
		missing  = flag.String("missing", "box", "missing glyph policy: box, empty or fail")
		out      = flag.String("out", "atlas.png", "output image path")
		preview  = flag.Bool("preview", false, "print an ASCII preview of the atlas")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("atlasdump: ")

	if *verbose {
		text.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	policy, ok := text.ParseMissingGlyphPolicy(*missing)
	if !ok {
		log.Fatalf("unknown -missing policy %q", *missing)
	}
	opts := text.DefaultOptions()
	opts.Size = *size
	opts.DPI = *dpi
	opts.RowAlign = *align
	opts.MissingGlyph = policy

	fc, err := openFont(*fontName, *face, opts)
	if err != nil {
		log.Fatal(err)
	}
	defer fc.Close()

	atlas := fc.Atlas()
	if err := atlas.SaveImage(*out); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %dx%d %s, %d glyphs, ascent %d descent %d\n",
		*out, atlas.Width(), atlas.Height(), atlas.Format(),
		len(atlas.Descriptors()), atlas.MaxAscent(), atlas.MaxDescent())

	if *preview {
		width := 80
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		printPreview(os.Stdout, atlas, width)
	}
}

func openFont(name string, face int, opts *text.Options) (*text.FontContainer, error) {
	if name == "" {
		src, err := text.LoadOpenTypeSource(goregular.TTF, face, opts)
		if err != nil {
			return nil, err
		}
		return text.NewFontContainerFromSource(src, opts)
	}
	return text.NewFontContainer(assets.FontPath(name), face, opts)
}

var ramp = []byte(" .:-=+*#%@")

// printPreview renders the atlas coverage as characters, downscaled to fit
// cols columns. Multi-byte pixels use their first channel.
func printPreview(w io.Writer, atlas *text.TextAtlas, cols int) {
	bpp := atlas.Format().BytesPerPixel()
	if bpp == 0 || atlas.Width() == 0 {
		return
	}
	step := (atlas.Width() + cols - 1) / cols
	if step < 1 {
		step = 1
	}
	pix := atlas.Pix()
	var sb strings.Builder
	for y := 0; y < atlas.Height(); y += step * 2 {
		for x := 0; x < atlas.Width(); x += step {
			v := pix[y*atlas.Stride()+x*bpp]
			sb.WriteByte(ramp[int(v)*(len(ramp)-1)/255])
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
