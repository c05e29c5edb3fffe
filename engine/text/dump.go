package text

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Image returns the atlas as an image. Gray8-style formats share the atlas
// buffer; BGRA is swizzled into a new RGBA image.
func (a *TextAtlas) Image() image.Image {
	rect := image.Rect(0, 0, a.width, a.height)
	if a.format != PixelBGRA {
		return &image.Gray{Pix: a.pix, Stride: a.stride, Rect: rect}
	}

	img := image.NewRGBA(rect)
	for i := 0; i+3 < len(a.pix); i += 4 {
		img.Pix[i+0] = a.pix[i+2]
		img.Pix[i+1] = a.pix[i+1]
		img.Pix[i+2] = a.pix[i+0]
		img.Pix[i+3] = a.pix[i+3]
	}
	return img
}

// ImageFormat selects the encoder used by Encode.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatBMP
	FormatTIFF
)

// ImageFormatFromPath picks an encoder from the file extension.
func ImageFormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("text: unsupported image extension %q", filepath.Ext(path))
}

// Encode writes the atlas image to w.
func (a *TextAtlas) Encode(w io.Writer, format ImageFormat) error {
	img := a.Image()
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("text: unknown image format %d", format)
}

// SaveImage writes the atlas to path for inspection, in the format implied
// by the extension.
func (a *TextAtlas) SaveImage(path string) error {
	format, err := ImageFormatFromPath(path)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("text: create %q: %w", tmp, err)
	}
	if err := a.Encode(f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("text: encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
