package text

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hubastard/grovetext/engine/assets"
)

// FontID identifies a font in a FontRegistry.
type FontID int

// FontRegistry maps font names to built FontContainers. It only grows: fonts
// are never evicted and a name can be registered once.
//
// A FontRegistry is not safe for concurrent use; callers serialize access.
type FontRegistry struct {
	opts   *Options
	fonts  []*FontContainer
	byName map[string]FontID
	names  []string
}

// NewFontRegistry creates an empty registry whose fonts are built with opts.
func NewFontRegistry(opts *Options) *FontRegistry {
	return &FontRegistry{
		opts:   opts.withDefaults(),
		byName: make(map[string]FontID),
	}
}

// Register loads face 0 of the font at path under name.
func (fr *FontRegistry) Register(name, path string) (FontID, error) {
	return fr.RegisterFace(name, path, 0)
}

// RegisterFace loads face faceIndex of the font at path under name.
func (fr *FontRegistry) RegisterFace(name, path string, faceIndex int) (FontID, error) {
	if _, ok := fr.byName[name]; ok {
		return 0, fmt.Errorf("%w: %q", ErrFontExists, name)
	}
	fc, err := NewFontContainer(path, faceIndex, fr.opts)
	if err != nil {
		return 0, err
	}
	return fr.add(name, fc), nil
}

// RegisterSystem loads the font file called name from the system font
// directory (see assets.FontsDir).
func (fr *FontRegistry) RegisterSystem(name string, faceIndex int) (FontID, error) {
	return fr.RegisterFace(name, filepath.Join(assets.FontsDir(), name), faceIndex)
}

// RegisterSource builds a font from an already opened glyph source. The
// registry takes ownership of src and closes it if registration fails.
func (fr *FontRegistry) RegisterSource(name string, src GlyphSource) (FontID, error) {
	if _, ok := fr.byName[name]; ok {
		return 0, closeSource(src, fmt.Errorf("%w: %q", ErrFontExists, name))
	}
	fc, err := NewFontContainerFromSource(src, fr.opts)
	if err != nil {
		return 0, err
	}
	return fr.add(name, fc), nil
}

func (fr *FontRegistry) add(name string, fc *FontContainer) FontID {
	id := FontID(len(fr.fonts))
	fr.fonts = append(fr.fonts, fc)
	fr.names = append(fr.names, name)
	fr.byName[name] = id
	Logger().Info("text: font registered", "name", name, "id", int(id),
		"atlasWidth", fc.atlas.width, "atlasHeight", fc.atlas.height)
	return id
}

// Get returns the container registered under id.
func (fr *FontRegistry) Get(id FontID) (*FontContainer, error) {
	if id < 0 || int(id) >= len(fr.fonts) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownFont, id)
	}
	return fr.fonts[id], nil
}

// Lookup returns the id registered for name.
func (fr *FontRegistry) Lookup(name string) (FontID, bool) {
	id, ok := fr.byName[name]
	return id, ok
}

// Name returns the name id was registered under.
func (fr *FontRegistry) Name(id FontID) string {
	if id < 0 || int(id) >= len(fr.names) {
		return ""
	}
	return fr.names[id]
}

// Len reports how many fonts are registered.
func (fr *FontRegistry) Len() int { return len(fr.fonts) }

// Close closes every registered face. Atlases remain valid.
func (fr *FontRegistry) Close() error {
	var errs []error
	for _, fc := range fr.fonts {
		if err := fc.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
