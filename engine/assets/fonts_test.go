package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFontsDir_EnvOverride(t *testing.T) {
	t.Setenv(FontsDirEnv, "/opt/fonts")
	if got := FontsDir(); got != "/opt/fonts" {
		t.Errorf("expected /opt/fonts, got %q", got)
	}
}

func TestFontsDir_Default(t *testing.T) {
	t.Setenv(FontsDirEnv, "")
	if FontsDir() == "" {
		t.Errorf("expected a platform default")
	}
}

func TestFontPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(FontsDirEnv, dir)

	existing := filepath.Join(dir, "here.ttf")
	if err := os.WriteFile(existing, []byte{0}, 0o644); err != nil {
		t.Fatal(err)
	}

	if got := FontPath(existing); got != existing {
		t.Errorf("expected existing path unchanged, got %q", got)
	}
	if got, want := FontPath("Arial.ttf"), filepath.Join(dir, "Arial.ttf"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
