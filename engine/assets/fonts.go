package assets

import (
	"os"
	"path/filepath"
	"runtime"
)

// FontsDirEnv overrides the system font directory.
const FontsDirEnv = "GROVE_FONTS_DIR"

// FontsDir returns the directory RegisterSystem-style lookups search:
// $GROVE_FONTS_DIR when set, otherwise the platform's usual font folder.
func FontsDir() string {
	if dir := os.Getenv(FontsDirEnv); dir != "" {
		return dir
	}
	switch runtime.GOOS {
	case "windows":
		return "C:/Windows/Fonts"
	case "darwin":
		return "/Library/Fonts"
	default:
		return "/usr/share/fonts/truetype"
	}
}

// FontPath resolves a font reference. Absolute paths and paths that exist
// relative to the working directory are returned unchanged; anything else
// is looked up under assets/fonts and then FontsDir.
func FontPath(name string) string {
	if filepath.IsAbs(name) || fileExists(name) {
		return name
	}
	local := filepath.Join("assets", "fonts", name)
	if fileExists(local) {
		return local
	}
	return filepath.Join(FontsDir(), name)
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
