package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed models materials scripts ui a1c-splash.png
var assetsFS embed.FS

// Source reads asset files by URL.
type Source interface {
	ReadFile(url string) ([]byte, error)
}

// FS reads from Dir on disk when set and the file exists there, falling
// back to the embedded assets.
type FS struct {
	Dir string
}

func (f FS) ReadFile(url string) ([]byte, error) {
	clean := cleanAssetPath(url)
	if f.Dir != "" {
		if data, err := os.ReadFile(filepath.Join(f.Dir, filepath.FromSlash(clean))); err == nil {
			return data, nil
		}
	}
	return assetsFS.ReadFile(clean)
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) || strings.HasPrefix(s, "/") {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	for _, prefix := range []string{"../assets/", "./assets/", "assets/"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			return after
		}
	}
	return s
}
