package weapons

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed data/*.yaml
var DataFS embed.FS

// Read returns the definition for name, preferring a file in dir over the
// embedded copy. An empty dir reads the embedded copy only.
func Read(dir, name string) ([]byte, error) {
	file := fileName(name)
	if dir != "" {
		data, err := os.ReadFile(filepath.Join(dir, file))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return DataFS.ReadFile("data/" + file)
}

// Names lists every weapon available from the embedded data and dir.
func Names(dir string) []string {
	seen := make(map[string]struct{})
	entries, _ := DataFS.ReadDir("data")
	for _, e := range entries {
		if isSpecFile(e.Name()) {
			seen[nameOf(e.Name())] = struct{}{}
		}
	}
	if dir != "" {
		if entries, err := os.ReadDir(dir); err == nil {
			for _, e := range entries {
				if !e.IsDir() && isSpecFile(e.Name()) {
					seen[nameOf(e.Name())] = struct{}{}
				}
			}
		}
	}
	return sortedNames(seen)
}

func fileName(name string) string {
	if isSpecFile(name) {
		return filepath.Base(name)
	}
	return name + ".yaml"
}

func nameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
