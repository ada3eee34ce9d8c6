package assets

import (
	"fmt"
	"os"
)

// LoadFont reads a TrueType or OpenType file.
func LoadFont(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("load font %q: empty file", path)
	}
	return b, nil
}
