package text

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hubastard/sprig/engine/gfx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// DefaultSize is used for fonts requested with a non-positive size.
const DefaultSize = 16

type faceKey struct {
	family string
	size   float32
}

// Fonts maps family names to parsed fonts and caches one face per (family, size).
// Not safe for concurrent use; the frame loop owns it.
type Fonts struct {
	families map[string]*opentype.Font
	names    map[string]string // lower-case key -> name as registered
	faces    map[faceKey]font.Face
}

// NewFonts returns a registry preloaded with the Go font family.
func NewFonts() (*Fonts, error) {
	f := &Fonts{
		families: make(map[string]*opentype.Font, 4),
		names:    make(map[string]string, 4),
		faces:    make(map[faceKey]font.Face, 8),
	}
	builtin := []struct {
		name string
		ttf  []byte
	}{
		{gfx.DefaultFontFamily, goregular.TTF},
		{"Go Mono", gomono.TTF},
		{"Go Bold", gobold.TTF},
	}
	for _, b := range builtin {
		if err := f.Register(b.name, b.ttf); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Register parses TrueType/OpenType data and makes it available under family.
// Registering an existing family replaces it and drops its cached faces.
func (f *Fonts) Register(family string, ttf []byte) error {
	family = strings.TrimSpace(family)
	if family == "" {
		return fmt.Errorf("register font: empty family name")
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %q: %w", family, err)
	}
	key := strings.ToLower(family)
	f.families[key] = ft
	f.names[key] = family
	for k, face := range f.faces {
		if k.family == key {
			_ = face.Close()
			delete(f.faces, k)
		}
	}
	return nil
}

// Has reports whether family was registered (case-insensitive).
func (f *Fonts) Has(family string) bool {
	_, ok := f.families[strings.ToLower(strings.TrimSpace(family))]
	return ok
}

// Families lists registered family names, sorted.
func (f *Fonts) Families() []string {
	out := make([]string, 0, len(f.names))
	for _, n := range f.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Face returns a cached face for fnt. Unknown families resolve to the default family.
func (f *Fonts) Face(fnt gfx.Font) (font.Face, error) {
	key := faceKey{family: strings.ToLower(strings.TrimSpace(fnt.Family)), size: fnt.Size}
	if _, ok := f.families[key.family]; !ok {
		key.family = strings.ToLower(gfx.DefaultFontFamily)
	}
	if key.size <= 0 {
		key.size = DefaultSize
	}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}

	ft, ok := f.families[key.family]
	if !ok {
		return nil, fmt.Errorf("font family %q not registered", fnt.Family)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(key.size), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face %q %.1fpx: %w", f.names[key.family], key.size, err)
	}
	f.faces[key] = face
	return face, nil
}

// Close releases every cached face.
func (f *Fonts) Close() {
	for k, face := range f.faces {
		_ = face.Close()
		delete(f.faces, k)
	}
}
