// Package scene loads declarative widget scenes from YAML and builds them into a
// ui.Context.
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/sprig/engine/assets"
	"github.com/hubastard/sprig/engine/colors"
	"github.com/hubastard/sprig/engine/core"
	"github.com/hubastard/sprig/engine/text"
	"github.com/hubastard/sprig/engine/ui"
)

//go:embed default.yaml
var defaultScene []byte

const (
	DefaultTitle  = "sprig"
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Scene struct {
	Window  Window   `yaml:"window"`
	Fonts   []Font   `yaml:"fonts" validate:"dive"`
	Groups  []Group  `yaml:"groups" validate:"dive"`
	Buttons []Button `yaml:"buttons" validate:"dive"`

	// Dir resolves relative font paths. Load sets it to the file's directory.
	Dir string `yaml:"-"`
}

type Window struct {
	Title      string `yaml:"title" validate:"required"`
	Width      int    `yaml:"width" validate:"gte=1"`
	Height     int    `yaml:"height" validate:"gte=1"`
	Background string `yaml:"background" validate:"omitempty,color"`
	VSync      bool   `yaml:"vsync"`
}

// Font registers an extra font family from a TTF/OTF file.
type Font struct {
	Family string `yaml:"family" validate:"required"`
	Path   string `yaml:"path" validate:"required"`
}

type Group struct {
	Key    int    `yaml:"key"`
	Layout string `yaml:"layout" validate:"omitempty,layout"`
}

// Button describes one button, added Copies times (at least once). Empty style
// fields keep the ui.NewButton defaults.
type Button struct {
	Group       int     `yaml:"group"`
	Copies      int     `yaml:"copies" validate:"gte=0"`
	Label       string  `yaml:"label"`
	Font        string  `yaml:"font"`
	FontSize    float32 `yaml:"font_size" validate:"gte=0"`
	FontColor   string  `yaml:"font_color" validate:"omitempty,color"`
	Color       string  `yaml:"color" validate:"omitempty,color"`
	BorderColor string  `yaml:"border_color" validate:"omitempty,color"`
	BorderSize  int     `yaml:"border_size" validate:"gte=0"`
	X           int     `yaml:"x"`
	Y           int     `yaml:"y"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
}

// Load reads, parses and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %q: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	s.Dir = filepath.Dir(path)
	return s, nil
}

// Parse decodes a scene, fills window defaults and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	s.applyDefaults()
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Default is the built-in example scene.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default: %v", err))
	}
	return s
}

func (s *Scene) applyDefaults() {
	if s.Window.Title == "" {
		s.Window.Title = DefaultTitle
	}
	if s.Window.Width == 0 {
		s.Window.Width = DefaultWidth
	}
	if s.Window.Height == 0 {
		s.Window.Height = DefaultHeight
	}
}

// Config is the window configuration for core.Run.
func (s *Scene) Config() core.Config {
	return core.Config{
		Title:  s.Window.Title,
		Width:  s.Window.Width,
		Height: s.Window.Height,
		VSync:  s.Window.VSync,
	}
}

// Background is the window background, white when unset.
func (s *Scene) Background() colors.Color {
	if s.Window.Background == "" {
		return colors.White
	}
	return colors.MustParse(s.Window.Background)
}

// Build registers the scene's fonts and populates ctx. cb, when not nil, is set
// on every button.
func (s *Scene) Build(ctx *ui.Context, fonts *text.Fonts, cb ui.ButtonCallback) error {
	for _, f := range s.Fonts {
		path := f.Path
		if !filepath.IsAbs(path) && s.Dir != "" {
			path = filepath.Join(s.Dir, path)
		}
		ttf, err := assets.LoadFont(path)
		if err != nil {
			return err
		}
		if err := fonts.Register(f.Family, ttf); err != nil {
			return fmt.Errorf("font %q: %w", f.Family, err)
		}
	}

	ctx.SetBackground(s.Background())
	for _, g := range s.Groups {
		mode, _ := ui.ParseLayoutMode(g.Layout)
		ctx.SetLayoutType(g.Key, mode)
	}
	for _, b := range s.Buttons {
		tmpl := b.widget()
		if cb != nil {
			tmpl.Callback(cb)
		}
		for i := 0; i < max(b.Copies, 1); i++ {
			ctx.AddWidget(tmpl, b.Group)
		}
	}
	return nil
}

func (b Button) widget() *ui.Button {
	w := ui.NewButton(b.Label).Rect(b.X, b.Y, b.Width, b.Height)
	if b.Font != "" {
		w.Font(b.Font)
	}
	if b.FontSize > 0 {
		w.FontSize(b.FontSize)
	}
	if b.FontColor != "" {
		w.TextColor(colors.MustParse(b.FontColor))
	}
	if b.Color != "" {
		w.BgColor(colors.MustParse(b.Color))
	}
	borderColor := w.Style.BorderColor
	if b.BorderColor != "" {
		borderColor = colors.MustParse(b.BorderColor)
	}
	return w.Border(borderColor, b.BorderSize)
}
