package textsurface

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a saved surface.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown surface format for %q", path)
	}
}

// SurfaceFile is the persisted form of an AnimatedSurface.
// Colors are "#rrggbbaa" strings; an empty color means the frame default.
// Effects are not persisted.
type SurfaceFile struct {
	Name              string      `json:"name" yaml:"name" toml:"name"`
	Width             int         `json:"width" yaml:"width" toml:"width"`
	Height            int         `json:"height" yaml:"height" toml:"height"`
	AnimationDuration string      `json:"animation_duration,omitempty" yaml:"animation_duration,omitempty" toml:"animation_duration,omitempty"`
	Repeat            bool        `json:"repeat" yaml:"repeat" toml:"repeat"`
	Center            PointFile   `json:"center" yaml:"center" toml:"center"`
	Font              FontFile    `json:"font" yaml:"font" toml:"font"`
	Frames            []FrameFile `json:"frames" yaml:"frames" toml:"frames"`
}

// PointFile is a persisted Point.
type PointFile struct {
	X int `json:"x" yaml:"x" toml:"x"`
	Y int `json:"y" yaml:"y" toml:"y"`
}

// FontFile is a persisted FontRef.
type FontFile struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Size string `json:"size,omitempty" yaml:"size,omitempty" toml:"size,omitempty"`
}

// FrameFile is one persisted frame. Cells are row-major.
type FrameFile struct {
	DefaultForeground string     `json:"default_foreground,omitempty" yaml:"default_foreground,omitempty" toml:"default_foreground,omitempty"`
	DefaultBackground string     `json:"default_background,omitempty" yaml:"default_background,omitempty" toml:"default_background,omitempty"`
	Cells             []CellFile `json:"cells" yaml:"cells" toml:"cells"`
}

// CellFile is one persisted cell.
type CellFile struct {
	Glyph string    `json:"glyph" yaml:"glyph" toml:"glyph"`
	Fg    string    `json:"fg,omitempty" yaml:"fg,omitempty" toml:"fg,omitempty"`
	Bg    string    `json:"bg,omitempty" yaml:"bg,omitempty" toml:"bg,omitempty"`
	Flags CellFlags `json:"flags,omitempty" yaml:"flags,omitempty" toml:"flags,omitempty"`
}

// NewSurfaceFile captures the persisted form of a.
func NewSurfaceFile(a *AnimatedSurface) *SurfaceFile {
	f := &SurfaceFile{
		Name:   a.name,
		Width:  a.width,
		Height: a.height,
		Repeat: a.Repeat,
		Center: PointFile{X: a.Center.X, Y: a.Center.Y},
		Font:   FontFile{Name: a.Font.Name, Size: a.Font.Size.String()},
		Frames: make([]FrameFile, 0, len(a.frames)),
	}
	if a.duration != 0 {
		f.AnimationDuration = a.duration.String()
	}

	for _, g := range a.frames {
		frame := FrameFile{
			DefaultForeground: colorToHex(g.DefaultForeground),
			DefaultBackground: colorToHex(g.DefaultBackground),
			Cells:             make([]CellFile, len(g.cells)),
		}
		for i := range g.cells {
			c := &g.cells[i]
			frame.Cells[i] = CellFile{
				Glyph: glyphToString(c.Glyph),
				Fg:    colorToHex(c.Foreground),
				Bg:    colorToHex(c.Background),
				Flags: c.Flags &^ CellFlagDirty,
			}
		}
		f.Frames = append(f.Frames, frame)
	}
	return f
}

// LoadOption configures Load and LoadFile.
type LoadOption func(*loadOptions)

type loadOptions struct {
	resolver FontResolver
}

// WithFontResolver resolves the persisted font reference. Without it, or when
// resolution fails, the default face is used.
func WithFontResolver(r FontResolver) LoadOption {
	return func(o *loadOptions) {
		o.resolver = r
	}
}

// Surface rebuilds an AnimatedSurface from the persisted form.
func (f *SurfaceFile) Surface(opts ...LoadOption) (*AnimatedSurface, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	if f.Width < 0 || f.Height < 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", f.Width, f.Height)
	}

	a := NewAnimatedSurface(f.Name, f.Width, f.Height)
	a.Repeat = f.Repeat
	a.Center = Point{X: f.Center.X, Y: f.Center.Y}

	if f.AnimationDuration != "" {
		d, err := time.ParseDuration(f.AnimationDuration)
		if err != nil {
			return nil, fmt.Errorf("animation duration: %w", err)
		}
		a.duration = d
	}

	// An unknown size class is treated like an unresolvable font.
	size, _ := ParseFontSize(f.Font.Size)
	a.Font = FontRef{Name: f.Font.Name, Size: size}
	a.face = ResolveFace(o.resolver, a.Font)

	frames := make([]*Grid, 0, len(f.Frames))
	for i := range f.Frames {
		g, err := f.Frames[i].grid(f.Width, f.Height)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, g)
	}
	a.SetFrames(frames)
	return a, nil
}

func (ff *FrameFile) grid(width, height int) (*Grid, error) {
	fg, err := hexToColor(ff.DefaultForeground)
	if err != nil {
		return nil, err
	}
	bg, err := hexToColor(ff.DefaultBackground)
	if err != nil {
		return nil, err
	}

	g := NewGridWithColors(width, height, fg, bg)
	if len(ff.Cells) != g.CellCount() {
		return nil, fmt.Errorf("%d cells, want %d", len(ff.Cells), g.CellCount())
	}

	for i, cf := range ff.Cells {
		c := &g.cells[i]
		c.Glyph = stringToGlyph(cf.Glyph)
		if c.Foreground, err = hexToColor(cf.Fg); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if c.Background, err = hexToColor(cf.Bg); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		c.Flags = cf.Flags &^ CellFlagDirty
		c.RestoreActual()
	}
	return g, nil
}

func glyphToString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

func stringToGlyph(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Save encodes the surface in the given format.
func (a *AnimatedSurface) Save(w io.Writer, format Format) error {
	f := NewSurfaceFile(a)
	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(f)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(f); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(f)
	default:
		return fmt.Errorf("unknown surface format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// SaveFile writes the surface to path, choosing the format from its extension.
func (a *AnimatedSurface) SaveFile(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Save(out, format); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Load decodes a surface saved in the given format.
func Load(r io.Reader, format Format, opts ...LoadOption) (*AnimatedSurface, error) {
	var f SurfaceFile
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&f)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&f)
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&f)
	default:
		return nil, fmt.Errorf("unknown surface format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	return f.Surface(opts...)
}

// LoadFile reads a surface from path, choosing the format from its extension.
func LoadFile(path string, opts ...LoadOption) (*AnimatedSurface, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return Load(in, format, opts...)
}
