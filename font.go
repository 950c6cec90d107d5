package textsurface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPoints is the point size of a FontSizeOne face.
const DefaultFontPoints = 14.0

// FontSize is a size class relative to a font's natural size.
// The zero value is FontSizeOne.
type FontSize int

const (
	FontSizeOne FontSize = iota
	FontSizeQuarter
	FontSizeHalf
	FontSizeTwo
	FontSizeThree
	FontSizeFour
)

var fontSizeNames = [...]string{"one", "quarter", "half", "two", "three", "four"}

// String returns the lower-case size class name.
func (s FontSize) String() string {
	if s < 0 || int(s) >= len(fontSizeNames) {
		return fmt.Sprintf("FontSize(%d)", int(s))
	}
	return fontSizeNames[s]
}

// Scale returns the multiplier applied to the natural size.
func (s FontSize) Scale() float64 {
	switch s {
	case FontSizeQuarter:
		return 0.25
	case FontSizeHalf:
		return 0.5
	case FontSizeTwo:
		return 2
	case FontSizeThree:
		return 3
	case FontSizeFour:
		return 4
	default:
		return 1
	}
}

// ParseFontSize parses a size class name. The empty string means FontSizeOne.
func ParseFontSize(s string) (FontSize, error) {
	if s == "" {
		return FontSizeOne, nil
	}
	for i, name := range fontSizeNames {
		if strings.EqualFold(s, name) {
			return FontSize(i), nil
		}
	}
	return FontSizeOne, fmt.Errorf("unknown font size %q", s)
}

// FontRef names a font logically. It is resolved to a face at load time.
type FontRef struct {
	Name string
	Size FontSize
}

// DefaultFontRef refers to the built-in fallback face.
var DefaultFontRef = FontRef{}

// IsDefault reports whether the reference names no font.
func (r FontRef) IsDefault() bool {
	return r.Name == ""
}

// FontResolver turns a FontRef into a face.
type FontResolver interface {
	Resolve(ref FontRef) (font.Face, error)
}

// FontFinder locates font files by name.
type FontFinder interface {
	// Find returns the filesystem path of the font called name.
	Find(name string) (string, error)
}

// MapFinder is a FontFinder backed by a name to path table.
type MapFinder map[string]string

// Find looks the name up case-insensitively.
func (m MapFinder) Find(name string) (string, error) {
	if path, ok := m[name]; ok {
		return path, nil
	}
	for n, path := range m {
		if strings.EqualFold(n, name) {
			return path, nil
		}
	}
	return "", fmt.Errorf("font %q not found", name)
}

// FinderResolver loads TrueType/OpenType files located by a FontFinder.
type FinderResolver struct {
	Finder FontFinder
	// Points is the size of FontSizeOne. Zero means DefaultFontPoints.
	Points float64
}

// Resolve finds and parses the font named by ref at the size of its class.
func (r *FinderResolver) Resolve(ref FontRef) (font.Face, error) {
	if r.Finder == nil {
		return nil, fmt.Errorf("resolve font %q: no finder", ref.Name)
	}
	path, err := r.Finder.Find(ref.Name)
	if err != nil {
		return nil, fmt.Errorf("resolve font %q: %w", ref.Name, err)
	}
	points := r.Points
	if points == 0 {
		points = DefaultFontPoints
	}
	face, err := LoadFont(path, points*ref.Size.Scale())
	if err != nil {
		return nil, fmt.Errorf("resolve font %q: %w", ref.Name, err)
	}
	return face, nil
}

// ResolveFace resolves ref with resolver, substituting the default face when
// the reference is empty, the resolver is nil or resolution fails.
func ResolveFace(resolver FontResolver, ref FontRef) font.Face {
	if ref.IsDefault() || resolver == nil {
		return defaultFace()
	}
	face, err := resolver.Resolve(ref)
	if err != nil || face == nil {
		return defaultFace()
	}
	return face
}

func defaultFace() font.Face {
	return basicfont.Face7x13
}

// LoadFont loads a TrueType or OpenType font from a file path.
func LoadFont(path string, size float64) (font.Face, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadFontFromReader(f, size)
}

// LoadFontFromReader loads a TrueType or OpenType font from an io.Reader.
func LoadFontFromReader(r io.Reader, size float64) (font.Face, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, size)
}

// LoadFontFromBytes loads a TrueType or OpenType font from raw bytes.
func LoadFontFromBytes(data []byte, size float64) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
