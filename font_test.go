package textsurface

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFontSizeNames(t *testing.T) {
	var zero FontSize
	if zero != FontSizeOne {
		t.Errorf("expected zero value to be FontSizeOne, got %v", zero)
	}

	for _, s := range []FontSize{FontSizeOne, FontSizeQuarter, FontSizeHalf, FontSizeTwo, FontSizeThree, FontSizeFour} {
		parsed, err := ParseFontSize(s.String())
		if err != nil {
			t.Errorf("ParseFontSize(%q): %v", s.String(), err)
		}
		if parsed != s {
			t.Errorf("expected %v, got %v", s, parsed)
		}
	}

	if s, err := ParseFontSize(""); err != nil || s != FontSizeOne {
		t.Errorf("expected empty name to parse as one, got %v, %v", s, err)
	}
	if _, err := ParseFontSize("huge"); err == nil {
		t.Error("expected error for unknown size")
	}
	if FontSizeHalf.Scale() != 0.5 || FontSizeFour.Scale() != 4 {
		t.Error("unexpected scale values")
	}
}

func TestMapFinder(t *testing.T) {
	m := MapFinder{"Mono": "/fonts/mono.ttf"}

	if p, err := m.Find("mono"); err != nil || p != "/fonts/mono.ttf" {
		t.Errorf("expected case-insensitive hit, got %q, %v", p, err)
	}
	if _, err := m.Find("serif"); err == nil {
		t.Error("expected error for unknown font")
	}
}

func TestLoadFontFromBytes(t *testing.T) {
	face, err := LoadFontFromBytes(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("LoadFontFromBytes: %v", err)
	}
	if h := face.Metrics().Height.Ceil(); h < 16 {
		t.Errorf("expected line height of at least 16, got %d", h)
	}

	if _, err := LoadFontFromBytes([]byte("not a font"), 16); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestFinderResolver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}

	r := &FinderResolver{Finder: MapFinder{"Regular": path}, Points: 10}

	one, err := r.Resolve(FontRef{Name: "Regular"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	two, err := r.Resolve(FontRef{Name: "Regular", Size: FontSizeTwo})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if two.Metrics().Height <= one.Metrics().Height {
		t.Errorf("expected size two to be taller, got %v <= %v", two.Metrics().Height, one.Metrics().Height)
	}

	if _, err := r.Resolve(FontRef{Name: "Missing"}); err == nil {
		t.Error("expected error for unknown font")
	}
	if _, err := (&FinderResolver{}).Resolve(FontRef{Name: "Regular"}); err == nil {
		t.Error("expected error without finder")
	}
}

func TestResolveFaceFallback(t *testing.T) {
	r := &FinderResolver{Finder: MapFinder{"Broken": filepath.Join(t.TempDir(), "missing.ttf")}}

	if ResolveFace(r, FontRef{Name: "Broken"}) != basicfont.Face7x13 {
		t.Error("expected fallback for failed resolution")
	}
	if ResolveFace(nil, FontRef{Name: "Broken"}) != basicfont.Face7x13 {
		t.Error("expected fallback without resolver")
	}
	if ResolveFace(r, DefaultFontRef) != basicfont.Face7x13 {
		t.Error("expected fallback for the default reference")
	}
}
