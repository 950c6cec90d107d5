package textsurface

import (
	"fmt"
	"image/color"
)

// DefaultPalette is the standard 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231)
	// Generated programmatically below

	// Grayscale (232-255)
	// Generated programmatically below
}

func init() {
	// Generate 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Generate grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}

// PaletteColor returns the palette entry for index, or false if index is outside 0-255.
func PaletteColor(index int) (color.RGBA, bool) {
	if index < 0 || index >= len(DefaultPalette) {
		return color.RGBA{}, false
	}
	return DefaultPalette[index], true
}

// resolveColor converts a color.Color to RGBA.
// If c is nil, returns fallback.
func resolveColor(c color.Color, fallback color.RGBA) color.RGBA {
	if c == nil {
		return fallback
	}

	switch v := c.(type) {
	case color.RGBA:
		return v
	case *color.RGBA:
		return *v
	default:
		r, g, b, a := c.RGBA()
		return color.RGBA{
			R: uint8(r >> 8),
			G: uint8(g >> 8),
			B: uint8(b >> 8),
			A: uint8(a >> 8),
		}
	}
}

// dimColor scales the RGB channels down the way the rasterizer draws dim text.
func dimColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: c.A,
	}
}

// colorToHex converts a color to a "#rrggbbaa" string. Nil colors encode as "".
func colorToHex(c color.Color) string {
	if c == nil {
		return ""
	}
	rgba := resolveColor(c, DefaultForeground)
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}

// hexToColor parses "#rrggbb" or "#rrggbbaa". The empty string yields nil.
func hexToColor(s string) (color.Color, error) {
	if s == "" {
		return nil, nil
	}
	var c color.RGBA
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
		c.A = 255
	case 9:
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A); err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", s, err)
		}
	default:
		return nil, fmt.Errorf("invalid color %q", s)
	}
	return c, nil
}
