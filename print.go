package textsurface

import (
	"image/color"
	"strings"
)

// ColoredGlyph is one unit of a styled run.
// The Ignore flags keep the matching field of the target cell untouched.
type ColoredGlyph struct {
	Glyph      rune
	Foreground color.Color
	Background color.Color
	Flags      CellFlags
	Effect     Effect

	IgnoreGlyph      bool
	IgnoreForeground bool
	IgnoreBackground bool
	IgnoreFlags      bool
	IgnoreEffect     bool
}

// ColoredString is a styled run of glyphs.
type ColoredString []ColoredGlyph

// NewColoredString styles every rune of text with the same appearance and effect.
func NewColoredString(text string, appearance Appearance, effect Effect) ColoredString {
	s := make(ColoredString, 0, len(text))
	for _, r := range text {
		s = append(s, ColoredGlyph{
			Glyph:      r,
			Foreground: appearance.Foreground,
			Background: appearance.Background,
			Flags:      appearance.Flags,
			Effect:     effect,
		})
	}
	return s
}

// String returns the glyphs of the run as text.
func (s ColoredString) String() string {
	var sb strings.Builder
	for _, g := range s {
		sb.WriteRune(g.Glyph)
	}
	return sb.String()
}

// Print writes text using the cursor's print template.
// '\r' returns the carriage and '\n' feeds a line; everything else is written
// at the cursor position, which then advances with wrapping.
func (c *Cursor) Print(text string) *Cursor {
	return c.PrintStyled(text, c.PrintAppearance, c.PrintEffect)
}

// PrintStyled writes text with an explicit appearance and effect instead of the print template.
func (c *Cursor) PrintStyled(text string, appearance Appearance, effect Effect) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	for _, r := range text {
		c.put(g, ColoredGlyph{
			Glyph:      r,
			Foreground: appearance.Foreground,
			Background: appearance.Background,
			Flags:      appearance.Flags,
			Effect:     effect,
		})
	}
	return c
}

// PrintRune writes a single glyph (or control code) using the print template.
func (c *Cursor) PrintRune(r rune) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.put(g, ColoredGlyph{
		Glyph:      r,
		Foreground: c.PrintAppearance.Foreground,
		Background: c.PrintAppearance.Background,
		Flags:      c.PrintAppearance.Flags,
		Effect:     c.PrintEffect,
	})
	return c
}

// PrintColored writes a styled run, honoring each glyph's Ignore flags.
func (c *Cursor) PrintColored(s ColoredString) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	for _, glyph := range s {
		c.put(g, glyph)
	}
	return c
}

func (c *Cursor) put(g *Grid, glyph ColoredGlyph) {
	switch glyph.Glyph {
	case '\r':
		c.position.X = 0
		return
	case '\n':
		if c.UseLinuxLineEndings {
			c.position.X = 0
		}
		c.lineFeed(g)
		return
	}

	if !g.HasCells() {
		return
	}

	cell := g.Cell(c.position.X, c.position.Y)
	if cell != nil {
		if !glyph.IgnoreGlyph {
			cell.Glyph = glyph.Glyph
		}
		if !c.PrintOnlyCharacterData {
			if !glyph.IgnoreForeground {
				cell.Foreground = glyph.Foreground
			}
			if !glyph.IgnoreBackground {
				cell.Background = glyph.Background
			}
			if !glyph.IgnoreFlags {
				cell.Flags = glyph.Flags
			}
			if !glyph.IgnoreEffect {
				cell.Effect = glyph.Effect
			}
			cell.RestoreActual()
		}
		g.MarkDirty(c.position.X, c.position.Y)
	}

	c.advance(g)
}

// advance steps one column, wrapping to the next row and, past the last row,
// staying on the last row and shifting the grid when enabled.
func (c *Cursor) advance(g *Grid) {
	c.position.X++
	if c.position.X >= g.Width() {
		c.position.X = 0
		c.position.Y++
	}
	if c.position.Y >= g.Height() {
		c.position.Y = g.Height() - 1
		if c.AutomaticallyShiftRowsUp {
			g.ShiftUp()
		}
	}
}
