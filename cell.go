package textsurface

import "image/color"

// CellFlags is a bitmask of cell rendering attributes.
type CellFlags uint16

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagDim
	CellFlagItalic
	CellFlagUnderline
	CellFlagBlink
	CellFlagReverse
	CellFlagHidden
	CellFlagStrike
	CellFlagDirty
)

// Cell stores the glyph, colors, effect and formatting attributes for one grid slot.
//
// ActualForeground, ActualBackground and ActualHidden are the attributes a
// renderer should draw. They mirror the stored ones until an Effect rewrites them.
type Cell struct {
	Glyph      rune
	Foreground color.Color
	Background color.Color
	Effect     Effect
	Flags      CellFlags

	ActualForeground color.Color
	ActualBackground color.Color
	ActualHidden     bool
}

// NewCell creates a blank cell (space glyph) with the given colors.
func NewCell(fg, bg color.Color) Cell {
	c := Cell{
		Glyph:      ' ',
		Foreground: fg,
		Background: bg,
	}
	c.RestoreActual()
	return c
}

// Reset clears glyph, effect and flags and applies the given colors.
func (c *Cell) Reset(fg, bg color.Color) {
	c.Glyph = ' '
	c.Foreground = fg
	c.Background = bg
	c.Effect = nil
	c.Flags = 0
	c.RestoreActual()
}

// RestoreActual copies the stored attributes into the actual rendering attributes.
func (c *Cell) RestoreActual() {
	c.ActualForeground = c.Foreground
	c.ActualBackground = c.Background
	c.ActualHidden = c.HasFlag(CellFlagHidden)
}

// CopyAppearanceFrom copies colors, flags and effect from other, leaving the glyph untouched.
func (c *Cell) CopyAppearanceFrom(other *Cell) {
	c.Foreground = other.Foreground
	c.Background = other.Background
	c.Flags = other.Flags&^CellFlagDirty | c.Flags&CellFlagDirty
	c.Effect = other.Effect
	c.RestoreActual()
}

// HasFlag returns true if the specified flag is set.
func (c *Cell) HasFlag(flag CellFlags) bool {
	return c.Flags&flag != 0
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) {
	c.Flags |= flag
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) {
	c.Flags &^= flag
}

// IsDirty returns true if the cell was modified since the last ClearDirty call.
func (c *Cell) IsDirty() bool {
	return c.HasFlag(CellFlagDirty)
}

// MarkDirty marks the cell as modified for dirty tracking.
func (c *Cell) MarkDirty() {
	c.SetFlag(CellFlagDirty)
}

// ClearDirty resets the dirty tracking flag.
func (c *Cell) ClearDirty() {
	c.ClearFlag(CellFlagDirty)
}

// Equal reports whether two cells carry the same glyph, colors and flags.
// Dirty state, effects and actual attributes are ignored.
func (c *Cell) Equal(other *Cell) bool {
	if c.Glyph != other.Glyph {
		return false
	}
	if c.Flags&^CellFlagDirty != other.Flags&^CellFlagDirty {
		return false
	}
	return resolveColor(c.Foreground, DefaultForeground) == resolveColor(other.Foreground, DefaultForeground) &&
		resolveColor(c.Background, DefaultBackground) == resolveColor(other.Background, DefaultBackground)
}
