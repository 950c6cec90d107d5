package textsurface

import (
	"image/color"
	"time"
	"weak"
)

// DefaultCursorGlyph is drawn at the cursor position when the cursor is visible.
const DefaultCursorGlyph = '_'

// DefaultCursorBlinkInterval is the phase length of the cursor's default blink effect.
const DefaultCursorBlinkInterval = 350 * time.Millisecond

// Appearance is the color and flag part of a print template.
type Appearance struct {
	Foreground color.Color
	Background color.Color
	Flags      CellFlags
}

// Cursor writes into a grid at a tracked position.
//
// The cursor does not own its grid: it keeps a weak handle that does not
// extend the grid's lifetime. Once the grid is disposed, collected or detached,
// every operation that needs it records ErrNotAttached (see Err).
//
// Editing methods return the cursor so calls can be chained:
//
//	c.Print("Hello").NewLine().Right(2).Print("World")
//	if err := c.Err(); err != nil {
//	    // handle
//	}
type Cursor struct {
	grid     weak.Pointer[Grid]
	position Point
	err      error

	// PrintAppearance and PrintEffect form the template applied by Print.
	PrintAppearance Appearance
	PrintEffect     Effect

	// PrintOnlyCharacterData keeps the existing cell appearance and only overwrites glyphs.
	PrintOnlyCharacterData bool

	// AutomaticallyShiftRowsUp shifts the grid up when printing runs past the last cell.
	AutomaticallyShiftRowsUp bool

	// UseLinuxLineEndings makes '\n' perform a carriage return as well as a line feed.
	UseLinuxLineEndings bool

	// IsVisible, CursorGlyph, CursorAppearance and CursorEffect describe how
	// the caller should draw the cursor itself (see RenderCell).
	IsVisible        bool
	CursorGlyph      rune
	CursorAppearance Appearance
	CursorEffect     Effect
}

// NewCursor creates a visible cursor at (0, 0) bound to g.
// A nil grid creates a detached cursor; bind it later with AttachConsole.
func NewCursor(g *Grid) *Cursor {
	c := &Cursor{
		AutomaticallyShiftRowsUp: true,
		IsVisible:                true,
		CursorGlyph:              DefaultCursorGlyph,
		CursorAppearance:         Appearance{Foreground: DefaultCursorColor},
		CursorEffect:             NewBlink(DefaultCursorBlinkInterval),
		PrintAppearance:          Appearance{Foreground: DefaultForeground, Background: DefaultBackground},
	}
	if g != nil {
		c.AttachConsole(g)
		c.PrintAppearance.Foreground = g.DefaultForeground
		c.PrintAppearance.Background = g.DefaultBackground
	}
	return c
}

// AttachConsole binds the cursor to g and clears any recorded error.
// The position is kept when it fits the new grid and saturated otherwise.
// Passing nil detaches the cursor.
func (c *Cursor) AttachConsole(g *Grid) *Cursor {
	if g == nil {
		c.Detach()
		return c
	}
	c.grid = weak.Make(g)
	c.err = nil
	c.position.X = clamp(c.position.X, 0, max(g.Width()-1, 0))
	c.position.Y = clamp(c.position.Y, 0, max(g.Height()-1, 0))
	return c
}

// Detach drops the grid handle.
func (c *Cursor) Detach() {
	c.grid = weak.Pointer[Grid]{}
}

// Grid returns the bound grid, or nil if the cursor is not attached to a live grid.
func (c *Cursor) Grid() *Grid {
	g, err := c.target()
	if err != nil {
		return nil
	}
	return g
}

// IsAttached reports whether the cursor currently has a live grid.
func (c *Cursor) IsAttached() bool {
	_, err := c.target()
	return err == nil
}

// Err returns the first error recorded by a chained operation since the last AttachConsole or ClearErr.
func (c *Cursor) Err() error {
	return c.err
}

// ClearErr forgets the recorded error.
func (c *Cursor) ClearErr() {
	c.err = nil
}

func (c *Cursor) target() (*Grid, error) {
	g := c.grid.Value()
	if g == nil || g.IsDisposed() {
		return nil, ErrNotAttached
	}
	return g, nil
}

func (c *Cursor) fail(err error) *Cursor {
	if c.err == nil {
		c.err = err
	}
	return c
}

// Position returns the current cursor position.
func (c *Cursor) Position() Point {
	return c.position
}

// Row returns the current row (Y).
func (c *Cursor) Row() int {
	return c.position.Y
}

// Column returns the current column (X).
func (c *Cursor) Column() int {
	return c.position.X
}

// SetPosition moves the cursor to p. Each axis is checked on its own: an
// out-of-range axis value is ignored and that axis keeps its old value.
// Unlike Up/Down/Left/Right, which saturate at the edges, nothing is clamped here.
func (c *Cursor) SetPosition(p Point) error {
	g, err := c.target()
	if err != nil {
		c.fail(err)
		return err
	}
	if p.X >= 0 && p.X < g.Width() {
		c.position.X = p.X
	}
	if p.Y >= 0 && p.Y < g.Height() {
		c.position.Y = p.Y
	}
	return nil
}

// Move is the chainable form of SetPosition.
func (c *Cursor) Move(x, y int) *Cursor {
	_ = c.SetPosition(Point{X: x, Y: y})
	return c
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (c *Cursor) CarriageReturn() *Cursor {
	if _, err := c.target(); err != nil {
		return c.fail(err)
	}
	c.position.X = 0
	return c
}

// LineFeed moves the cursor down one row. On the last row the grid is shifted up instead.
func (c *Cursor) LineFeed() *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.lineFeed(g)
	return c
}

func (c *Cursor) lineFeed(g *Grid) {
	if c.position.Y >= g.Height()-1 {
		g.ShiftUp()
		return
	}
	c.position.Y++
}

// NewLine performs a carriage return followed by a line feed.
func (c *Cursor) NewLine() *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.position.X = 0
	c.lineFeed(g)
	return c
}

// Up moves the cursor up n rows, stopping at row 0.
func (c *Cursor) Up(n int) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.position.Y = clamp(c.position.Y-n, 0, max(g.Height()-1, 0))
	return c
}

// Down moves the cursor down n rows, stopping at the last row.
func (c *Cursor) Down(n int) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.position.Y = clamp(c.position.Y+n, 0, max(g.Height()-1, 0))
	return c
}

// Left moves the cursor left n columns, stopping at column 0.
func (c *Cursor) Left(n int) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.position.X = clamp(c.position.X-n, 0, max(g.Width()-1, 0))
	return c
}

// Right moves the cursor right n columns, stopping at the last column.
func (c *Cursor) Right(n int) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	c.position.X = clamp(c.position.X+n, 0, max(g.Width()-1, 0))
	return c
}

// LeftWrap moves the cursor back n cells in reading order, wrapping to the
// end of previous rows and stopping at the first cell.
func (c *Cursor) LeftWrap(n int) *Cursor {
	return c.moveIndex(-n)
}

// RightWrap moves the cursor forward n cells in reading order, wrapping to
// the start of following rows and stopping at the last cell.
func (c *Cursor) RightWrap(n int) *Cursor {
	return c.moveIndex(n)
}

// UpWrap moves the cursor up n rows through the flat cell index, stopping at the first cell.
func (c *Cursor) UpWrap(n int) *Cursor {
	return c.moveRows(-n)
}

// DownWrap moves the cursor down n rows through the flat cell index, stopping at the last cell.
func (c *Cursor) DownWrap(n int) *Cursor {
	return c.moveRows(n)
}

func (c *Cursor) moveRows(rows int) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	return c.moveIndexOn(g, rows*g.Width())
}

func (c *Cursor) moveIndex(delta int) *Cursor {
	g, err := c.target()
	if err != nil {
		return c.fail(err)
	}
	return c.moveIndexOn(g, delta)
}

func (c *Cursor) moveIndexOn(g *Grid, delta int) *Cursor {
	if !g.HasCells() {
		return c
	}
	index := clamp(IndexFromPoint(c.position, g.Width())+delta, 0, g.CellCount()-1)
	c.position = PointFromIndex(index, g.Width())
	return c
}

// ResetAppearanceToConsole copies the grid's default colors into the print appearance.
func (c *Cursor) ResetAppearanceToConsole() error {
	g, err := c.target()
	if err != nil {
		return err
	}
	if !g.HasCells() {
		return ErrInvalidState
	}
	c.PrintAppearance = Appearance{
		Foreground: g.DefaultForeground,
		Background: g.DefaultBackground,
	}
	return nil
}

// Update advances the cursor's own effect.
func (c *Cursor) Update(elapsed time.Duration) {
	if c.CursorEffect != nil {
		c.CursorEffect.Update(elapsed)
	}
}

// RenderCell describes how the caller should draw the cursor: glyph, colors,
// effect and the actual attributes after the effect ran. A nil background means
// the underlying cell's background shows through.
func (c *Cursor) RenderCell() Cell {
	cell := Cell{
		Glyph:      c.CursorGlyph,
		Foreground: c.CursorAppearance.Foreground,
		Background: c.CursorAppearance.Background,
		Flags:      c.CursorAppearance.Flags,
		Effect:     c.CursorEffect,
	}
	cell.RestoreActual()
	if c.CursorEffect != nil {
		c.CursorEffect.Apply(&cell)
	}
	return cell
}

// ShouldDraw reports whether the cursor is visible right now, taking its effect into account.
func (c *Cursor) ShouldDraw() bool {
	if !c.IsVisible {
		return false
	}
	cell := c.RenderCell()
	return !cell.ActualHidden
}

// clamp ensures the value is within the given range.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
