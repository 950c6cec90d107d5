// Package tui draws text surfaces into a terminal through tcell and plays
// animations in real time.
package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	textsurface "github.com/vrosnet/go-text-surface"
)

// Style converts the actual (post-effect) attributes of cell into a tcell style.
// Nil colors fall back to defFg and defBg.
func Style(cell *textsurface.Cell, defFg, defBg color.Color) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(cell.ActualForeground, defFg)).
		Background(convertColor(cell.ActualBackground, defBg))

	if cell.HasFlag(textsurface.CellFlagBold) {
		style = style.Bold(true)
	}
	if cell.HasFlag(textsurface.CellFlagDim) {
		style = style.Dim(true)
	}
	if cell.HasFlag(textsurface.CellFlagItalic) {
		style = style.Italic(true)
	}
	if cell.HasFlag(textsurface.CellFlagUnderline) {
		style = style.Underline(true)
	}
	if cell.HasFlag(textsurface.CellFlagBlink) {
		style = style.Blink(true)
	}
	if cell.HasFlag(textsurface.CellFlagReverse) {
		style = style.Reverse(true)
	}
	if cell.HasFlag(textsurface.CellFlagStrike) {
		style = style.StrikeThrough(true)
	}
	return style
}

func convertColor(c, fallback color.Color) tcell.Color {
	if c == nil {
		c = fallback
	}
	if c == nil {
		return tcell.ColorDefault
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

// Draw copies g into screen with its top-left cell at (ox, oy).
// Cells falling outside the screen are skipped; hidden cells draw as blanks.
func Draw(screen tcell.Screen, g *textsurface.Grid, ox, oy int) {
	if g == nil {
		return
	}
	sw, sh := screen.Size()
	for y := 0; y < g.Height(); y++ {
		sy := oy + y
		if sy < 0 || sy >= sh {
			continue
		}
		for x := 0; x < g.Width(); x++ {
			sx := ox + x
			if sx < 0 || sx >= sw {
				continue
			}
			cell := g.Cell(x, y)
			glyph := cell.Glyph
			if cell.ActualHidden || glyph == 0 {
				glyph = ' '
			}
			screen.SetContent(sx, sy, glyph, nil, Style(cell, g.DefaultForeground, g.DefaultBackground))
		}
	}
}

// DrawCursor draws c over the cell it sits on when it is visible right now.
// A cursor without its own background keeps the cell's background.
func DrawCursor(screen tcell.Screen, c *textsurface.Cursor, ox, oy int) {
	g := c.Grid()
	if g == nil || !c.ShouldDraw() {
		return
	}
	pos := c.Position()
	sx, sy := ox+pos.X, oy+pos.Y
	sw, sh := screen.Size()
	if sx < 0 || sy < 0 || sx >= sw || sy >= sh {
		return
	}

	under := g.Cell(pos.X, pos.Y)
	cursor := c.RenderCell()
	bg := cursor.ActualBackground
	if bg == nil {
		bg = under.ActualBackground
	}
	fg := cursor.ActualForeground
	if fg == nil {
		fg = under.ActualForeground
	}
	style := tcell.StyleDefault.
		Foreground(convertColor(fg, g.DefaultForeground)).
		Background(convertColor(bg, g.DefaultBackground))

	glyph := cursor.Glyph
	if glyph == 0 || glyph == ' ' {
		glyph = under.Glyph
	}
	screen.SetContent(sx, sy, glyph, nil, style)
}

// Origin returns the screen position of a width x height surface's top-left
// cell so that its center point lands on the middle of the screen.
func Origin(screen tcell.Screen, width, height int, center textsurface.Point) (int, int) {
	sw, sh := screen.Size()
	if center == (textsurface.Point{}) {
		return (sw - width) / 2, (sh - height) / 2
	}
	return sw/2 - center.X, sh/2 - center.Y
}
