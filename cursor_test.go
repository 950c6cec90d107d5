package textsurface

import (
	"errors"
	"image/color"
	"runtime"
	"testing"
	"time"
)

// shiftCounter counts ShiftUp calls through the scrollback pushes they cause.
func shiftCounter(g *Grid) *MemoryScrollback {
	sb := NewMemoryScrollback(1000)
	g.SetScrollbackProvider(sb)
	return sb
}

func TestNewCursor(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g)

	if c.Position() != (Point{}) {
		t.Errorf("expected (0,0), got %+v", c.Position())
	}
	if !c.IsAttached() || c.Grid() != g {
		t.Error("expected cursor to be attached to grid")
	}
	if !c.AutomaticallyShiftRowsUp {
		t.Error("expected AutomaticallyShiftRowsUp by default")
	}
	if !c.IsVisible {
		t.Error("expected visible cursor by default")
	}
	if c.CursorGlyph != DefaultCursorGlyph {
		t.Errorf("expected cursor glyph %q, got %q", DefaultCursorGlyph, c.CursorGlyph)
	}
	if c.PrintAppearance.Foreground != g.DefaultForeground {
		t.Error("expected print foreground to follow grid default")
	}
}

func TestCursorPrintAdvances(t *testing.T) {
	g := NewGrid(10, 5)
	sb := shiftCounter(g)
	c := NewCursor(g)

	c.Print("Hello")

	if c.Position() != (Point{X: 5, Y: 0}) {
		t.Errorf("expected (5,0), got %+v", c.Position())
	}
	if g.LineContent(0) != "Hello" {
		t.Errorf("expected 'Hello', got %q", g.LineContent(0))
	}
	if sb.Len() != 0 {
		t.Errorf("expected no shift, got %d", sb.Len())
	}
	if err := c.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCursorPrintFullRowWraps(t *testing.T) {
	g := NewGrid(4, 3)
	sb := shiftCounter(g)
	c := NewCursor(g)

	c.Print("abcd")

	if c.Position() != (Point{X: 0, Y: 1}) {
		t.Errorf("expected (0,1), got %+v", c.Position())
	}
	if sb.Len() != 0 {
		t.Errorf("expected no shift, got %d", sb.Len())
	}
}

func TestCursorPrintFullLastRowShiftsOnce(t *testing.T) {
	g := NewGrid(4, 3)
	sb := shiftCounter(g)
	c := NewCursor(g).Move(0, 2)

	c.Print("abcd")

	if c.Position() != (Point{X: 0, Y: 2}) {
		t.Errorf("expected (0,2), got %+v", c.Position())
	}
	if sb.Len() != 1 {
		t.Errorf("expected exactly one shift, got %d", sb.Len())
	}
	if g.LineContent(1) != "abcd" {
		t.Errorf("expected printed row to move up, got %q", g.LineContent(1))
	}
	if g.LineContent(2) != "" {
		t.Errorf("expected blank last row, got %q", g.LineContent(2))
	}
}

func TestCursorPrintLastCellShifts(t *testing.T) {
	g := NewGrid(10, 5)
	sb := shiftCounter(g)
	c := NewCursor(g).Move(9, 4)

	c.Print("X")

	if sb.Len() != 1 {
		t.Errorf("expected exactly one shift, got %d", sb.Len())
	}
	if c.Position() != (Point{X: 0, Y: 4}) {
		t.Errorf("expected (0,4), got %+v", c.Position())
	}
	if g.Cell(9, 3).Glyph != 'X' {
		t.Errorf("expected 'X' shifted to (9,3), got %q", g.Cell(9, 3).Glyph)
	}
}

func TestCursorPrintLastCellWithoutShift(t *testing.T) {
	g := NewGrid(10, 5)
	sb := shiftCounter(g)
	c := NewCursor(g).Move(9, 4)
	c.AutomaticallyShiftRowsUp = false

	c.Print("X")

	if sb.Len() != 0 {
		t.Errorf("expected no shift, got %d", sb.Len())
	}
	if c.Position() != (Point{X: 0, Y: 4}) {
		t.Errorf("expected (0,4), got %+v", c.Position())
	}
	if g.Cell(9, 4).Glyph != 'X' {
		t.Errorf("expected 'X' at (9,4), got %q", g.Cell(9, 4).Glyph)
	}
}

func TestCursorPrintControlCodes(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g)

	c.Print("ab\ncd")
	if c.Position() != (Point{X: 4, Y: 1}) {
		t.Errorf("expected '\\n' to feed without return, got %+v", c.Position())
	}
	if g.LineContent(1) != "  cd" {
		t.Errorf("expected '  cd', got %q", g.LineContent(1))
	}

	c.Print("\rxy")
	if g.LineContent(1) != "xycd" {
		t.Errorf("expected 'xycd', got %q", g.LineContent(1))
	}
}

func TestCursorLinuxLineEndings(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g)
	c.UseLinuxLineEndings = true

	c.Print("ab\ncd")

	if g.String() != "ab\ncd" {
		t.Errorf("expected 'ab\\ncd', got %q", g.String())
	}
	if c.Position() != (Point{X: 2, Y: 1}) {
		t.Errorf("expected (2,1), got %+v", c.Position())
	}
}

func TestCursorPrintAppearance(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g)
	red := color.RGBA{255, 0, 0, 255}
	blink := NewBlink(time.Second)
	c.PrintAppearance = Appearance{Foreground: red, Background: DefaultBackground, Flags: CellFlagBold}
	c.PrintEffect = blink

	c.Print("A")

	cell := g.Cell(0, 0)
	if cell.Foreground != red {
		t.Errorf("expected red foreground, got %v", cell.Foreground)
	}
	if !cell.HasFlag(CellFlagBold) {
		t.Error("expected bold flag")
	}
	if cell.Effect != blink {
		t.Error("expected print effect on cell")
	}
	if !cell.IsDirty() {
		t.Error("expected printed cell to be dirty")
	}
}

func TestCursorPrintOnlyCharacterData(t *testing.T) {
	g := NewGrid(10, 5)
	green := color.RGBA{0, 255, 0, 255}
	g.Cell(0, 0).Foreground = green
	g.Cell(0, 0).SetFlag(CellFlagItalic)

	c := NewCursor(g)
	c.PrintOnlyCharacterData = true
	c.PrintAppearance = Appearance{Foreground: color.RGBA{255, 0, 0, 255}}

	c.Print("Z")

	cell := g.Cell(0, 0)
	if cell.Glyph != 'Z' {
		t.Errorf("expected 'Z', got %q", cell.Glyph)
	}
	if cell.Foreground != green {
		t.Errorf("expected foreground to be preserved, got %v", cell.Foreground)
	}
	if !cell.HasFlag(CellFlagItalic) {
		t.Error("expected flags to be preserved")
	}
}

func TestCursorPrintColoredIgnoreFlags(t *testing.T) {
	g := NewGrid(10, 5)
	blue := color.RGBA{0, 0, 255, 255}
	g.Cell(1, 0).Background = blue

	c := NewCursor(g)
	red := color.RGBA{255, 0, 0, 255}
	c.PrintColored(ColoredString{
		{Glyph: 'a', Foreground: red, Background: red},
		{Glyph: 'b', Foreground: red, Background: red, IgnoreBackground: true},
		{Glyph: 'c', Foreground: red, IgnoreGlyph: true},
	})

	if g.Cell(0, 0).Background != red {
		t.Error("expected background written")
	}
	if g.Cell(1, 0).Background != blue {
		t.Error("expected background preserved with IgnoreBackground")
	}
	if g.Cell(1, 0).Foreground != red {
		t.Error("expected foreground written with IgnoreBackground")
	}
	if g.Cell(2, 0).Glyph != ' ' {
		t.Errorf("expected glyph preserved with IgnoreGlyph, got %q", g.Cell(2, 0).Glyph)
	}
	if c.Column() != 3 {
		t.Errorf("expected column 3, got %d", c.Column())
	}
}

func TestNewColoredString(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	s := NewColoredString("hi", Appearance{Foreground: red}, nil)

	if s.String() != "hi" {
		t.Errorf("expected 'hi', got %q", s.String())
	}
	if len(s) != 2 || s[1].Foreground != red {
		t.Errorf("expected styled glyphs, got %+v", s)
	}
}

// SetPosition rejects an out-of-range axis and keeps its old value instead
// of clamping, while the other axis is still applied.
func TestCursorSetPositionRejectsPerAxis(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g).Move(3, 2)

	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"both valid", Point{X: 7, Y: 4}, Point{X: 7, Y: 4}},
		{"x too large", Point{X: 10, Y: 1}, Point{X: 7, Y: 1}},
		{"y negative", Point{X: 2, Y: -1}, Point{X: 2, Y: 1}},
		{"both invalid", Point{X: -5, Y: 99}, Point{X: 2, Y: 1}},
	}

	for _, tt := range tests {
		if err := c.SetPosition(tt.in); err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if c.Position() != tt.want {
			t.Errorf("%s: expected %+v, got %+v", tt.name, tt.want, c.Position())
		}
	}
}

func TestCursorDirectionalSaturates(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g).Move(3, 2)

	c.Up(10)
	if c.Row() != 0 {
		t.Errorf("expected row 0, got %d", c.Row())
	}
	c.Down(99)
	if c.Row() != 4 {
		t.Errorf("expected row 4, got %d", c.Row())
	}
	c.Left(7)
	if c.Column() != 0 {
		t.Errorf("expected column 0, got %d", c.Column())
	}
	c.Right(50)
	if c.Column() != 9 {
		t.Errorf("expected column 9, got %d", c.Column())
	}
	c.Left(2).Up(1)
	if c.Position() != (Point{X: 7, Y: 3}) {
		t.Errorf("expected (7,3), got %+v", c.Position())
	}
}

func TestCursorWrapMovement(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g).Move(8, 1)

	c.RightWrap(3)
	if c.Position() != (Point{X: 1, Y: 2}) {
		t.Errorf("expected (1,2), got %+v", c.Position())
	}

	c.LeftWrap(2)
	if c.Position() != (Point{X: 9, Y: 1}) {
		t.Errorf("expected (9,1), got %+v", c.Position())
	}

	c.RightWrap(1000)
	if c.Position() != (Point{X: 9, Y: 4}) {
		t.Errorf("expected last cell (9,4), got %+v", c.Position())
	}

	c.LeftWrap(1000)
	if c.Position() != (Point{}) {
		t.Errorf("expected first cell (0,0), got %+v", c.Position())
	}
}

func TestCursorLineFeed(t *testing.T) {
	g := NewGrid(5, 3)
	sb := shiftCounter(g)
	c := NewCursor(g).Move(2, 0)

	c.LineFeed().LineFeed()
	if c.Position() != (Point{X: 2, Y: 2}) {
		t.Errorf("expected (2,2), got %+v", c.Position())
	}
	if sb.Len() != 0 {
		t.Errorf("expected no shift, got %d", sb.Len())
	}

	c.LineFeed()
	if c.Row() != 2 {
		t.Errorf("expected row to stay 2, got %d", c.Row())
	}
	if sb.Len() != 1 {
		t.Errorf("expected one shift, got %d", sb.Len())
	}
}

func TestCursorNewLineAndCarriageReturn(t *testing.T) {
	g := NewGrid(5, 3)
	c := NewCursor(g).Move(3, 1)

	c.CarriageReturn()
	if c.Position() != (Point{X: 0, Y: 1}) {
		t.Errorf("expected (0,1), got %+v", c.Position())
	}

	c.Move(4, 1).NewLine()
	if c.Position() != (Point{X: 0, Y: 2}) {
		t.Errorf("expected (0,2), got %+v", c.Position())
	}
}

func TestCursorChain(t *testing.T) {
	g := NewGrid(10, 3)
	c := NewCursor(g)

	c.Print("Hello").NewLine().Right(2).Print("World")

	if g.String() != "Hello\n  World" {
		t.Errorf("expected 'Hello\\n  World', got %q", g.String())
	}
}

func TestCursorNotAttached(t *testing.T) {
	c := NewCursor(nil)

	c.Print("x").Up(1)
	if !errors.Is(c.Err(), ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", c.Err())
	}
	if err := c.SetPosition(Point{X: 1, Y: 1}); !errors.Is(err, ErrNotAttached) {
		t.Errorf("expected ErrNotAttached from SetPosition, got %v", err)
	}
	if err := c.ResetAppearanceToConsole(); !errors.Is(err, ErrNotAttached) {
		t.Errorf("expected ErrNotAttached from ResetAppearanceToConsole, got %v", err)
	}

	g := NewGrid(4, 4)
	c.AttachConsole(g)
	if c.Err() != nil {
		t.Errorf("expected AttachConsole to clear error, got %v", c.Err())
	}
	c.Print("ok")
	if g.LineContent(0) != "ok" {
		t.Errorf("expected 'ok', got %q", g.LineContent(0))
	}
}

func TestCursorDisposedGrid(t *testing.T) {
	g := NewGrid(4, 4)
	c := NewCursor(g)

	g.Dispose()
	c.Print("x")

	if !errors.Is(c.Err(), ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", c.Err())
	}
	if c.IsAttached() {
		t.Error("expected cursor to report detached grid")
	}
}

func TestCursorDoesNotKeepGridAlive(t *testing.T) {
	c := NewCursor(NewGrid(4, 4))

	for i := 0; i < 10 && c.IsAttached(); i++ {
		runtime.GC()
	}
	if c.IsAttached() {
		t.Skip("grid was not collected")
	}
	c.LineFeed()
	if !errors.Is(c.Err(), ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", c.Err())
	}
}

func TestCursorDetachAndClearErr(t *testing.T) {
	g := NewGrid(4, 4)
	c := NewCursor(g)
	c.Detach()

	c.Print("a").Down(1)
	if !errors.Is(c.Err(), ErrNotAttached) {
		t.Errorf("expected ErrNotAttached, got %v", c.Err())
	}
	if g.LineContent(0) != "" {
		t.Errorf("expected detached cursor to leave grid untouched, got %q", g.LineContent(0))
	}

	c.ClearErr()
	if c.Err() != nil {
		t.Error("expected ClearErr to reset error")
	}
}

func TestCursorAttachClampsPosition(t *testing.T) {
	big := NewGrid(10, 10)
	c := NewCursor(big).Move(8, 9)

	small := NewGrid(3, 2)
	c.AttachConsole(small)

	if c.Position() != (Point{X: 2, Y: 1}) {
		t.Errorf("expected (2,1), got %+v", c.Position())
	}
	if c.Grid() != small {
		t.Error("expected cursor rebound to the new grid")
	}
	runtime.KeepAlive(big)
}

func TestCursorResetAppearanceToConsole(t *testing.T) {
	fg := color.RGBA{1, 2, 3, 255}
	bg := color.RGBA{4, 5, 6, 255}
	g := NewGridWithColors(5, 5, fg, bg)
	c := NewCursor(g)
	c.PrintAppearance = Appearance{Foreground: color.RGBA{255, 0, 0, 255}, Flags: CellFlagBold}

	if err := c.ResetAppearanceToConsole(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.PrintAppearance.Foreground != fg || c.PrintAppearance.Background != bg {
		t.Errorf("expected grid colors, got %+v", c.PrintAppearance)
	}
	if c.PrintAppearance.Flags != 0 {
		t.Error("expected flags to be cleared")
	}

	empty := NewGrid(0, 0)
	c.AttachConsole(empty)
	if err := c.ResetAppearanceToConsole(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestCursorEmptyGridPrint(t *testing.T) {
	g := NewGrid(0, 0)
	c := NewCursor(g)

	c.Print("abc").RightWrap(3)

	if c.Err() != nil {
		t.Errorf("unexpected error: %v", c.Err())
	}
	if c.Position() != (Point{}) {
		t.Errorf("expected (0,0), got %+v", c.Position())
	}
}

func TestCursorRenderCell(t *testing.T) {
	g := NewGrid(5, 5)
	c := NewCursor(g)
	c.CursorEffect = NewBlink(100 * time.Millisecond)

	cell := c.RenderCell()
	if cell.Glyph != DefaultCursorGlyph {
		t.Errorf("expected %q, got %q", DefaultCursorGlyph, cell.Glyph)
	}
	if !c.ShouldDraw() {
		t.Error("expected cursor drawn in visible phase")
	}

	c.Update(100 * time.Millisecond)
	if c.ShouldDraw() {
		t.Error("expected cursor hidden in blink phase")
	}

	c.Update(100 * time.Millisecond)
	c.IsVisible = false
	if c.ShouldDraw() {
		t.Error("expected invisible cursor not drawn")
	}
}

func TestCursorRowWrapMovement(t *testing.T) {
	g := NewGrid(10, 5)
	c := NewCursor(g).Move(4, 2)

	c.DownWrap(1)
	if c.Position() != (Point{X: 4, Y: 3}) {
		t.Errorf("expected (4,3), got %+v", c.Position())
	}

	c.DownWrap(5)
	if c.Position() != (Point{X: 9, Y: 4}) {
		t.Errorf("expected last cell (9,4), got %+v", c.Position())
	}

	c.Move(4, 1).UpWrap(3)
	if c.Position() != (Point{}) {
		t.Errorf("expected first cell (0,0), got %+v", c.Position())
	}
}
