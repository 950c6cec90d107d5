package textsurface

import (
	"image/color"
	"reflect"
	"strings"
	"time"
)

// Point identifies a cell location in a grid (0-based, X is the column).
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Before returns true if this point comes before other in reading order (top-to-bottom, left-to-right).
func (p Point) Before(other Point) bool {
	if p.Y < other.Y {
		return true
	}
	return p.Y == other.Y && p.X < other.X
}

// IndexFromPoint converts a point to a row-major cell index for a grid of the given width.
func IndexFromPoint(p Point, width int) int {
	return p.Y*width + p.X
}

// PointFromIndex converts a row-major cell index to a point for a grid of the given width.
func PointFromIndex(index, width int) Point {
	return Point{X: index % width, Y: index / width}
}

// Grid stores a fixed-size rectangle of cells in row-major order.
// Rows dropped by ShiftUp can optionally be kept in scrollback storage.
type Grid struct {
	width      int
	height     int
	cells      []Cell
	scrollback ScrollbackProvider
	hasDirty   bool
	disposed   bool

	// DefaultForeground and DefaultBackground color blank cells.
	DefaultForeground color.Color
	DefaultBackground color.Color
}

// NewGrid creates a grid with the package default colors and no scrollback.
// Non-positive dimensions produce a grid without cell storage.
func NewGrid(width, height int) *Grid {
	return NewGridWithColors(width, height, DefaultForeground, DefaultBackground)
}

// NewGridWithColors creates a grid whose blank cells use fg and bg.
func NewGridWithColors(width, height int, fg, bg color.Color) *Grid {
	if width <= 0 || height <= 0 {
		width, height = 0, 0
	}
	g := &Grid{
		width:             width,
		height:            height,
		cells:             make([]Cell, width*height),
		scrollback:        NoopScrollback{},
		DefaultForeground: fg,
		DefaultBackground: bg,
	}
	for i := range g.cells {
		g.cells[i] = NewCell(fg, bg)
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// CellCount returns width*height.
func (g *Grid) CellCount() int {
	return len(g.cells)
}

// Cells returns the live row-major cell slice. Writes through it modify the grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// HasCells reports whether the grid has cell storage.
func (g *Grid) HasCells() bool {
	return len(g.cells) > 0
}

// IsValid reports whether (x, y) is inside the grid.
func (g *Grid) IsValid(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cell returns a pointer to the cell at (x, y).
// Returns nil if coordinates are out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.IsValid(x, y) || len(g.cells) == 0 {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// CellAt returns a pointer to the cell at a row-major index, or nil if out of range.
func (g *Grid) CellAt(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	return &g.cells[index]
}

// SetCell replaces the cell at (x, y) and marks it dirty.
// Does nothing if coordinates are out of bounds.
func (g *Grid) SetCell(x, y int, cell Cell) {
	if g.Cell(x, y) == nil {
		return
	}
	cell.MarkDirty()
	g.cells[y*g.width+x] = cell
	g.hasDirty = true
}

// SetGlyph overwrites only the glyph at (x, y).
func (g *Grid) SetGlyph(x, y int, glyph rune) {
	c := g.Cell(x, y)
	if c == nil {
		return
	}
	c.Glyph = glyph
	c.MarkDirty()
	g.hasDirty = true
}

// MarkDirty marks the cell at (x, y) as modified.
// Does nothing if coordinates are out of bounds.
func (g *Grid) MarkDirty(x, y int) {
	c := g.Cell(x, y)
	if c == nil {
		return
	}
	c.MarkDirty()
	g.hasDirty = true
}

// HasDirty returns true if any cell has been modified since the last ClearAllDirty call.
func (g *Grid) HasDirty() bool {
	return g.hasDirty
}

// DirtyCells returns positions of all modified cells.
func (g *Grid) DirtyCells() []Point {
	var points []Point
	for i := range g.cells {
		if g.cells[i].IsDirty() {
			points = append(points, PointFromIndex(i, g.width))
		}
	}
	return points
}

// ClearAllDirty resets the dirty state of all cells.
func (g *Grid) ClearAllDirty() {
	for i := range g.cells {
		g.cells[i].ClearDirty()
	}
	g.hasDirty = false
}

// ClearRow resets all cells in row y to the default colors and marks them dirty.
func (g *Grid) ClearRow(y int) {
	g.ClearRowRange(y, 0, g.width)
}

// ClearRowRange resets cells in row y from startX (inclusive) to endX (exclusive).
func (g *Grid) ClearRowRange(y, startX, endX int) {
	if y < 0 || y >= g.height {
		return
	}
	if startX < 0 {
		startX = 0
	}
	if endX > g.width {
		endX = g.width
	}
	for x := startX; x < endX; x++ {
		c := &g.cells[y*g.width+x]
		c.Reset(g.DefaultForeground, g.DefaultBackground)
		c.MarkDirty()
	}
	g.hasDirty = true
}

// Clear resets every cell to the default state.
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		g.ClearRow(y)
	}
}

// ShiftUp drops row 0, moves every other row up by one and appends a blank row at the bottom.
func (g *Grid) ShiftUp() {
	g.ShiftUpN(1)
}

// ShiftUpN shifts rows up by n. Dropped rows are pushed to scrollback if enabled.
func (g *Grid) ShiftUpN(n int) {
	if n <= 0 || len(g.cells) == 0 {
		return
	}
	if n > g.height {
		n = g.height
	}

	if g.scrollback != nil && g.scrollback.MaxLines() > 0 {
		for row := 0; row < n; row++ {
			g.scrollback.Push(g.cells[row*g.width : (row+1)*g.width])
		}
	}

	copy(g.cells, g.cells[n*g.width:])
	for i := (g.height - n) * g.width; i < len(g.cells); i++ {
		g.cells[i] = NewCell(g.DefaultForeground, g.DefaultBackground)
	}
	g.markAllDirty()
}

// ShiftDown drops the last row, moves every other row down by one and inserts a blank row at the top.
func (g *Grid) ShiftDown() {
	g.ShiftDownN(1)
}

// ShiftDownN shifts rows down by n, clearing the top n rows.
func (g *Grid) ShiftDownN(n int) {
	if n <= 0 || len(g.cells) == 0 {
		return
	}
	if n > g.height {
		n = g.height
	}

	copy(g.cells[n*g.width:], g.cells[:(g.height-n)*g.width])
	for i := 0; i < n*g.width; i++ {
		g.cells[i] = NewCell(g.DefaultForeground, g.DefaultBackground)
	}
	g.markAllDirty()
}

func (g *Grid) markAllDirty() {
	for i := range g.cells {
		g.cells[i].MarkDirty()
	}
	g.hasDirty = true
}

// UpdateEffects advances every distinct effect found on the grid once, then
// lets each effect rewrite the actual attributes of the cells that carry it.
// Cells without an effect have their actual attributes restored.
// Effects whose dynamic type is not comparable cannot be de-duplicated and are
// advanced once per cell.
func (g *Grid) UpdateEffects(elapsed time.Duration) {
	seen := make(map[Effect]struct{})
	for i := range g.cells {
		e := g.cells[i].Effect
		if e == nil {
			continue
		}
		if !reflect.TypeOf(e).Comparable() {
			e.Update(elapsed)
			continue
		}
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			e.Update(elapsed)
		}
	}

	for i := range g.cells {
		c := &g.cells[i]
		if c.Effect == nil {
			c.RestoreActual()
			continue
		}
		if c.Effect.Apply(c) {
			c.MarkDirty()
			g.hasDirty = true
		}
	}
}

// Clone returns a deep copy of the grid with its own cell storage and no scrollback.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		width:             g.width,
		height:            g.height,
		cells:             make([]Cell, len(g.cells)),
		scrollback:        NoopScrollback{},
		DefaultForeground: g.DefaultForeground,
		DefaultBackground: g.DefaultBackground,
	}
	copy(clone.cells, g.cells)
	return clone
}

// Dispose releases the cell storage. Cursors holding the grid report ErrNotAttached afterwards.
func (g *Grid) Dispose() {
	g.disposed = true
	g.width, g.height = 0, 0
	g.cells = nil
	g.scrollback = nil
}

// IsDisposed reports whether Dispose has been called.
func (g *Grid) IsDisposed() bool {
	return g.disposed
}

// LineContent returns the text content of row y, trimming trailing spaces.
// Zero-width glyphs are skipped. Returns empty string if the row is empty or out of bounds.
func (g *Grid) LineContent(y int) string {
	if y < 0 || y >= g.height || len(g.cells) == 0 {
		return ""
	}
	return lineText(g.cells[y*g.width : (y+1)*g.width])
}

func lineText(line []Cell) string {
	runes := make([]rune, 0, len(line))
	for i := range line {
		ch := line[i].Glyph
		if ch == 0 {
			ch = ' '
		}
		if runeWidth(ch) == 0 {
			continue
		}
		runes = append(runes, ch)
	}
	return strings.TrimRight(string(runes), " ")
}

// String returns the grid content as newline-separated rows.
// Trailing empty rows are omitted. Implements fmt.Stringer.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	lastNonEmpty := -1
	for y := range lines {
		lines[y] = g.LineContent(y)
		if lines[y] != "" {
			lastNonEmpty = y
		}
	}
	return strings.Join(lines[:lastNonEmpty+1], "\n")
}

// --- Scrollback ---

// SetScrollbackProvider replaces the scrollback storage implementation.
func (g *Grid) SetScrollbackProvider(storage ScrollbackProvider) {
	g.scrollback = storage
}

// ScrollbackProvider returns the current scrollback storage implementation.
func (g *Grid) ScrollbackProvider() ScrollbackProvider {
	return g.scrollback
}

// ScrollbackLen returns the number of lines stored in scrollback.
func (g *Grid) ScrollbackLen() int {
	if g.scrollback == nil {
		return 0
	}
	return g.scrollback.Len()
}

// ScrollbackLine returns a line from scrollback, where 0 is the oldest line.
// Returns nil if index is out of range or scrollback is disabled.
func (g *Grid) ScrollbackLine(index int) []Cell {
	if g.scrollback == nil {
		return nil
	}
	return g.scrollback.Line(index)
}

// --- Line editing ---

// InsertBlanks inserts n blank cells at (x, y), shifting the rest of the row right.
// Cells pushed past the right edge are lost.
func (g *Grid) InsertBlanks(x, y, n int) {
	if !g.IsValid(x, y) || n <= 0 {
		return
	}
	row := g.cells[y*g.width : (y+1)*g.width]
	for c := g.width - 1; c >= x+n; c-- {
		row[c] = row[c-n]
		row[c].MarkDirty()
	}
	g.ClearRowRange(y, x, x+n)
}

// DeleteChars removes n cells at (x, y), shifting the rest of the row left.
func (g *Grid) DeleteChars(x, y, n int) {
	if !g.IsValid(x, y) || n <= 0 {
		return
	}
	n = min(n, g.width-x)
	row := g.cells[y*g.width : (y+1)*g.width]
	copy(row[x:], row[x+n:])
	for c := x; c < g.width-n; c++ {
		row[c].MarkDirty()
	}
	g.ClearRowRange(y, g.width-n, g.width)
}

// InsertRows inserts n blank rows at y, shifting the rows below down.
// Rows pushed past the bottom are lost.
func (g *Grid) InsertRows(y, n int) {
	if y < 0 || y >= g.height || n <= 0 {
		return
	}
	n = min(n, g.height-y)
	copy(g.cells[(y+n)*g.width:], g.cells[y*g.width:(g.height-n)*g.width])
	for r := y; r < y+n; r++ {
		g.ClearRow(r)
	}
	g.markAllDirty()
}

// DeleteRows removes n rows at y, shifting the rows below up and blanking the bottom.
// Unlike ShiftUpN nothing is pushed to scrollback.
func (g *Grid) DeleteRows(y, n int) {
	if y < 0 || y >= g.height || n <= 0 {
		return
	}
	n = min(n, g.height-y)
	copy(g.cells[y*g.width:], g.cells[(y+n)*g.width:])
	for r := g.height - n; r < g.height; r++ {
		g.ClearRow(r)
	}
	g.markAllDirty()
}

// Fill sets every glyph to r, keeping cell appearance.
func (g *Grid) Fill(r rune) {
	for i := range g.cells {
		g.cells[i].Glyph = r
		g.cells[i].MarkDirty()
	}
	g.hasDirty = true
}
