package textsurface

import (
	"fmt"
	"image/color"

	"github.com/danielgatis/go-ansicode"
)

// tabWidth is the distance between the fixed tab stops.
const tabWidth = 8

// Input prints r at the cursor through the print template. Zero-width runes are dropped.
func (c *Console) Input(r rune) {
	if c.middleware != nil && c.middleware.Input != nil {
		c.middleware.Input(r, c.inputInternal)
		return
	}
	c.inputInternal(r)
}

func (c *Console) inputInternal(r rune) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Combining marks would need a cell that holds more than one rune.
	if runeWidth(r) == 0 {
		return
	}
	c.cursor.PrintRune(r)
}

// Bell triggers the bell provider.
func (c *Console) Bell() {
	if c.middleware != nil && c.middleware.Bell != nil {
		c.middleware.Bell(c.bellInternal)
		return
	}
	c.bellInternal()
}

func (c *Console) bellInternal() {
	if c.bellProvider != nil {
		c.bellProvider.Ring()
	}
}

// Backspace moves the cursor one column left, stopping at column 0.
func (c *Console) Backspace() {
	if c.middleware != nil && c.middleware.Backspace != nil {
		c.middleware.Backspace(c.backspaceInternal)
		return
	}
	c.backspaceInternal()
}

func (c *Console) backspaceInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Left(1)
}

// CarriageReturn moves the cursor to column 0 of the current row.
func (c *Console) CarriageReturn() {
	if c.middleware != nil && c.middleware.CarriageReturn != nil {
		c.middleware.CarriageReturn(c.carriageReturnInternal)
		return
	}
	c.carriageReturnInternal()
}

func (c *Console) carriageReturnInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.CarriageReturn()
}

// LineFeed moves the cursor down one row, shifting the grid up on the last row.
// With UseLinuxLineEndings set on the cursor it also returns the carriage.
func (c *Console) LineFeed() {
	if c.middleware != nil && c.middleware.LineFeed != nil {
		c.middleware.LineFeed(c.lineFeedInternal)
		return
	}
	c.lineFeedInternal()
}

func (c *Console) lineFeedInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cursor.UseLinuxLineEndings {
		c.cursor.NewLine()
		return
	}
	c.cursor.LineFeed()
}

// Tab moves the cursor right to the next n tab stops.
func (c *Console) Tab(n int) {
	if c.middleware != nil && c.middleware.Tab != nil {
		c.middleware.Tab(n, c.tabInternal)
		return
	}
	c.tabInternal(n)
}

func (c *Console) tabInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	x := c.cursor.Column()
	for i := 0; i < n; i++ {
		x = (x/tabWidth + 1) * tabWidth
	}
	c.cursor.Right(x - c.cursor.Column())
}

// ClearLine clears the part of the cursor row selected by mode.
func (c *Console) ClearLine(mode ansicode.LineClearMode) {
	if c.middleware != nil && c.middleware.ClearLine != nil {
		c.middleware.ClearLine(mode, c.clearLineInternal)
		return
	}
	c.clearLineInternal(mode)
}

func (c *Console) clearLineInternal(mode ansicode.LineClearMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.cursor.Position()
	switch mode {
	case ansicode.LineClearModeRight:
		c.grid.ClearRowRange(p.Y, p.X, c.width)
	case ansicode.LineClearModeLeft:
		c.grid.ClearRowRange(p.Y, 0, p.X+1)
	case ansicode.LineClearModeAll:
		c.grid.ClearRow(p.Y)
	}
}

// ClearScreen clears the part of the grid selected by mode.
func (c *Console) ClearScreen(mode ansicode.ClearMode) {
	if c.middleware != nil && c.middleware.ClearScreen != nil {
		c.middleware.ClearScreen(mode, c.clearScreenInternal)
		return
	}
	c.clearScreenInternal(mode)
}

func (c *Console) clearScreenInternal(mode ansicode.ClearMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.cursor.Position()
	switch mode {
	case ansicode.ClearModeBelow:
		c.grid.ClearRowRange(p.Y, p.X, c.width)
		for y := p.Y + 1; y < c.height; y++ {
			c.grid.ClearRow(y)
		}
	case ansicode.ClearModeAbove:
		for y := 0; y < p.Y; y++ {
			c.grid.ClearRow(y)
		}
		c.grid.ClearRowRange(p.Y, 0, p.X+1)
	case ansicode.ClearModeAll:
		c.grid.Clear()
	case ansicode.ClearModeSaved:
		if sb := c.grid.ScrollbackProvider(); sb != nil {
			sb.Clear()
		}
	}
}

// Goto moves the cursor to (row, col), clamped to the grid.
func (c *Console) Goto(row, col int) {
	if c.middleware != nil && c.middleware.Goto != nil {
		c.middleware.Goto(row, col, c.gotoInternal)
		return
	}
	c.gotoInternal(row, col)
}

func (c *Console) gotoInternal(row, col int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Move(clamp(col, 0, c.width-1), clamp(row, 0, c.height-1))
}

// GotoLine moves the cursor to row, keeping the column.
func (c *Console) GotoLine(row int) {
	if c.middleware != nil && c.middleware.GotoLine != nil {
		c.middleware.GotoLine(row, c.gotoLineInternal)
		return
	}
	c.gotoLineInternal(row)
}

func (c *Console) gotoLineInternal(row int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Move(c.cursor.Column(), clamp(row, 0, c.height-1))
}

// GotoCol moves the cursor to col, keeping the row.
func (c *Console) GotoCol(col int) {
	if c.middleware != nil && c.middleware.GotoCol != nil {
		c.middleware.GotoCol(col, c.gotoColInternal)
		return
	}
	c.gotoColInternal(col)
}

func (c *Console) gotoColInternal(col int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Move(clamp(col, 0, c.width-1), c.cursor.Row())
}

// MoveUp moves the cursor up n rows, stopping at row 0.
func (c *Console) MoveUp(n int) {
	if c.middleware != nil && c.middleware.MoveUp != nil {
		c.middleware.MoveUp(n, c.moveUpInternal)
		return
	}
	c.moveUpInternal(n)
}

func (c *Console) moveUpInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Up(n)
}

// MoveDown moves the cursor down n rows, stopping at the last row.
func (c *Console) MoveDown(n int) {
	if c.middleware != nil && c.middleware.MoveDown != nil {
		c.middleware.MoveDown(n, c.moveDownInternal)
		return
	}
	c.moveDownInternal(n)
}

func (c *Console) moveDownInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Down(n)
}

// MoveForward moves the cursor right n columns, stopping at the last column.
func (c *Console) MoveForward(n int) {
	if c.middleware != nil && c.middleware.MoveForward != nil {
		c.middleware.MoveForward(n, c.moveForwardInternal)
		return
	}
	c.moveForwardInternal(n)
}

func (c *Console) moveForwardInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Right(n)
}

// MoveBackward moves the cursor left n columns, stopping at column 0.
func (c *Console) MoveBackward(n int) {
	if c.middleware != nil && c.middleware.MoveBackward != nil {
		c.middleware.MoveBackward(n, c.moveBackwardInternal)
		return
	}
	c.moveBackwardInternal(n)
}

func (c *Console) moveBackwardInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Left(n)
}

// MoveUpCr handles CPL. The decoder passes the parameter minus one, so the
// cursor moves n+1 rows up and to column 0.
func (c *Console) MoveUpCr(n int) {
	if c.middleware != nil && c.middleware.MoveUpCr != nil {
		c.middleware.MoveUpCr(n, c.moveUpCrInternal)
		return
	}
	c.moveUpCrInternal(n)
}

func (c *Console) moveUpCrInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Up(n + 1).CarriageReturn()
}

// MoveDownCr handles CNL. The decoder passes the parameter minus one, so the
// cursor moves n+1 rows down and to column 0.
func (c *Console) MoveDownCr(n int) {
	if c.middleware != nil && c.middleware.MoveDownCr != nil {
		c.middleware.MoveDownCr(n, c.moveDownCrInternal)
		return
	}
	c.moveDownCrInternal(n)
}

func (c *Console) moveDownCrInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cursor.Down(n + 1).CarriageReturn()
}

// InsertBlank inserts n blank cells at the cursor, shifting the row right.
func (c *Console) InsertBlank(n int) {
	if c.middleware != nil && c.middleware.InsertBlank != nil {
		c.middleware.InsertBlank(n, c.insertBlankInternal)
		return
	}
	c.insertBlankInternal(n)
}

func (c *Console) insertBlankInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.cursor.Position()
	c.grid.InsertBlanks(p.X, p.Y, n)
}

// InsertBlankLines inserts n blank rows at the cursor row, shifting the rows below down.
func (c *Console) InsertBlankLines(n int) {
	if c.middleware != nil && c.middleware.InsertBlankLines != nil {
		c.middleware.InsertBlankLines(n, c.insertBlankLinesInternal)
		return
	}
	c.insertBlankLinesInternal(n)
}

func (c *Console) insertBlankLinesInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.InsertRows(c.cursor.Row(), n)
}

// DeleteChars removes n cells at the cursor, shifting the row left.
func (c *Console) DeleteChars(n int) {
	if c.middleware != nil && c.middleware.DeleteChars != nil {
		c.middleware.DeleteChars(n, c.deleteCharsInternal)
		return
	}
	c.deleteCharsInternal(n)
}

func (c *Console) deleteCharsInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.cursor.Position()
	c.grid.DeleteChars(p.X, p.Y, n)
}

// DeleteLines removes n rows at the cursor row, shifting the rows below up.
func (c *Console) DeleteLines(n int) {
	if c.middleware != nil && c.middleware.DeleteLines != nil {
		c.middleware.DeleteLines(n, c.deleteLinesInternal)
		return
	}
	c.deleteLinesInternal(n)
}

func (c *Console) deleteLinesInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.DeleteRows(c.cursor.Row(), n)
}

// EraseChars resets n cells from the cursor without shifting.
func (c *Console) EraseChars(n int) {
	if c.middleware != nil && c.middleware.EraseChars != nil {
		c.middleware.EraseChars(n, c.eraseCharsInternal)
		return
	}
	c.eraseCharsInternal(n)
}

func (c *Console) eraseCharsInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.cursor.Position()
	c.grid.ClearRowRange(p.Y, p.X, p.X+n)
}

// ScrollUp shifts the grid up n rows. Dropped rows go to scrollback.
func (c *Console) ScrollUp(n int) {
	if c.middleware != nil && c.middleware.ScrollUp != nil {
		c.middleware.ScrollUp(n, c.scrollUpInternal)
		return
	}
	c.scrollUpInternal(n)
}

func (c *Console) scrollUpInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.ShiftUpN(n)
}

// ScrollDown shifts the grid down n rows, blanking the top.
func (c *Console) ScrollDown(n int) {
	if c.middleware != nil && c.middleware.ScrollDown != nil {
		c.middleware.ScrollDown(n, c.scrollDownInternal)
		return
	}
	c.scrollDownInternal(n)
}

func (c *Console) scrollDownInternal(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.ShiftDownN(n)
}

// ReverseIndex moves the cursor up one row, shifting the grid down on row 0.
func (c *Console) ReverseIndex() {
	if c.middleware != nil && c.middleware.ReverseIndex != nil {
		c.middleware.ReverseIndex(c.reverseIndexInternal)
		return
	}
	c.reverseIndexInternal()
}

func (c *Console) reverseIndexInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cursor.Row() == 0 {
		c.grid.ShiftDown()
		return
	}
	c.cursor.Up(1)
}

// SaveCursorPosition saves the cursor position and print template.
func (c *Console) SaveCursorPosition() {
	if c.middleware != nil && c.middleware.SaveCursorPosition != nil {
		c.middleware.SaveCursorPosition(c.saveCursorPositionInternal)
		return
	}
	c.saveCursorPositionInternal()
}

func (c *Console) saveCursorPositionInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.saved = &savedCursor{
		position:   c.cursor.Position(),
		appearance: c.cursor.PrintAppearance,
		effect:     c.cursor.PrintEffect,
	}
}

// RestoreCursorPosition restores what SaveCursorPosition stored. Without a
// saved state the cursor goes home with the default template.
func (c *Console) RestoreCursorPosition() {
	if c.middleware != nil && c.middleware.RestoreCursorPosition != nil {
		c.middleware.RestoreCursorPosition(c.restoreCursorPositionInternal)
		return
	}
	c.restoreCursorPositionInternal()
}

func (c *Console) restoreCursorPositionInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saved == nil {
		c.cursor.Move(0, 0)
		c.resetTemplateLocked()
		return
	}
	c.cursor.Move(c.saved.position.X, c.saved.position.Y)
	c.cursor.PrintAppearance = c.saved.appearance
	c.cursor.PrintEffect = c.saved.effect
}

// SetTerminalCharAttribute applies an SGR attribute to the cursor's print template.
func (c *Console) SetTerminalCharAttribute(attr ansicode.TerminalCharAttribute) {
	if c.middleware != nil && c.middleware.SetTerminalCharAttribute != nil {
		c.middleware.SetTerminalCharAttribute(attr, c.setTerminalCharAttributeInternal)
		return
	}
	c.setTerminalCharAttributeInternal(attr)
}

func (c *Console) setTerminalCharAttributeInternal(attr ansicode.TerminalCharAttribute) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a := &c.cursor.PrintAppearance

	switch attr.Attr {
	case ansicode.CharAttributeReset:
		c.resetTemplateLocked()

	case ansicode.CharAttributeBold:
		a.Flags |= CellFlagBold
	case ansicode.CharAttributeDim:
		a.Flags |= CellFlagDim
	case ansicode.CharAttributeItalic:
		a.Flags |= CellFlagItalic
	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeDoubleUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		a.Flags |= CellFlagUnderline
	case ansicode.CharAttributeBlinkSlow, ansicode.CharAttributeBlinkFast:
		a.Flags |= CellFlagBlink
		c.cursor.PrintEffect = c.blink
	case ansicode.CharAttributeReverse:
		a.Flags |= CellFlagReverse
	case ansicode.CharAttributeHidden:
		a.Flags |= CellFlagHidden
	case ansicode.CharAttributeStrike:
		a.Flags |= CellFlagStrike

	case ansicode.CharAttributeCancelBold:
		a.Flags &^= CellFlagBold
	case ansicode.CharAttributeCancelBoldDim:
		a.Flags &^= CellFlagBold | CellFlagDim
	case ansicode.CharAttributeCancelItalic:
		a.Flags &^= CellFlagItalic
	case ansicode.CharAttributeCancelUnderline:
		a.Flags &^= CellFlagUnderline
	case ansicode.CharAttributeCancelBlink:
		a.Flags &^= CellFlagBlink
		if c.cursor.PrintEffect == Effect(c.blink) {
			c.cursor.PrintEffect = nil
		}
	case ansicode.CharAttributeCancelReverse:
		a.Flags &^= CellFlagReverse
	case ansicode.CharAttributeCancelHidden:
		a.Flags &^= CellFlagHidden
	case ansicode.CharAttributeCancelStrike:
		a.Flags &^= CellFlagStrike

	case ansicode.CharAttributeForeground:
		a.Foreground = c.resolveColor(attr, c.grid.DefaultForeground)
	case ansicode.CharAttributeBackground:
		a.Background = c.resolveColor(attr, c.grid.DefaultBackground)
	}
}

func (c *Console) resetTemplateLocked() {
	c.cursor.PrintAppearance = Appearance{
		Foreground: c.grid.DefaultForeground,
		Background: c.grid.DefaultBackground,
	}
	c.cursor.PrintEffect = nil
}

// resolveColor turns an SGR color into a concrete color. Attributes without a
// color, and the named default colors, resolve to fallback.
func (c *Console) resolveColor(attr ansicode.TerminalCharAttribute, fallback color.Color) color.Color {
	if attr.RGBColor != nil {
		return color.RGBA{
			R: attr.RGBColor.R,
			G: attr.RGBColor.G,
			B: attr.RGBColor.B,
			A: 255,
		}
	}

	if attr.IndexedColor != nil {
		if rgba, ok := PaletteColor(int(attr.IndexedColor.Index)); ok {
			return rgba
		}
		return fallback
	}

	if attr.NamedColor != nil {
		return c.namedColor(int(*attr.NamedColor), fallback)
	}

	return fallback
}

// Named color indices above the 16 palette entries.
const (
	namedForeground       = 256
	namedBackground       = 257
	namedCursor           = 258
	namedDimBlack         = 259
	namedDimWhite         = 266
	namedBrightForeground = 267
	namedDimForeground    = 268
)

func (c *Console) namedColor(name int, fallback color.Color) color.Color {
	switch {
	case name >= 0 && name < 16:
		return DefaultPalette[name]
	case name == namedForeground:
		return c.grid.DefaultForeground
	case name == namedBackground:
		return c.grid.DefaultBackground
	case name == namedCursor:
		return DefaultCursorColor
	case name >= namedDimBlack && name <= namedDimWhite:
		return dimColor(DefaultPalette[name-namedDimBlack])
	case name == namedBrightForeground:
		return DefaultPalette[15]
	case name == namedDimForeground:
		return dimColor(resolveColor(c.grid.DefaultForeground, DefaultForeground))
	}
	return fallback
}

// SetMode handles the modes the console models: cursor visibility and
// line feed/new line.
func (c *Console) SetMode(mode ansicode.TerminalMode) {
	if c.middleware != nil && c.middleware.SetMode != nil {
		c.middleware.SetMode(mode, c.setModeInternal)
		return
	}
	c.setModeInternal(mode)
}

func (c *Console) setModeInternal(mode ansicode.TerminalMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setModeLocked(mode, true)
}

// UnsetMode is the inverse of SetMode.
func (c *Console) UnsetMode(mode ansicode.TerminalMode) {
	if c.middleware != nil && c.middleware.UnsetMode != nil {
		c.middleware.UnsetMode(mode, c.unsetModeInternal)
		return
	}
	c.unsetModeInternal(mode)
}

func (c *Console) unsetModeInternal(mode ansicode.TerminalMode) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setModeLocked(mode, false)
}

func (c *Console) setModeLocked(mode ansicode.TerminalMode, set bool) {
	switch mode {
	case ansicode.TerminalModeShowCursor:
		c.cursor.IsVisible = set
	case ansicode.TerminalModeLineFeedNewLine:
		c.cursor.UseLinuxLineEndings = set
	}
}

// SetTitle stores the title and notifies the title provider.
func (c *Console) SetTitle(title string) {
	if c.middleware != nil && c.middleware.SetTitle != nil {
		c.middleware.SetTitle(title, c.setTitleInternal)
		return
	}
	c.setTitleInternal(title)
}

func (c *Console) setTitleInternal(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.title = title
	if c.titleProvider != nil {
		c.titleProvider.SetTitle(title)
	}
}

// DeviceStatus answers DSR: ready (n=5) or cursor position (n=6).
func (c *Console) DeviceStatus(n int) {
	if c.middleware != nil && c.middleware.DeviceStatus != nil {
		c.middleware.DeviceStatus(n, c.deviceStatusInternal)
		return
	}
	c.deviceStatusInternal(n)
}

func (c *Console) deviceStatusInternal(n int) {
	c.mu.RLock()
	p := c.cursor.Position()
	c.mu.RUnlock()

	switch n {
	case 5:
		c.writeResponseString("\x1b[0n")
	case 6:
		// 1-based
		c.writeResponseString(fmt.Sprintf("\x1b[%d;%dR", p.Y+1, p.X+1))
	}
}

// ResetState clears the grid, homes the cursor and resets the template and title.
func (c *Console) ResetState() {
	if c.middleware != nil && c.middleware.ResetState != nil {
		c.middleware.ResetState(c.resetStateInternal)
		return
	}
	c.resetStateInternal()
}

func (c *Console) resetStateInternal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.Clear()
	c.cursor.Move(0, 0)
	c.cursor.IsVisible = true
	c.cursor.UseLinuxLineEndings = false
	c.resetTemplateLocked()
	c.saved = nil
	c.title = ""
}

// Substitute replaces the glyph at the cursor with '?'.
func (c *Console) Substitute() {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.cursor.Position()
	c.grid.SetGlyph(p.X, p.Y, '?')
}

// Decaln fills the grid with 'E' (screen alignment test).
func (c *Console) Decaln() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.Fill('E')
}

// TextAreaSizeChars replies with the grid size in cells.
func (c *Console) TextAreaSizeChars() {
	c.writeResponseString(fmt.Sprintf("\x1b[8;%d;%dt", c.height, c.width))
}

// Sequences below are decoded but have no meaning for a text surface.

func (c *Console) ApplicationCommandReceived(data []byte)                                 {}
func (c *Console) CellSizePixels()                                                        {}
func (c *Console) ClearTabs(mode ansicode.TabulationClearMode)                            {}
func (c *Console) ClipboardLoad(clipboard byte, terminator string)                        {}
func (c *Console) ClipboardStore(clipboard byte, data []byte)                             {}
func (c *Console) ConfigureCharset(index ansicode.CharsetIndex, charset ansicode.Charset) {}
func (c *Console) DesktopNotification(payload *ansicode.NotificationPayload)              {}
func (c *Console) HorizontalTabSet()                                                      {}
func (c *Console) IdentifyTerminal(b byte)                                                {}
func (c *Console) MoveBackwardTabs(n int)                                                 {}
func (c *Console) MoveForwardTabs(n int)                                                  {}
func (c *Console) PopKeyboardMode(n int)                                                  {}
func (c *Console) PopTitle()                                                              {}
func (c *Console) PrivacyMessageReceived(data []byte)                                     {}
func (c *Console) PushKeyboardMode(mode ansicode.KeyboardMode)                            {}
func (c *Console) PushTitle()                                                             {}
func (c *Console) ReportKeyboardMode()                                                    {}
func (c *Console) ReportModifyOtherKeys()                                                 {}
func (c *Console) ResetColor(i int)                                                       {}
func (c *Console) SetActiveCharset(n int)                                                 {}
func (c *Console) SetColor(index int, col color.Color)                                    {}
func (c *Console) SetCursorStyle(style ansicode.CursorStyle)                              {}
func (c *Console) SetDynamicColor(prefix string, index int, terminator string)            {}
func (c *Console) SetHyperlink(hyperlink *ansicode.Hyperlink)                             {}
func (c *Console) SetKeypadApplicationMode()                                              {}
func (c *Console) SetModifyOtherKeys(modify ansicode.ModifyOtherKeys)                     {}
func (c *Console) SetScrollingRegion(top, bottom int)                                     {}
func (c *Console) SetUserVar(name, value string)                                          {}
func (c *Console) SetWorkingDirectory(uri string)                                         {}
func (c *Console) ShellIntegrationMark(mark ansicode.ShellIntegrationMark, exitCode int)  {}
func (c *Console) SixelReceived(params [][]uint16, data []byte)                           {}
func (c *Console) StartOfStringReceived(data []byte)                                      {}
func (c *Console) TextAreaSizePixels()                                                    {}
func (c *Console) UnsetKeypadApplicationMode()                                            {}

func (c *Console) SetKeyboardMode(mode ansicode.KeyboardMode, behavior ansicode.KeyboardModeBehavior) {
}
