package textsurface

import "github.com/danielgatis/go-ansicode"

// Middleware intercepts Console handler calls. Each field wraps one handler:
// it receives the original parameters and a next function running the default
// behavior. Calling next is optional.
type Middleware struct {
	Input          func(r rune, next func(rune))
	Bell           func(next func())
	Backspace      func(next func())
	CarriageReturn func(next func())
	LineFeed       func(next func())
	Tab            func(n int, next func(int))

	ClearLine   func(mode ansicode.LineClearMode, next func(ansicode.LineClearMode))
	ClearScreen func(mode ansicode.ClearMode, next func(ansicode.ClearMode))

	Goto         func(row, col int, next func(int, int))
	GotoLine     func(row int, next func(int))
	GotoCol      func(col int, next func(int))
	MoveUp       func(n int, next func(int))
	MoveDown     func(n int, next func(int))
	MoveForward  func(n int, next func(int))
	MoveBackward func(n int, next func(int))
	MoveUpCr     func(n int, next func(int))
	MoveDownCr   func(n int, next func(int))

	InsertBlank      func(n int, next func(int))
	InsertBlankLines func(n int, next func(int))
	DeleteChars      func(n int, next func(int))
	DeleteLines      func(n int, next func(int))
	EraseChars       func(n int, next func(int))

	ScrollUp     func(n int, next func(int))
	ScrollDown   func(n int, next func(int))
	ReverseIndex func(next func())

	SaveCursorPosition    func(next func())
	RestoreCursorPosition func(next func())

	SetTerminalCharAttribute func(attr ansicode.TerminalCharAttribute, next func(ansicode.TerminalCharAttribute))
	SetMode                  func(mode ansicode.TerminalMode, next func(ansicode.TerminalMode))
	UnsetMode                func(mode ansicode.TerminalMode, next func(ansicode.TerminalMode))

	SetTitle     func(title string, next func(string))
	DeviceStatus func(n int, next func(int))
	ResetState   func(next func())
}

// Merge copies every non-nil field of other into m.
func (m *Middleware) Merge(other *Middleware) {
	if other == nil {
		return
	}
	if other.Input != nil {
		m.Input = other.Input
	}
	if other.Bell != nil {
		m.Bell = other.Bell
	}
	if other.Backspace != nil {
		m.Backspace = other.Backspace
	}
	if other.CarriageReturn != nil {
		m.CarriageReturn = other.CarriageReturn
	}
	if other.LineFeed != nil {
		m.LineFeed = other.LineFeed
	}
	if other.Tab != nil {
		m.Tab = other.Tab
	}
	if other.ClearLine != nil {
		m.ClearLine = other.ClearLine
	}
	if other.ClearScreen != nil {
		m.ClearScreen = other.ClearScreen
	}
	if other.Goto != nil {
		m.Goto = other.Goto
	}
	if other.GotoLine != nil {
		m.GotoLine = other.GotoLine
	}
	if other.GotoCol != nil {
		m.GotoCol = other.GotoCol
	}
	if other.MoveUp != nil {
		m.MoveUp = other.MoveUp
	}
	if other.MoveDown != nil {
		m.MoveDown = other.MoveDown
	}
	if other.MoveForward != nil {
		m.MoveForward = other.MoveForward
	}
	if other.MoveBackward != nil {
		m.MoveBackward = other.MoveBackward
	}
	if other.MoveUpCr != nil {
		m.MoveUpCr = other.MoveUpCr
	}
	if other.MoveDownCr != nil {
		m.MoveDownCr = other.MoveDownCr
	}
	if other.InsertBlank != nil {
		m.InsertBlank = other.InsertBlank
	}
	if other.InsertBlankLines != nil {
		m.InsertBlankLines = other.InsertBlankLines
	}
	if other.DeleteChars != nil {
		m.DeleteChars = other.DeleteChars
	}
	if other.DeleteLines != nil {
		m.DeleteLines = other.DeleteLines
	}
	if other.EraseChars != nil {
		m.EraseChars = other.EraseChars
	}
	if other.ScrollUp != nil {
		m.ScrollUp = other.ScrollUp
	}
	if other.ScrollDown != nil {
		m.ScrollDown = other.ScrollDown
	}
	if other.ReverseIndex != nil {
		m.ReverseIndex = other.ReverseIndex
	}
	if other.SaveCursorPosition != nil {
		m.SaveCursorPosition = other.SaveCursorPosition
	}
	if other.RestoreCursorPosition != nil {
		m.RestoreCursorPosition = other.RestoreCursorPosition
	}
	if other.SetTerminalCharAttribute != nil {
		m.SetTerminalCharAttribute = other.SetTerminalCharAttribute
	}
	if other.SetMode != nil {
		m.SetMode = other.SetMode
	}
	if other.UnsetMode != nil {
		m.UnsetMode = other.UnsetMode
	}
	if other.SetTitle != nil {
		m.SetTitle = other.SetTitle
	}
	if other.DeviceStatus != nil {
		m.DeviceStatus = other.DeviceStatus
	}
	if other.ResetState != nil {
		m.ResetState = other.ResetState
	}
}
