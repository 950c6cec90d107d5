package textsurface

import (
	"image/color"
	"testing"
	"time"
)

func TestNewCell(t *testing.T) {
	fg := color.RGBA{1, 2, 3, 255}
	cell := NewCell(fg, nil)

	if cell.Glyph != ' ' {
		t.Errorf("expected space, got '%c'", cell.Glyph)
	}
	if cell.Foreground != fg {
		t.Errorf("expected foreground %v, got %v", fg, cell.Foreground)
	}
	if cell.Background != nil {
		t.Error("expected nil background")
	}
	if cell.ActualForeground != fg {
		t.Error("expected actual foreground to mirror foreground")
	}
	if cell.Flags != 0 {
		t.Error("expected no flags")
	}
}

func TestCellReset(t *testing.T) {
	cell := NewCell(nil, nil)
	cell.Glyph = 'A'
	cell.SetFlag(CellFlagBold)
	cell.Effect = NewBlink(time.Second)

	cell.Reset(DefaultForeground, DefaultBackground)

	if cell.Glyph != ' ' {
		t.Errorf("expected space after reset, got '%c'", cell.Glyph)
	}
	if cell.HasFlag(CellFlagBold) {
		t.Error("expected no flags after reset")
	}
	if cell.Effect != nil {
		t.Error("expected no effect after reset")
	}
	if cell.Background != DefaultBackground {
		t.Error("expected default background after reset")
	}
}

func TestCellFlags(t *testing.T) {
	cell := NewCell(nil, nil)

	cell.SetFlag(CellFlagBold)
	if !cell.HasFlag(CellFlagBold) {
		t.Error("expected bold flag")
	}

	cell.SetFlag(CellFlagItalic)
	if !cell.HasFlag(CellFlagBold) || !cell.HasFlag(CellFlagItalic) {
		t.Error("expected both flags")
	}

	cell.ClearFlag(CellFlagBold)
	if cell.HasFlag(CellFlagBold) {
		t.Error("expected bold flag to be cleared")
	}
	if !cell.HasFlag(CellFlagItalic) {
		t.Error("expected italic flag to remain")
	}
}

func TestCellDirty(t *testing.T) {
	cell := NewCell(nil, nil)

	if cell.IsDirty() {
		t.Error("expected cell not dirty initially")
	}

	cell.MarkDirty()
	if !cell.IsDirty() {
		t.Error("expected cell to be dirty")
	}

	cell.ClearDirty()
	if cell.IsDirty() {
		t.Error("expected cell not dirty after clear")
	}
}

func TestCellHiddenFlagDrivesActual(t *testing.T) {
	cell := NewCell(nil, nil)
	cell.SetFlag(CellFlagHidden)
	cell.RestoreActual()

	if !cell.ActualHidden {
		t.Error("expected hidden flag to hide the cell")
	}
}

func TestCellCopyAppearanceFrom(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	src := NewCell(red, DefaultBackground)
	src.Glyph = 'S'
	src.SetFlag(CellFlagUnderline)

	dst := NewCell(nil, nil)
	dst.Glyph = 'D'
	dst.MarkDirty()
	dst.CopyAppearanceFrom(&src)

	if dst.Glyph != 'D' {
		t.Errorf("expected glyph untouched, got %q", dst.Glyph)
	}
	if dst.Foreground != red {
		t.Error("expected foreground to be copied")
	}
	if !dst.HasFlag(CellFlagUnderline) {
		t.Error("expected flags to be copied")
	}
	if !dst.IsDirty() {
		t.Error("expected dirty state to be kept")
	}
}

func TestCellEqual(t *testing.T) {
	a := NewCell(nil, nil)
	b := NewCell(DefaultForeground, DefaultBackground)
	b.MarkDirty()

	if !a.Equal(&b) {
		t.Error("expected nil colors to equal the defaults and dirty state to be ignored")
	}

	b.Glyph = 'x'
	if a.Equal(&b) {
		t.Error("expected different glyphs to differ")
	}
}
