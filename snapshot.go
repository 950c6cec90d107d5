package textsurface

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
)

// Snapshot is a read-only capture of a grid, meant for JSON output and tests.
type Snapshot struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Cursor *SnapshotCursor `json:"cursor,omitempty"`
	Lines  []SnapshotLine  `json:"lines"`
}

// SnapshotCursor holds cursor state.
type SnapshotCursor struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Visible bool `json:"visible"`
}

// SnapshotLine represents a single row.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
}

// SnapshotSegment is a run of cells sharing the same style.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Dim           bool `json:"dim,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Blink         bool `json:"blink,omitempty"`
	Reverse       bool `json:"reverse,omitempty"`
	Hidden        bool `json:"hidden,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Snapshot captures the grid content. Pass the cursor writing into the grid,
// or nil to leave the cursor out.
func (g *Grid) Snapshot(detail SnapshotDetail, cursor *Cursor) *Snapshot {
	snap := &Snapshot{
		Width:  g.width,
		Height: g.height,
		Lines:  make([]SnapshotLine, g.height),
	}
	if cursor != nil && cursor.Grid() == g {
		p := cursor.Position()
		snap.Cursor = &SnapshotCursor{X: p.X, Y: p.Y, Visible: cursor.IsVisible}
	}

	for y := 0; y < g.height; y++ {
		line := SnapshotLine{Text: g.LineContent(y)}
		if detail == SnapshotDetailStyled {
			line.Segments = g.rowSegments(y)
		}
		snap.Lines[y] = line
	}
	return snap
}

// rowSegments converts a row to styled segments (runs of same style).
func (g *Grid) rowSegments(y int) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var chars []rune

	flush := func() {
		if current != nil && len(chars) > 0 {
			current.Text = string(chars)
			segments = append(segments, *current)
		}
	}

	for x := 0; x < g.width; x++ {
		cell := g.Cell(x, y)
		fg := colorToHex(cell.Foreground)
		bg := colorToHex(cell.Background)
		attrs := cellAttrsToSnapshot(cell)

		if current == nil || current.Fg != fg || current.Bg != bg || current.Attributes != attrs {
			flush()
			current = &SnapshotSegment{Fg: fg, Bg: bg, Attributes: attrs}
			chars = nil
		}

		ch := cell.Glyph
		if ch == 0 {
			ch = ' '
		}
		chars = append(chars, ch)
	}
	flush()

	return segments
}

func cellAttrsToSnapshot(cell *Cell) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:          cell.HasFlag(CellFlagBold),
		Dim:           cell.HasFlag(CellFlagDim),
		Italic:        cell.HasFlag(CellFlagItalic),
		Underline:     cell.HasFlag(CellFlagUnderline),
		Blink:         cell.HasFlag(CellFlagBlink),
		Reverse:       cell.HasFlag(CellFlagReverse),
		Hidden:        cell.HasFlag(CellFlagHidden),
		Strikethrough: cell.HasFlag(CellFlagStrike),
	}
}

// SurfaceSnapshot describes an animation and its active frame.
type SurfaceSnapshot struct {
	Name              string    `json:"name"`
	Width             int       `json:"width"`
	Height            int       `json:"height"`
	FrameCount        int       `json:"frame_count"`
	CurrentFrame      int       `json:"current_frame"`
	State             string    `json:"state"`
	AnimationDuration string    `json:"animation_duration"`
	Repeat            bool      `json:"repeat"`
	Frame             *Snapshot `json:"frame,omitempty"`
}

// Snapshot captures playback state and, when there is one, the active frame.
func (a *AnimatedSurface) Snapshot(detail SnapshotDetail) *SurfaceSnapshot {
	snap := &SurfaceSnapshot{
		Name:              a.name,
		Width:             a.width,
		Height:            a.height,
		FrameCount:        len(a.frames),
		CurrentFrame:      a.currentIndex,
		State:             a.state.String(),
		AnimationDuration: a.duration.String(),
		Repeat:            a.Repeat,
	}
	if a.active != nil {
		snap.Frame = a.active.Snapshot(detail, nil)
	}
	return snap
}
