package textsurface

import "io"

// ResponseProvider receives replies a Console generates for status queries
// (e.g. the cursor position report). Usually the input side of a pty.
type ResponseProvider = io.Writer

// NoopResponse discards every reply.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// --- Bell ---

// BellProvider is notified for every BEL (0x07) a Console decodes.
type BellProvider interface {
	Ring()
}

// NoopBell ignores the bell.
type NoopBell struct{}

func (NoopBell) Ring() {}

// --- Title ---

// TitleProvider is told about window title changes (OSC 0 and OSC 2).
type TitleProvider interface {
	SetTitle(title string)
}

// NoopTitle ignores title changes.
type NoopTitle struct{}

func (NoopTitle) SetTitle(string) {}

// --- Scrollback ---

// ScrollbackProvider keeps the rows a Grid drops when it shifts up.
// Grids only push rows while MaxLines is positive.
type ScrollbackProvider interface {
	// Push stores a copy of row, evicting the oldest row past MaxLines.
	Push(row []Cell)
	Len() int
	// Line returns the stored row at index, 0 being the oldest, or nil.
	Line(index int) []Cell
	Clear()
	SetMaxLines(max int)
	MaxLines() int
}

// NoopScrollback drops every row. It is the default for new grids.
type NoopScrollback struct{}

func (NoopScrollback) Push([]Cell)     {}
func (NoopScrollback) Len() int        { return 0 }
func (NoopScrollback) Line(int) []Cell { return nil }
func (NoopScrollback) Clear()          {}
func (NoopScrollback) SetMaxLines(int) {}
func (NoopScrollback) MaxLines() int   { return 0 }

// MemoryScrollback is a bounded in-memory ScrollbackProvider.
//
//	g := textsurface.NewGrid(80, 25)
//	g.SetScrollbackProvider(textsurface.NewMemoryScrollback(500))
type MemoryScrollback struct {
	rows     [][]Cell
	maxLines int
}

// NewMemoryScrollback creates a scrollback holding at most maxLines rows.
func NewMemoryScrollback(maxLines int) *MemoryScrollback {
	return &MemoryScrollback{maxLines: maxLines}
}

func (m *MemoryScrollback) Push(row []Cell) {
	stored := make([]Cell, len(row))
	copy(stored, row)
	m.rows = append(m.rows, stored)
	m.trim()
}

func (m *MemoryScrollback) Len() int {
	return len(m.rows)
}

func (m *MemoryScrollback) Line(index int) []Cell {
	if index < 0 || index >= len(m.rows) {
		return nil
	}
	return m.rows[index]
}

func (m *MemoryScrollback) Clear() {
	m.rows = nil
}

func (m *MemoryScrollback) SetMaxLines(max int) {
	m.maxLines = max
	m.trim()
}

func (m *MemoryScrollback) MaxLines() int {
	return m.maxLines
}

func (m *MemoryScrollback) trim() {
	if m.maxLines > 0 && len(m.rows) > m.maxLines {
		m.rows = m.rows[len(m.rows)-m.maxLines:]
	}
}

// --- Recording ---

// RecordingProvider captures the raw bytes written to a Console before decoding,
// so a session can be replayed into another console later.
type RecordingProvider interface {
	Record(data []byte)
	Data() []byte
	Clear()
}

// NoopRecording records nothing.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

// MemoryRecording keeps every recorded byte in memory.
type MemoryRecording struct {
	data []byte
}

// NewMemoryRecording creates an empty recording.
func NewMemoryRecording() *MemoryRecording {
	return &MemoryRecording{}
}

func (r *MemoryRecording) Record(data []byte) {
	r.data = append(r.data, data...)
}

// Data returns a copy of the recorded bytes.
func (r *MemoryRecording) Data() []byte {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

func (r *MemoryRecording) Clear() {
	r.data = nil
}

var (
	_ ResponseProvider   = NoopResponse{}
	_ BellProvider       = NoopBell{}
	_ TitleProvider      = NoopTitle{}
	_ ScrollbackProvider = NoopScrollback{}
	_ ScrollbackProvider = (*MemoryScrollback)(nil)
	_ RecordingProvider  = NoopRecording{}
	_ RecordingProvider  = (*MemoryRecording)(nil)
)
