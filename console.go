package textsurface

import (
	"sync"
	"time"

	"github.com/danielgatis/go-ansicode"
)

// Ensure Console implements ansicode.Handler
var _ ansicode.Handler = (*Console)(nil)

const (
	// DefaultConsoleWidth is the default number of columns.
	DefaultConsoleWidth = 80
	// DefaultConsoleHeight is the default number of rows.
	DefaultConsoleHeight = 25

	// TextBlinkInterval is the phase length of the effect attached to SGR 5/6 text.
	TextBlinkInterval = 500 * time.Millisecond
)

// Console decodes a stream of text and ANSI escape sequences into a Grid,
// driving a Cursor the way application code would.
//
// Printable input goes through the cursor's print template, so wrapping and
// row shifting follow the cursor model. SGR sequences rewrite the template.
// Sequences the console does not model are decoded and dropped.
//
// Console is safe for concurrent use: Write may be fed from one goroutine while
// another calls Update or reads the content.
type Console struct {
	mu sync.RWMutex

	width  int
	height int

	grid   *Grid
	cursor *Cursor
	saved  *savedCursor
	blink  *Blink

	title string

	responseProvider  ResponseProvider
	bellProvider      BellProvider
	titleProvider     TitleProvider
	scrollback        ScrollbackProvider
	recordingProvider RecordingProvider

	middleware *Middleware

	decoder *ansicode.Decoder
}

type savedCursor struct {
	position   Point
	appearance Appearance
	effect     Effect
}

// Option configures a Console.
type Option func(*Console)

// WithSize sets the console dimensions in cells. Non-positive values keep the default.
func WithSize(width, height int) Option {
	return func(c *Console) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithResponse sets where replies to status queries are written.
func WithResponse(p ResponseProvider) Option {
	return func(c *Console) {
		c.responseProvider = p
	}
}

// WithBell sets the provider notified on BEL.
func WithBell(p BellProvider) Option {
	return func(c *Console) {
		c.bellProvider = p
	}
}

// WithTitle sets the provider notified on title changes.
func WithTitle(p TitleProvider) Option {
	return func(c *Console) {
		c.titleProvider = p
	}
}

// WithScrollback sets the storage receiving rows shifted off the top.
func WithScrollback(storage ScrollbackProvider) Option {
	return func(c *Console) {
		c.scrollback = storage
	}
}

// WithMiddleware sets functions to intercept handler calls.
// Each middleware receives the original parameters and a next function to call the default implementation.
func WithMiddleware(mw *Middleware) Option {
	return func(c *Console) {
		if c.middleware == nil {
			c.middleware = &Middleware{}
		}
		c.middleware.Merge(mw)
	}
}

// WithRecording captures all raw input bytes before processing.
func WithRecording(p RecordingProvider) Option {
	return func(c *Console) {
		c.recordingProvider = p
	}
}

// NewConsole creates a console over a fresh grid.
func NewConsole(opts ...Option) *Console {
	c := &Console{
		width:             DefaultConsoleWidth,
		height:            DefaultConsoleHeight,
		responseProvider:  NoopResponse{},
		bellProvider:      NoopBell{},
		titleProvider:     NoopTitle{},
		recordingProvider: NoopRecording{},
		blink:             NewBlink(TextBlinkInterval),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.grid = NewGrid(c.width, c.height)
	if c.scrollback != nil {
		c.grid.SetScrollbackProvider(c.scrollback)
	}
	c.cursor = NewCursor(c.grid)
	c.decoder = ansicode.NewDecoder(c)

	return c
}

// Width returns the number of columns.
func (c *Console) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Console) Height() int {
	return c.height
}

// Grid returns the grid the console writes into.
// Reading it while another goroutine writes to the console is a race; use
// String, LineContent or Snapshot instead.
func (c *Console) Grid() *Grid {
	return c.grid
}

// Cursor returns the cursor driven by the decoder.
func (c *Console) Cursor() *Cursor {
	return c.cursor
}

// Title returns the last title set by OSC 0 or 2.
func (c *Console) Title() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.title
}

// Write decodes data and applies it to the grid. Implements io.Writer.
func (c *Console) Write(data []byte) (int, error) {
	c.recordingProvider.Record(data)
	return c.decoder.Write(data)
}

// WriteString is a convenience method that converts the string to bytes and calls Write.
func (c *Console) WriteString(s string) (int, error) {
	return c.Write([]byte(s))
}

// Update advances cell effects and the cursor effect.
func (c *Console) Update(elapsed time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.grid.UpdateEffects(elapsed)
	c.cursor.Update(elapsed)
}

// LineContent returns the text of row y with trailing spaces trimmed.
func (c *Console) LineContent(y int) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.LineContent(y)
}

// String returns the grid content as newline-separated rows. Implements fmt.Stringer.
func (c *Console) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.String()
}

// Snapshot captures the grid and cursor.
func (c *Console) Snapshot(detail SnapshotDetail) *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.grid.Snapshot(detail, c.cursor)
}

// SetMiddleware sets the middleware at runtime.
func (c *Console) SetMiddleware(mw *Middleware) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.middleware = mw
}

// writeResponseString writes a reply through the response provider.
func (c *Console) writeResponseString(s string) {
	c.mu.RLock()
	provider := c.responseProvider
	c.mu.RUnlock()

	if provider != nil {
		provider.Write([]byte(s))
	}
}
