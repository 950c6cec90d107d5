package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	textsurface "github.com/vrosnet/go-text-surface"
)

// DefaultInterval is the player tick at 30 frames per second.
const DefaultInterval = time.Second / 30

// Player drives an AnimatedSurface from a ticker and draws the active frame.
// It owns the surface while Run executes; nothing else may touch it.
type Player struct {
	screen   tcell.Screen
	surface  *textsurface.AnimatedSurface
	interval time.Duration

	// ExitOnFinish makes Run return once a non-repeating animation finishes.
	ExitOnFinish bool

	// Cursor is drawn over the surface when it is attached to the active frame.
	Cursor *textsurface.Cursor

	last time.Time
}

// NewPlayer creates a player. A non-positive interval means DefaultInterval.
func NewPlayer(screen tcell.Screen, surface *textsurface.AnimatedSurface, interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{
		screen:   screen,
		surface:  surface,
		interval: interval,
	}
}

// Interval returns the tick period.
func (p *Player) Interval() time.Duration {
	return p.interval
}

// Step advances the surface by elapsed and redraws the screen.
func (p *Player) Step(elapsed time.Duration) {
	p.surface.Update(elapsed)
	if frame := p.surface.ActiveFrame(); frame != nil {
		frame.UpdateEffects(elapsed)
	}
	if p.Cursor != nil {
		p.Cursor.Update(elapsed)
	}
	p.Render()
}

// Render draws the active frame without advancing time.
func (p *Player) Render() {
	p.screen.Clear()
	frame := p.surface.ActiveFrame()
	if frame != nil {
		ox, oy := Origin(p.screen, p.surface.Width(), p.surface.Height(), p.surface.Center)
		Draw(p.screen, frame, ox, oy)
		if p.Cursor != nil && p.Cursor.Grid() == frame {
			DrawCursor(p.screen, p.Cursor, ox, oy)
		}
	}
	p.screen.Show()
}

// Run starts playback and redraws on every tick until ctx is cancelled, the
// user presses Escape, q or Ctrl-C, or (with ExitOnFinish) the animation
// finishes. Run does not Fini the screen; the caller owns it. The goroutine
// that polls for events stays blocked in PollEvent after Run returns, until
// the caller calls Fini on the screen.
func (p *Player) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	p.surface.Activate()
	defer p.surface.Deactivate()
	p.surface.Restart()
	p.last = time.Now()
	p.Render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				p.screen.Sync()
				p.Render()
			}

		case now := <-ticker.C:
			elapsed := now.Sub(p.last)
			p.last = now
			p.Step(elapsed)
			if p.ExitOnFinish && p.surface.State() == textsurface.AnimationFinished {
				return nil
			}
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
