package textsurface

import (
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Effect computes the actual rendering attributes of the cells that carry it.
// One effect value may be shared by many cells; Grid.UpdateEffects advances it
// once per call and then applies it to each cell. Sharing is detected by
// comparing effect values, so implementations should be pointer types; values
// of non-comparable types are advanced once per cell instead.
type Effect interface {
	// Update advances the effect clock by elapsed.
	Update(elapsed time.Duration)
	// Apply rewrites cell.Actual* from the stored attributes and reports whether anything changed.
	Apply(cell *Cell) bool
}

// Blink hides the glyph every other Interval.
type Blink struct {
	// Interval is the time spent in each of the visible and hidden phases.
	Interval time.Duration
	// BlinkCount stops the effect after this many hide/show cycles. 0 blinks forever.
	BlinkCount int

	hidden   bool
	elapsed  time.Duration
	cycles   int
	finished bool
}

// NewBlink creates a blink effect that never stops.
func NewBlink(interval time.Duration) *Blink {
	return &Blink{Interval: interval}
}

// Update toggles the hidden phase each time a full interval has elapsed.
func (b *Blink) Update(elapsed time.Duration) {
	if b.finished || b.Interval <= 0 {
		return
	}
	b.elapsed += elapsed
	for b.elapsed >= b.Interval {
		b.elapsed -= b.Interval
		b.hidden = !b.hidden
		if !b.hidden {
			b.cycles++
			if b.BlinkCount > 0 && b.cycles >= b.BlinkCount {
				b.finished = true
				b.elapsed = 0
				return
			}
		}
	}
}

// Apply hides the cell while the effect is in its hidden phase.
func (b *Blink) Apply(cell *Cell) bool {
	prev := cell.ActualHidden
	cell.ActualForeground = cell.Foreground
	cell.ActualBackground = cell.Background
	cell.ActualHidden = cell.HasFlag(CellFlagHidden) || b.hidden
	return prev != cell.ActualHidden
}

// Visible reports whether the effect is currently in its visible phase.
func (b *Blink) Visible() bool {
	return !b.hidden
}

// Finished reports whether a bounded blink has completed all its cycles.
func (b *Blink) Finished() bool {
	return b.finished
}

// Restart puts the effect back in its initial visible phase.
func (b *Blink) Restart() {
	b.hidden = false
	b.elapsed = 0
	b.cycles = 0
	b.finished = false
}

// Fade blends cell colors from From to To over Duration in CIE-L*a*b* space.
// A nil From starts from the cell's own stored color.
type Fade struct {
	From     color.Color
	To       color.Color
	Duration time.Duration

	// FadeForeground and FadeBackground select which actual color is rewritten.
	FadeForeground bool
	FadeBackground bool

	// Repeat restarts the fade once Duration has elapsed.
	Repeat bool

	elapsed time.Duration
}

// NewFade creates a one-shot background fade towards to.
func NewFade(to color.Color, duration time.Duration) *Fade {
	return &Fade{To: to, Duration: duration, FadeBackground: true}
}

// Update advances the fade clock, wrapping when Repeat is set.
func (f *Fade) Update(elapsed time.Duration) {
	if f.Duration <= 0 {
		return
	}
	f.elapsed += elapsed
	if f.elapsed > f.Duration {
		if f.Repeat {
			f.elapsed %= f.Duration
		} else {
			f.elapsed = f.Duration
		}
	}
}

// Progress returns how far the fade has run, in [0, 1].
func (f *Fade) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return float64(f.elapsed) / float64(f.Duration)
}

// Apply writes the blended colors into the cell's actual attributes.
func (f *Fade) Apply(cell *Cell) bool {
	prevFg := resolveColor(cell.ActualForeground, DefaultForeground)
	prevBg := resolveColor(cell.ActualBackground, DefaultBackground)

	cell.RestoreActual()
	t := f.Progress()
	if f.FadeForeground {
		cell.ActualForeground = blendColors(f.from(cell.Foreground), f.To, DefaultForeground, t)
	}
	if f.FadeBackground {
		cell.ActualBackground = blendColors(f.from(cell.Background), f.To, DefaultBackground, t)
	}

	return prevFg != resolveColor(cell.ActualForeground, DefaultForeground) ||
		prevBg != resolveColor(cell.ActualBackground, DefaultBackground)
}

func (f *Fade) from(own color.Color) color.Color {
	if f.From != nil {
		return f.From
	}
	return own
}

// blendColors mixes a and b. Nil or fully transparent inputs are replaced by fallback.
func blendColors(a, b color.Color, fallback color.RGBA, t float64) color.RGBA {
	ca := toColorful(a, fallback)
	cb := toColorful(b, fallback)
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 255}
}

func toColorful(c color.Color, fallback color.RGBA) colorful.Color {
	if cf, ok := colorful.MakeColor(resolveColor(c, fallback)); ok {
		return cf
	}
	cf, _ := colorful.MakeColor(fallback)
	return cf
}
