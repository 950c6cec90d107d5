package textsurface

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ScreenshotConfig controls how a grid is rendered to an image.
type ScreenshotConfig struct {
	// Font face used for glyphs. Nil means the built-in 7x13 face.
	Font font.Face

	// CellWidth and CellHeight override the cell dimensions.
	// If zero, derived from font metrics.
	CellWidth  int
	CellHeight int

	// DefaultFG and DefaultBG replace nil cell colors. Nil means the grid defaults.
	DefaultFG *color.RGBA
	DefaultBG *color.RGBA

	// Cursor is drawn on top of the grid when it is attached to it and ShouldDraw reports true.
	Cursor *Cursor

	// IgnoreEffects draws stored colors instead of the actual ones computed by effects.
	IgnoreEffects bool
}

func (cfg *ScreenshotConfig) face() font.Face {
	if cfg == nil || cfg.Font == nil {
		return defaultFace()
	}
	return cfg.Font
}

// cellSize measures 'M' the way terminals size monospace cells.
func (cfg *ScreenshotConfig) cellSize(face font.Face) (int, int) {
	var w, h int
	if cfg != nil {
		w, h = cfg.CellWidth, cfg.CellHeight
	}
	if w == 0 {
		adv, _ := face.GlyphAdvance('M')
		w = adv.Ceil()
		if w == 0 {
			w = 7
		}
	}
	if h == 0 {
		h = face.Metrics().Height.Ceil()
	}
	return w, h
}

// RenderGrid draws g into a new RGBA image, one cell per CellWidth x CellHeight block.
// Reverse, dim, underline, strike and hidden attributes are honored.
func RenderGrid(g *Grid, cfg *ScreenshotConfig) *image.RGBA {
	if cfg == nil {
		cfg = &ScreenshotConfig{}
	}
	face := cfg.face()
	cellW, cellH := cfg.cellSize(face)

	defaultFG := resolveColor(g.DefaultForeground, DefaultForeground)
	if cfg.DefaultFG != nil {
		defaultFG = *cfg.DefaultFG
	}
	defaultBG := resolveColor(g.DefaultBackground, DefaultBackground)
	if cfg.DefaultBG != nil {
		defaultBG = *cfg.DefaultBG
	}

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellW, g.Height()*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(defaultBG), image.Point{}, draw.Src)

	ascent := face.Metrics().Ascent.Ceil()

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := g.Cell(x, y)
			fgSrc, bgSrc, hidden := cell.ActualForeground, cell.ActualBackground, cell.ActualHidden
			if cfg.IgnoreEffects {
				fgSrc, bgSrc, hidden = cell.Foreground, cell.Background, cell.HasFlag(CellFlagHidden)
			}
			fg := resolveColor(fgSrc, defaultFG)
			bg := resolveColor(bgSrc, defaultBG)
			if cell.HasFlag(CellFlagReverse) {
				fg, bg = bg, fg
			}
			if cell.HasFlag(CellFlagDim) {
				fg = dimColor(fg)
			}

			px, py := x*cellW, y*cellH
			rect := image.Rect(px, py, px+cellW, py+cellH)
			draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)

			if hidden {
				continue
			}
			drawGlyph(img, face, cell.Glyph, fg, px, py+ascent)

			if cell.HasFlag(CellFlagUnderline) {
				line := image.Rect(px, py+ascent+2, px+cellW, py+ascent+3).Intersect(rect)
				draw.Draw(img, line, image.NewUniform(fg), image.Point{}, draw.Src)
			}
			if cell.HasFlag(CellFlagStrike) {
				mid := py + cellH/2
				draw.Draw(img, image.Rect(px, mid, px+cellW, mid+1), image.NewUniform(fg), image.Point{}, draw.Src)
			}
		}
	}

	if c := cfg.Cursor; c != nil && c.Grid() == g && c.ShouldDraw() {
		drawCursor(img, face, c, cellW, cellH, ascent, defaultFG)
	}

	return img
}

func drawGlyph(img *image.RGBA, face font.Face, glyph rune, fg color.RGBA, x, baseline int) {
	if glyph == 0 || glyph == ' ' {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(string(glyph))
}

func drawCursor(img *image.RGBA, face font.Face, c *Cursor, cellW, cellH, ascent int, defaultFG color.RGBA) {
	rc := c.RenderCell()
	p := c.Position()
	px, py := p.X*cellW, p.Y*cellH
	if rc.ActualBackground != nil {
		bg := resolveColor(rc.ActualBackground, DefaultBackground)
		draw.Draw(img, image.Rect(px, py, px+cellW, py+cellH), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	drawGlyph(img, face, rc.Glyph, resolveColor(rc.ActualForeground, defaultFG), px, py+ascent)
}

// Screenshot renders the active frame with the surface's font face.
func (a *AnimatedSurface) Screenshot() (*image.RGBA, error) {
	frame, err := a.CurrentFrame()
	if err != nil {
		return nil, err
	}
	return RenderGrid(frame, &ScreenshotConfig{Font: a.Face()}), nil
}

// EncodeGIF writes every frame as an animated GIF. Frame delays follow the
// per-frame duration of AnimationDuration and the loop count follows Repeat.
func (a *AnimatedSurface) EncodeGIF(w io.Writer, cfg *ScreenshotConfig) error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}
	if cfg == nil {
		cfg = &ScreenshotConfig{Font: a.Face()}
	}

	delay := 0
	if a.duration > 0 {
		delay = int(a.duration.Milliseconds() / 10 / int64(len(a.frames)))
	}

	anim := &gif.GIF{LoopCount: -1}
	if a.Repeat {
		anim.LoopCount = 0
	}
	for _, frame := range a.frames {
		rgba := RenderGrid(frame, cfg)
		paletted := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, rgba.Bounds(), rgba, image.Point{})
		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}
