// Package textsurface provides grids of colored text cells, a cursor for
// writing into them, and frame-based animation over sequences of grids.
//
// Nothing here draws to a screen. A renderer reads cells (glyph, colors,
// attributes) and decides how to show them; the package only keeps the state
// consistent and advances it in time.
//
// # Quick Start
//
// Create a grid and print into it with a cursor:
//
//	g := textsurface.NewGrid(20, 5)
//	textsurface.NewCursor(g).
//	    Print("Hello").
//	    NewLine().
//	    Print("World")
//	fmt.Println(g.String()) // "Hello\nWorld"
//
// # Architecture
//
//   - [Cell]: a glyph with foreground, background, flags and an optional [Effect]
//   - [Grid]: a fixed-size row-major array of cells with default colors
//   - [Cursor]: a position plus a print template, bound weakly to one grid
//   - [AnimatedSurface]: an ordered list of grids played over a duration
//   - [Console]: an [io.Writer] that decodes ANSI escape sequences into a grid
//
// # Cursor
//
// A cursor never keeps its grid alive. When the grid is collected or
// [Grid.Dispose] is called, operations fail with [ErrNotAttached], which is
// recorded and available through [Cursor.Err]:
//
//	c := textsurface.NewCursor(g)
//	c.Print("abc").Right(2).Print("d")
//	if err := c.Err(); err != nil {
//	    // grid gone
//	}
//
// Printing past the last column continues on the next row. Printing past the
// last cell shifts the grid up one row when AutomaticallyShiftRowsUp is set.
//
// # Animation
//
// An external loop calls [AnimatedSurface.Update] with the elapsed time.
// The frame duration is AnimationDuration divided by the frame count, and at
// most one frame advances per call:
//
//	a := textsurface.NewAnimatedSurface("spinner", 1, 1)
//	for _, r := range `|/-\` {
//	    textsurface.NewCursor(a.CreateFrame()).PrintRune(r)
//	}
//	a.SetAnimationDuration(time.Second)
//	a.Repeat = true
//	a.Start()
//
//	for range time.Tick(time.Second / 30) {
//	    a.Update(time.Second / 30)
//	    draw(a.ActiveFrame())
//	}
//
// Observers receive every state change ([AnimationPlaying],
// [AnimationFinished], ...) through [AnimatedSurface.Subscribe].
//
// # Effects
//
// An [Effect] rewrites the actual colors and visibility of a cell without
// touching its stored ones. [Blink] toggles visibility; [Fade] blends the
// foreground toward a target color. Call [Grid.UpdateEffects] to advance them.
//
// # Console
//
// [Console] feeds text and ANSI sequences through a cursor:
//
//	con := textsurface.NewConsole(textsurface.WithSize(40, 10))
//	con.WriteString("\x1b[31mred\x1b[0m plain")
//	fmt.Println(con.String())
//
// Cursor movement, erase, insert/delete, SGR, save/restore, scrolling, title
// and device status are handled. Other sequences are decoded and ignored.
// Handler calls can be intercepted with [Middleware].
//
// # Persistence and Rendering
//
// Surfaces are saved as JSON, YAML or TOML with [AnimatedSurface.SaveFile] and
// read with [LoadFile]. Fonts are stored by name and resolved through a
// [FontResolver]; unresolved fonts fall back to a built-in 7x13 face.
//
// [RenderGrid] rasterizes a grid into an [image.RGBA] and
// [AnimatedSurface.EncodeGIF] writes every frame as an animated GIF.
//
// # Thread Safety
//
// Grid, Cursor and AnimatedSurface are not safe for concurrent use. Console
// locks internally so that Write may run on a different goroutine than the
// reader.
package textsurface
