package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	textsurface "github.com/vrosnet/go-text-surface"
	"github.com/vrosnet/go-text-surface/internal/config"
)

// input is a surface opened from the command line. Files with a surface
// extension are decoded; anything else is treated as ANSI text and captured
// through a Console into a single-frame surface.
type input struct {
	surface *textsurface.AnimatedSurface
	console *textsurface.Console
}

func openInput(path string, cfg *config.Config) (*input, error) {
	if _, err := textsurface.FormatFromPath(path); err == nil {
		s, err := textsurface.LoadFile(path, textsurface.WithFontResolver(cfg.FontResolver()))
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return &input{surface: s}, nil
	}

	var r io.Reader = os.Stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return captureConsole(name, r, cfg)
}

func captureConsole(name string, r io.Reader, cfg *config.Config) (*input, error) {
	con := textsurface.NewConsole(cfg.ConsoleOptions()...)
	if _, err := io.Copy(con, r); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	s := textsurface.NewAnimatedSurface(name, con.Width(), con.Height())
	s.AddFrame(con.Grid())
	return &input{surface: s, console: con}, nil
}

// selectFrame makes index the active frame. Negative means keep the current one.
func (in *input) selectFrame(index int) (*textsurface.Grid, error) {
	if index >= in.surface.FrameCount() {
		return nil, fmt.Errorf("frame %d out of range (%d frames)", index, in.surface.FrameCount())
	}
	if index >= 0 {
		in.surface.SetCurrentFrameIndex(index)
	}
	return in.surface.CurrentFrame()
}

// cursor returns the console cursor when the input was captured from ANSI text.
func (in *input) cursor() *textsurface.Cursor {
	if in.console == nil {
		return nil
	}
	return in.console.Cursor()
}
