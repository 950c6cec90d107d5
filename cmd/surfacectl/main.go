package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	textsurface "github.com/vrosnet/go-text-surface"
	"github.com/vrosnet/go-text-surface/internal/config"
	"github.com/vrosnet/go-text-surface/internal/tui"
)

var (
	configFile string
	// play
	loop       bool
	exitOnDone bool
	// render, print
	outputFile string
	frameIndex int
	drawCursor bool
	asJSON     bool
	styled     bool
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("surfacectl: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "surfacectl",
		Short:        "play, render and inspect animated text surfaces",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")

	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "play a surface in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}
	playCmd.Flags().BoolVar(&loop, "loop", false, "repeat regardless of the file")
	playCmd.Flags().BoolVar(&exitOnDone, "exit", false, "exit when a non-repeating animation finishes")

	renderCmd := &cobra.Command{
		Use:   "render [file]",
		Short: "render a surface to png (one frame) or gif (all frames)",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output image (.png or .gif)")
	renderCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame to render as png")
	renderCmd.Flags().BoolVar(&drawCursor, "cursor", false, "draw the console cursor (ANSI input only)")
	_ = renderCmd.MarkFlagRequired("output")

	printCmd := &cobra.Command{
		Use:   "print [file]",
		Short: "print the text of one frame",
		Args:  cobra.ExactArgs(1),
		RunE:  runPrint,
	}
	printCmd.Flags().IntVar(&frameIndex, "frame", -1, "frame to print")
	printCmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON snapshot")
	printCmd.Flags().BoolVar(&styled, "styled", false, "include styled segments in the JSON snapshot")

	infoCmd := &cobra.Command{
		Use:   "info [file]",
		Short: "describe a surface as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	convertCmd := &cobra.Command{
		Use:   "convert [in] [out]",
		Short: "convert between json, yaml and toml, or capture ANSI text into a surface file",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert,
	}

	rootCmd.AddCommand(playCmd, renderCmd, printCmd, infoCmd, convertCmd)
	return rootCmd
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

func open(path string) (*input, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	in, err := openInput(path, cfg)
	if err != nil {
		return nil, nil, err
	}
	return in, cfg, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	in, cfg, err := open(args[0])
	if err != nil {
		return err
	}
	if loop || cfg.Play.Loop {
		in.surface.Repeat = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	player := tui.NewPlayer(screen, in.surface, cfg.TickInterval())
	player.ExitOnFinish = exitOnDone
	player.Cursor = in.cursor()

	if err := player.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	in, cfg, err := open(args[0])
	if err != nil {
		return err
	}

	sc := &textsurface.ScreenshotConfig{
		Font:       in.surface.Face(),
		CellWidth:  cfg.Render.CellWidth,
		CellHeight: cfg.Render.CellHeight,
	}
	if drawCursor || cfg.Render.Cursor {
		sc.Cursor = in.cursor()
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(outputFile)) {
	case ".gif":
		if err := in.surface.EncodeGIF(f, sc); err != nil {
			return fmt.Errorf("encode gif: %w", err)
		}
		log.Printf("wrote %s (%d frames)", outputFile, in.surface.FrameCount())
	case ".png":
		frame, err := in.selectFrame(frameIndex)
		if err != nil {
			return err
		}
		if err := png.Encode(f, textsurface.RenderGrid(frame, sc)); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
		log.Printf("wrote %s (frame %d)", outputFile, in.surface.CurrentFrameIndex())
	default:
		return fmt.Errorf("unsupported image format %q", filepath.Ext(outputFile))
	}
	return f.Close()
}

func runPrint(cmd *cobra.Command, args []string) error {
	in, _, err := open(args[0])
	if err != nil {
		return err
	}
	frame, err := in.selectFrame(frameIndex)
	if err != nil {
		return err
	}

	if !asJSON {
		fmt.Fprintln(cmd.OutOrStdout(), frame.String())
		return nil
	}

	detail := textsurface.SnapshotDetailText
	if styled {
		detail = textsurface.SnapshotDetailStyled
	}
	return writeJSON(cmd, frame.Snapshot(detail, in.cursor()))
}

func runInfo(cmd *cobra.Command, args []string) error {
	in, _, err := open(args[0])
	if err != nil {
		return err
	}
	return writeJSON(cmd, in.surface.Snapshot(textsurface.SnapshotDetailText))
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, _, err := open(args[0])
	if err != nil {
		return err
	}
	if err := in.surface.SaveFile(args[1]); err != nil {
		return err
	}
	log.Printf("wrote %s", args[1])
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
