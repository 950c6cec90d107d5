//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"
	"time"

	textsurface "github.com/vrosnet/go-text-surface"
)

// Registries of live objects, keyed by the ids handed to JavaScript.
var (
	consoles      = make(map[int]*consoleInstance)
	surfaces      = make(map[int]*surfaceInstance)
	nextConsoleID = 1
	nextSurfaceID = 1
)

type consoleInstance struct {
	console  *textsurface.Console
	handlers *jsHandlers
}

type surfaceInstance struct {
	surface  *textsurface.AnimatedSurface
	observer *jsStateObserver
}

func main() {
	js.Global().Set("TextSurface", js.ValueOf(map[string]interface{}{
		// Console
		"createConsole":  js.FuncOf(createConsole),
		"destroyConsole": js.FuncOf(destroyConsole),
		"write":          js.FuncOf(write),
		"writeString":    js.FuncOf(writeString),
		"updateConsole":  js.FuncOf(updateConsole),
		"getString":      js.FuncOf(getString),
		"lineContent":    js.FuncOf(lineContent),
		"cursorPos":      js.FuncOf(cursorPos),
		"title":          js.FuncOf(title),
		"snapshotJSON":   js.FuncOf(snapshotJSON),
		"onBell":         js.FuncOf(onBell),
		"onTitle":        js.FuncOf(onTitle),
		"onResponse":     js.FuncOf(onResponse),
		"onRecording":    js.FuncOf(onRecording),

		// Surfaces
		"loadSurface":         js.FuncOf(loadSurface),
		"destroySurface":      js.FuncOf(destroySurface),
		"surfaceStart":        js.FuncOf(surfaceStart),
		"surfaceStop":         js.FuncOf(surfaceStop),
		"surfaceRestart":      js.FuncOf(surfaceRestart),
		"surfaceUpdate":       js.FuncOf(surfaceUpdate),
		"surfaceFrame":        js.FuncOf(surfaceFrame),
		"surfaceState":        js.FuncOf(surfaceState),
		"surfaceSnapshotJSON": js.FuncOf(surfaceSnapshotJSON),
		"onSurfaceState":      js.FuncOf(onSurfaceState),
	}))

	select {}
}

// ============================================================================
// Console
// ============================================================================

func createConsole(_ js.Value, args []js.Value) interface{} {
	cols, rows := textsurface.DefaultConsoleWidth, textsurface.DefaultConsoleHeight
	if len(args) >= 2 {
		cols = args[0].Int()
		rows = args[1].Int()
	}

	handlers := newJSHandlers()
	con := textsurface.NewConsole(
		textsurface.WithSize(cols, rows),
		textsurface.WithBell(handlers.bell),
		textsurface.WithTitle(handlers.title),
		textsurface.WithResponse(handlers.response),
		textsurface.WithRecording(handlers.recording),
	)

	id := nextConsoleID
	nextConsoleID++
	consoles[id] = &consoleInstance{console: con, handlers: handlers}
	return id
}

func destroyConsole(_ js.Value, args []js.Value) interface{} {
	if len(args) >= 1 {
		delete(consoles, args[0].Int())
	}
	return nil
}

func getConsole(args []js.Value) *consoleInstance {
	if len(args) < 1 {
		return nil
	}
	return consoles[args[0].Int()]
}

func write(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil || len(args) < 2 {
		return -1
	}
	data := make([]byte, args[1].Length())
	js.CopyBytesToGo(data, args[1])

	n, _ := inst.console.Write(data)
	return n
}

func writeString(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil || len(args) < 2 {
		return -1
	}
	n, _ := inst.console.WriteString(args[1].String())
	return n
}

// updateConsole(id, elapsedMs) advances blink effects.
func updateConsole(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil || len(args) < 2 {
		return nil
	}
	inst.console.Update(millis(args[1]))
	return nil
}

func getString(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil {
		return ""
	}
	return inst.console.String()
}

func lineContent(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil || len(args) < 2 {
		return ""
	}
	return inst.console.LineContent(args[1].Int())
}

func cursorPos(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil {
		return nil
	}
	snap := inst.console.Snapshot(textsurface.SnapshotDetailText)
	if snap.Cursor == nil {
		return nil
	}
	return map[string]interface{}{"x": snap.Cursor.X, "y": snap.Cursor.Y, "visible": snap.Cursor.Visible}
}

func title(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil {
		return ""
	}
	return inst.console.Title()
}

func snapshotJSON(_ js.Value, args []js.Value) interface{} {
	inst := getConsole(args)
	if inst == nil {
		return ""
	}
	return marshal(inst.console.Snapshot(detailArg(args, 1)))
}

func onBell(_ js.Value, args []js.Value) interface{} {
	if inst := getConsole(args); inst != nil && len(args) >= 2 {
		inst.handlers.bell.callback = args[1]
	}
	return nil
}

func onTitle(_ js.Value, args []js.Value) interface{} {
	if inst := getConsole(args); inst != nil && len(args) >= 2 {
		inst.handlers.title.callback = args[1]
	}
	return nil
}

func onResponse(_ js.Value, args []js.Value) interface{} {
	if inst := getConsole(args); inst != nil && len(args) >= 2 {
		inst.handlers.response.callback = args[1]
	}
	return nil
}

func onRecording(_ js.Value, args []js.Value) interface{} {
	if inst := getConsole(args); inst != nil && len(args) >= 2 {
		inst.handlers.recording.callback = args[1]
	}
	return nil
}

// ============================================================================
// Surfaces
// ============================================================================

// loadSurface(json) decodes a saved surface and returns its id, or -1.
func loadSurface(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return -1
	}
	s, err := textsurface.Load(strings.NewReader(args[0].String()), textsurface.FormatJSON)
	if err != nil {
		return -1
	}

	inst := &surfaceInstance{surface: s, observer: &jsStateObserver{}}
	s.Subscribe(inst.observer)

	id := nextSurfaceID
	nextSurfaceID++
	surfaces[id] = inst
	return id
}

func destroySurface(_ js.Value, args []js.Value) interface{} {
	if len(args) >= 1 {
		delete(surfaces, args[0].Int())
	}
	return nil
}

func getSurface(args []js.Value) *textsurface.AnimatedSurface {
	if len(args) < 1 {
		return nil
	}
	inst := surfaces[args[0].Int()]
	if inst == nil {
		return nil
	}
	return inst.surface
}

func surfaceStart(_ js.Value, args []js.Value) interface{} {
	if s := getSurface(args); s != nil {
		s.Start()
	}
	return nil
}

func surfaceStop(_ js.Value, args []js.Value) interface{} {
	if s := getSurface(args); s != nil {
		s.Stop()
	}
	return nil
}

func surfaceRestart(_ js.Value, args []js.Value) interface{} {
	if s := getSurface(args); s != nil {
		s.Restart()
	}
	return nil
}

// surfaceUpdate(id, elapsedMs) advances playback and the active frame's effects.
func surfaceUpdate(_ js.Value, args []js.Value) interface{} {
	s := getSurface(args)
	if s == nil || len(args) < 2 {
		return nil
	}
	elapsed := millis(args[1])
	s.Update(elapsed)
	if frame := s.ActiveFrame(); frame != nil {
		frame.UpdateEffects(elapsed)
	}
	return nil
}

func surfaceFrame(_ js.Value, args []js.Value) interface{} {
	s := getSurface(args)
	if s == nil {
		return -1
	}
	return s.CurrentFrameIndex()
}

func surfaceState(_ js.Value, args []js.Value) interface{} {
	s := getSurface(args)
	if s == nil {
		return ""
	}
	return s.State().String()
}

func surfaceSnapshotJSON(_ js.Value, args []js.Value) interface{} {
	s := getSurface(args)
	if s == nil {
		return ""
	}
	return marshal(s.Snapshot(detailArg(args, 1)))
}

func onSurfaceState(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	if inst := surfaces[args[0].Int()]; inst != nil {
		inst.observer.callback = args[1]
	}
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func millis(v js.Value) time.Duration {
	return time.Duration(v.Float() * float64(time.Millisecond))
}

func detailArg(args []js.Value, i int) textsurface.SnapshotDetail {
	if len(args) > i && args[i].String() == string(textsurface.SnapshotDetailText) {
		return textsurface.SnapshotDetailText
	}
	return textsurface.SnapshotDetailStyled
}

func marshal(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
