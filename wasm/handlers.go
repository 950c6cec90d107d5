//go:build js && wasm

package main

import (
	"syscall/js"

	textsurface "github.com/vrosnet/go-text-surface"
)

// jsHandlers holds the JavaScript callbacks of one console instance.
type jsHandlers struct {
	bell      *jsBellProvider
	title     *jsTitleProvider
	response  *jsResponseWriter
	recording *jsRecordingProvider
}

func newJSHandlers() *jsHandlers {
	return &jsHandlers{
		bell:      &jsBellProvider{},
		title:     &jsTitleProvider{},
		response:  &jsResponseWriter{},
		recording: &jsRecordingProvider{},
	}
}

func isSet(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// jsBellProvider calls onBell().
type jsBellProvider struct {
	callback js.Value
}

func (p *jsBellProvider) Ring() {
	if isSet(p.callback) {
		p.callback.Invoke()
	}
}

var _ textsurface.BellProvider = (*jsBellProvider)(nil)

// jsTitleProvider calls onTitle(title).
type jsTitleProvider struct {
	callback js.Value
}

func (p *jsTitleProvider) SetTitle(title string) {
	if isSet(p.callback) {
		p.callback.Invoke(title)
	}
}

var _ textsurface.TitleProvider = (*jsTitleProvider)(nil)

// jsResponseWriter passes status replies to onResponse(Uint8Array).
type jsResponseWriter struct {
	callback js.Value
}

func (w *jsResponseWriter) Write(p []byte) (int, error) {
	if isSet(w.callback) {
		arr := js.Global().Get("Uint8Array").New(len(p))
		js.CopyBytesToJS(arr, p)
		w.callback.Invoke(arr)
	}
	return len(p), nil
}

var _ textsurface.ResponseProvider = (*jsResponseWriter)(nil)

// jsRecordingProvider passes raw input to onRecording(Uint8Array).
type jsRecordingProvider struct {
	callback js.Value
}

func (p *jsRecordingProvider) Record(data []byte) {
	if isSet(p.callback) {
		arr := js.Global().Get("Uint8Array").New(len(data))
		js.CopyBytesToJS(arr, data)
		p.callback.Invoke(arr)
	}
}

var _ textsurface.RecordingProvider = (*jsRecordingProvider)(nil)

// jsStateObserver calls onState(previous, current) for surface state changes.
type jsStateObserver struct {
	callback js.Value
}

func (o *jsStateObserver) StateChanged(change textsurface.StateChange) {
	if isSet(o.callback) {
		o.callback.Invoke(change.Previous.String(), change.Current.String())
	}
}

var _ textsurface.StateObserver = (*jsStateObserver)(nil)
