package textsurface

import "errors"

var (
	// ErrNotAttached is returned when a cursor operation needs a grid and the
	// cursor has none, or its grid has been disposed or collected.
	ErrNotAttached = errors.New("textsurface: cursor is not attached to a grid")

	// ErrInvalidState is returned when the attached grid cannot serve the request,
	// e.g. it has no cell storage.
	ErrInvalidState = errors.New("textsurface: invalid state")

	// ErrNoFrames is returned when the current frame of an empty animation is requested.
	ErrNoFrames = errors.New("textsurface: animation has no frames")
)
