package textsurface

import (
	"image/color"
	"time"

	"golang.org/x/image/font"
)

// AnimatedSurface plays an ordered list of grids ("frames") over a fixed duration.
//
// An external driver calls Update once per time step with the elapsed time.
// Frames advance by at most one per call, regardless of how much time elapsed.
// The surface is not safe for concurrent use.
type AnimatedSurface struct {
	name   string
	width  int
	height int

	frames       []*Grid
	currentIndex int
	active       *Grid

	duration     time.Duration
	timePerFrame time.Duration
	addedTime    time.Duration
	isPlaying    bool
	state        AnimationState
	notifier     stateNotifier

	face font.Face

	// Repeat restarts playback from frame 0 after the last frame.
	Repeat bool

	// Center is a positioning hint for whoever draws the surface.
	Center Point

	// Font names the font the surface is meant to be drawn with.
	Font FontRef
}

// NewAnimatedSurface creates an empty, stopped animation whose frames are width x height.
func NewAnimatedSurface(name string, width, height int) *AnimatedSurface {
	return &AnimatedSurface{
		name:   name,
		width:  width,
		height: height,
		state:  AnimationStopped,
		Font:   DefaultFontRef,
	}
}

// Name returns the animation name.
func (a *AnimatedSurface) Name() string {
	return a.name
}

// SetName renames the animation.
func (a *AnimatedSurface) SetName(name string) {
	a.name = name
}

// Width returns the frame width in cells.
func (a *AnimatedSurface) Width() int {
	return a.width
}

// Height returns the frame height in cells.
func (a *AnimatedSurface) Height() int {
	return a.height
}

// --- Frames ---

// Frames returns the frame list. The grids are live; use SetFrames to replace the list.
func (a *AnimatedSurface) Frames() []*Grid {
	return a.frames
}

// FrameCount returns the number of frames.
func (a *AnimatedSurface) FrameCount() int {
	return len(a.frames)
}

// CreateFrame appends a blank frame of the surface size and returns it.
func (a *AnimatedSurface) CreateFrame() *Grid {
	frame := NewGrid(a.width, a.height)
	a.AddFrame(frame)
	return frame
}

// AddFrame appends an existing grid as the last frame. The surface takes ownership of it.
// Nil grids and grids whose size differs from the surface are ignored.
func (a *AnimatedSurface) AddFrame(frame *Grid) {
	if !a.fits(frame) {
		return
	}
	a.frames = append(a.frames, frame)
	if len(a.frames) == 1 {
		a.publishActive()
	}
}

// SetFrames replaces the frame list, dropping nil grids and grids whose size
// differs from the surface. The current index is reset to 0 if it no longer fits.
func (a *AnimatedSurface) SetFrames(frames []*Grid) {
	kept := make([]*Grid, 0, len(frames))
	for _, f := range frames {
		if a.fits(f) {
			kept = append(kept, f)
		}
	}
	a.frames = kept
	if a.currentIndex < 0 || a.currentIndex >= len(a.frames) {
		a.currentIndex = 0
	}
	a.publishActive()
}

func (a *AnimatedSurface) fits(frame *Grid) bool {
	return frame != nil && frame.Width() == a.width && frame.Height() == a.height
}

// CurrentFrameIndex returns the index of the active frame.
func (a *AnimatedSurface) CurrentFrameIndex() int {
	return a.currentIndex
}

// SetCurrentFrameIndex selects the active frame. Values outside the frame
// list reset the index to 0 rather than clamping to the nearest frame.
func (a *AnimatedSurface) SetCurrentFrameIndex(index int) {
	if index < 0 || index >= len(a.frames) {
		index = 0
	}
	a.currentIndex = index
	a.publishActive()
}

// CurrentFrame returns the active frame, or ErrNoFrames if the list is empty.
func (a *AnimatedSurface) CurrentFrame() (*Grid, error) {
	if len(a.frames) == 0 {
		return nil, ErrNoFrames
	}
	return a.frames[a.currentIndex], nil
}

// --- Render pointers ---

// ActiveFrame returns the grid published for rendering, or nil when there are no frames.
func (a *AnimatedSurface) ActiveFrame() *Grid {
	return a.active
}

// ActiveCells returns a live view of the active frame's cells. Writes go to that frame.
func (a *AnimatedSurface) ActiveCells() []Cell {
	if a.active == nil {
		return nil
	}
	return a.active.Cells()
}

// ActiveDefaultForeground returns the default foreground of the active frame.
func (a *AnimatedSurface) ActiveDefaultForeground() color.Color {
	if a.active == nil {
		return DefaultForeground
	}
	return a.active.DefaultForeground
}

// ActiveDefaultBackground returns the default background of the active frame.
func (a *AnimatedSurface) ActiveDefaultBackground() color.Color {
	if a.active == nil {
		return DefaultBackground
	}
	return a.active.DefaultBackground
}

func (a *AnimatedSurface) publishActive() {
	if len(a.frames) == 0 {
		a.currentIndex = 0
		a.active = nil
		return
	}
	a.active = a.frames[a.currentIndex]
}

// --- Timing ---

// AnimationDuration returns the total duration of one pass over all frames.
func (a *AnimatedSurface) AnimationDuration() time.Duration {
	return a.duration
}

// SetAnimationDuration sets the total duration. It takes effect on the next Start or Restart.
func (a *AnimatedSurface) SetAnimationDuration(d time.Duration) {
	a.duration = d
}

// FrameDuration returns the per-frame duration computed by the last Start or Restart.
// Zero means frames never advance on their own.
func (a *AnimatedSurface) FrameDuration() time.Duration {
	return a.timePerFrame
}

func (a *AnimatedSurface) computeFrameDuration() {
	if a.duration == 0 || len(a.frames) == 0 {
		a.timePerFrame = 0
		return
	}
	a.timePerFrame = a.duration / time.Duration(len(a.frames))
}

// --- Playback ---

// State returns the current playback state.
func (a *AnimatedSurface) State() AnimationState {
	return a.state
}

// IsPlaying reports whether Update advances frames.
func (a *AnimatedSurface) IsPlaying() bool {
	return a.isPlaying
}

// Subscribe registers an observer for state transitions.
func (a *AnimatedSurface) Subscribe(o StateObserver) *Subscription {
	return a.notifier.subscribe(o)
}

func (a *AnimatedSurface) setState(s AnimationState) {
	if a.state == s {
		return
	}
	prev := a.state
	a.state = s
	a.notifier.notify(StateChange{Previous: prev, Current: s})
}

// Start resumes playback from the current frame.
func (a *AnimatedSurface) Start() {
	a.computeFrameDuration()
	a.isPlaying = true
	a.setState(AnimationPlaying)
}

// Stop pauses playback on the current frame.
func (a *AnimatedSurface) Stop() {
	a.isPlaying = false
	a.setState(AnimationStopped)
}

// Restart plays from frame 0, publishing AnimationRestarted then AnimationPlaying.
func (a *AnimatedSurface) Restart() {
	a.computeFrameDuration()
	a.isPlaying = true
	a.addedTime = 0
	a.currentIndex = 0
	a.publishActive()
	a.setState(AnimationRestarted)
	a.setState(AnimationPlaying)
}

// Activate publishes AnimationActivated.
func (a *AnimatedSurface) Activate() {
	a.setState(AnimationActivated)
}

// Deactivate publishes AnimationDeactivated.
func (a *AnimatedSurface) Deactivate() {
	a.setState(AnimationDeactivated)
}

// Update accumulates elapsed time and advances one frame once the accumulated
// time exceeds the frame duration. A repeating animation wraps to frame 0 after
// the last frame; a non-repeating one finishes when it reaches the last frame.
func (a *AnimatedSurface) Update(elapsed time.Duration) {
	if !a.isPlaying || a.timePerFrame == 0 || len(a.frames) == 0 {
		return
	}

	a.addedTime += elapsed
	if a.addedTime <= a.timePerFrame {
		return
	}

	a.addedTime = 0
	a.currentIndex++

	last := len(a.frames) - 1
	switch {
	case a.currentIndex > last && a.Repeat:
		a.currentIndex = 0
		a.publishActive()
		a.setState(AnimationRestarted)
		a.setState(AnimationPlaying)
		return
	case a.currentIndex >= last && !a.Repeat:
		a.currentIndex = last
		a.isPlaying = false
		a.publishActive()
		a.setState(AnimationFinished)
		return
	}

	a.publishActive()
}

// --- Font ---

// Face returns the resolved font face, or the default face when none was resolved.
func (a *AnimatedSurface) Face() font.Face {
	if a.face == nil {
		return defaultFace()
	}
	return a.face
}

// SetFace sets the font face used by Screenshot.
func (a *AnimatedSurface) SetFace(face font.Face) {
	a.face = face
}
