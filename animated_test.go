package textsurface

import (
	"errors"
	"testing"
	"time"
)

func newTestAnimation(frames int) *AnimatedSurface {
	a := NewAnimatedSurface("test", 4, 2)
	for i := 0; i < frames; i++ {
		f := a.CreateFrame()
		f.SetGlyph(0, 0, rune('0'+i))
	}
	return a
}

func recordStates(a *AnimatedSurface) *[]AnimationState {
	var states []AnimationState
	a.Subscribe(StateObserverFunc(func(ch StateChange) {
		states = append(states, ch.Current)
	}))
	return &states
}

func TestNewAnimatedSurface(t *testing.T) {
	a := NewAnimatedSurface("intro", 10, 5)

	if a.Name() != "intro" {
		t.Errorf("expected name intro, got %q", a.Name())
	}
	if a.Width() != 10 || a.Height() != 5 {
		t.Errorf("expected 10x5, got %dx%d", a.Width(), a.Height())
	}
	if a.State() != AnimationStopped {
		t.Errorf("expected stopped, got %s", a.State())
	}
	if a.IsPlaying() {
		t.Error("new animation should not be playing")
	}
	if a.FrameCount() != 0 {
		t.Errorf("expected 0 frames, got %d", a.FrameCount())
	}
	if a.ActiveFrame() != nil || a.ActiveCells() != nil {
		t.Error("expected no active frame without frames")
	}
	if _, err := a.CurrentFrame(); !errors.Is(err, ErrNoFrames) {
		t.Errorf("expected ErrNoFrames, got %v", err)
	}
}

func TestAnimatedSurfaceCreateFrame(t *testing.T) {
	a := NewAnimatedSurface("test", 3, 2)
	first := a.CreateFrame()
	second := a.CreateFrame()

	if first.Width() != 3 || first.Height() != 2 {
		t.Errorf("expected frame 3x2, got %dx%d", first.Width(), first.Height())
	}
	if a.FrameCount() != 2 {
		t.Fatalf("expected 2 frames, got %d", a.FrameCount())
	}
	if a.ActiveFrame() != first {
		t.Error("expected first frame to be active")
	}

	a.SetCurrentFrameIndex(1)
	if a.ActiveFrame() != second {
		t.Error("expected second frame to be active")
	}
	cur, err := a.CurrentFrame()
	if err != nil || cur != second {
		t.Errorf("expected current frame to be second, got %v (%v)", cur, err)
	}
}

func TestAnimatedSurfaceFinishesOnLastFrame(t *testing.T) {
	a := newTestAnimation(4)
	a.SetAnimationDuration(2 * time.Second)
	a.Start()

	if a.FrameDuration() != 500*time.Millisecond {
		t.Fatalf("expected 500ms per frame, got %v", a.FrameDuration())
	}

	wantIndex := []int{1, 2, 3, 3, 3}
	wantState := []AnimationState{AnimationPlaying, AnimationPlaying, AnimationFinished, AnimationFinished, AnimationFinished}
	for i := range wantIndex {
		a.Update(600 * time.Millisecond)
		if a.CurrentFrameIndex() != wantIndex[i] {
			t.Errorf("tick %d: expected index %d, got %d", i+1, wantIndex[i], a.CurrentFrameIndex())
		}
		if a.State() != wantState[i] {
			t.Errorf("tick %d: expected state %s, got %s", i+1, wantState[i], a.State())
		}
	}
	if a.IsPlaying() {
		t.Error("finished animation should not be playing")
	}
	if a.ActiveFrame() != a.Frames()[3] {
		t.Error("expected last frame to stay active")
	}
}

func TestAnimatedSurfaceOneAdvancePerTick(t *testing.T) {
	a := newTestAnimation(4)
	a.SetAnimationDuration(400 * time.Millisecond)
	a.Start()

	a.Update(10 * time.Second)
	if a.CurrentFrameIndex() != 1 {
		t.Errorf("expected index 1 after a long tick, got %d", a.CurrentFrameIndex())
	}
}

func TestAnimatedSurfaceNeedsMoreThanFrameDuration(t *testing.T) {
	a := newTestAnimation(2)
	a.SetAnimationDuration(time.Second)
	a.Start()

	a.Update(500 * time.Millisecond)
	if a.CurrentFrameIndex() != 0 {
		t.Errorf("expected index 0 at exactly one frame duration, got %d", a.CurrentFrameIndex())
	}
	a.Update(time.Millisecond)
	if a.CurrentFrameIndex() != 1 {
		t.Errorf("expected index 1, got %d", a.CurrentFrameIndex())
	}
}

func TestAnimatedSurfaceRepeatWraps(t *testing.T) {
	a := newTestAnimation(3)
	a.Repeat = true
	a.SetAnimationDuration(300 * time.Millisecond)
	a.Start()
	states := recordStates(a)

	var got []int
	for i := 0; i < 4; i++ {
		a.Update(150 * time.Millisecond)
		got = append(got, a.CurrentFrameIndex())
	}

	want := []int{1, 2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tick %d: expected index %d, got %d", i+1, want[i], got[i])
		}
	}
	if !a.IsPlaying() {
		t.Error("repeating animation should keep playing")
	}
	if len(*states) != 2 || (*states)[0] != AnimationRestarted || (*states)[1] != AnimationPlaying {
		t.Errorf("expected [restarted playing], got %v", *states)
	}
}

func TestAnimatedSurfaceZeroDurationNeverAdvances(t *testing.T) {
	a := newTestAnimation(3)
	a.Start()

	for i := 0; i < 5; i++ {
		a.Update(time.Second)
	}
	if a.CurrentFrameIndex() != 0 {
		t.Errorf("expected index 0, got %d", a.CurrentFrameIndex())
	}
	if a.State() != AnimationPlaying {
		t.Errorf("expected playing, got %s", a.State())
	}
}

func TestAnimatedSurfaceStoppedDoesNotAdvance(t *testing.T) {
	a := newTestAnimation(3)
	a.SetAnimationDuration(300 * time.Millisecond)

	a.Update(time.Second)
	if a.CurrentFrameIndex() != 0 {
		t.Errorf("expected index 0 before Start, got %d", a.CurrentFrameIndex())
	}

	a.Start()
	a.Update(150 * time.Millisecond)
	a.Stop()
	a.Update(150 * time.Millisecond)

	if a.CurrentFrameIndex() != 1 {
		t.Errorf("expected index 1 after Stop, got %d", a.CurrentFrameIndex())
	}
	if a.State() != AnimationStopped {
		t.Errorf("expected stopped, got %s", a.State())
	}
}

func TestAnimatedSurfaceStartResumesFromCurrentFrame(t *testing.T) {
	a := newTestAnimation(4)
	a.SetAnimationDuration(400 * time.Millisecond)
	a.SetCurrentFrameIndex(2)
	a.Start()

	a.Update(150 * time.Millisecond)
	if a.CurrentFrameIndex() != 3 {
		t.Errorf("expected index 3, got %d", a.CurrentFrameIndex())
	}
}

func TestAnimatedSurfaceRestart(t *testing.T) {
	a := newTestAnimation(4)
	a.SetAnimationDuration(400 * time.Millisecond)
	a.Start()
	a.Update(150 * time.Millisecond)
	a.Update(150 * time.Millisecond)

	states := recordStates(a)
	a.Restart()

	if a.CurrentFrameIndex() != 0 {
		t.Errorf("expected index 0 after Restart, got %d", a.CurrentFrameIndex())
	}
	if a.ActiveFrame() != a.Frames()[0] {
		t.Error("expected frame 0 to be active after Restart")
	}
	if !a.IsPlaying() {
		t.Error("expected playing after Restart")
	}
	if len(*states) != 2 || (*states)[0] != AnimationRestarted || (*states)[1] != AnimationPlaying {
		t.Errorf("expected [restarted playing], got %v", *states)
	}
}

func TestAnimatedSurfaceRestartAfterFinish(t *testing.T) {
	a := newTestAnimation(2)
	a.SetAnimationDuration(200 * time.Millisecond)
	a.Start()
	a.Update(150 * time.Millisecond)
	if a.State() != AnimationFinished {
		t.Fatalf("expected finished, got %s", a.State())
	}

	a.Restart()
	a.Update(150 * time.Millisecond)
	if a.CurrentFrameIndex() != 1 {
		t.Errorf("expected index 1, got %d", a.CurrentFrameIndex())
	}
}

func TestAnimatedSurfaceDurationAppliesOnStart(t *testing.T) {
	a := newTestAnimation(2)
	a.SetAnimationDuration(time.Second)
	a.Start()
	a.SetAnimationDuration(100 * time.Millisecond)

	if a.FrameDuration() != 500*time.Millisecond {
		t.Errorf("expected 500ms until next Start, got %v", a.FrameDuration())
	}
	a.Start()
	if a.FrameDuration() != 50*time.Millisecond {
		t.Errorf("expected 50ms after Start, got %v", a.FrameDuration())
	}
}

func TestAnimatedSurfaceSetCurrentFrameIndexOutOfRange(t *testing.T) {
	a := newTestAnimation(3)
	a.SetCurrentFrameIndex(2)

	tests := []int{3, 10, -1}
	for _, idx := range tests {
		a.SetCurrentFrameIndex(2)
		a.SetCurrentFrameIndex(idx)
		if a.CurrentFrameIndex() != 0 {
			t.Errorf("SetCurrentFrameIndex(%d): expected 0, got %d", idx, a.CurrentFrameIndex())
		}
		if a.ActiveFrame() != a.Frames()[0] {
			t.Errorf("SetCurrentFrameIndex(%d): expected frame 0 active", idx)
		}
	}
}

func TestAnimatedSurfaceActivePointers(t *testing.T) {
	a := newTestAnimation(2)
	a.Frames()[1].DefaultBackground = DefaultPalette[4]

	a.SetCurrentFrameIndex(1)
	if a.ActiveCells()[0].Glyph != '1' {
		t.Errorf("expected glyph '1' in active cells, got %q", a.ActiveCells()[0].Glyph)
	}
	if a.ActiveDefaultBackground() != DefaultPalette[4] {
		t.Errorf("expected active background to follow frame, got %v", a.ActiveDefaultBackground())
	}

	// The active cells are a live view of the frame.
	a.ActiveCells()[1].Glyph = 'x'
	if a.Frames()[1].Cell(1, 0).Glyph != 'x' {
		t.Error("expected write through active cells to reach the frame")
	}
}

func TestAnimatedSurfaceSetFrames(t *testing.T) {
	a := newTestAnimation(4)
	a.SetCurrentFrameIndex(3)

	replacement := []*Grid{NewGrid(4, 2), NewGrid(4, 2)}
	a.SetFrames(replacement)

	if a.FrameCount() != 2 {
		t.Errorf("expected 2 frames, got %d", a.FrameCount())
	}
	if a.CurrentFrameIndex() != 0 {
		t.Errorf("expected index reset to 0, got %d", a.CurrentFrameIndex())
	}
	if a.ActiveFrame() != replacement[0] {
		t.Error("expected first replacement frame to be active")
	}

	a.SetFrames(nil)
	if a.ActiveFrame() != nil {
		t.Error("expected no active frame after clearing frames")
	}
}

func TestAnimatedSurfaceRejectsMismatchedFrames(t *testing.T) {
	a := newTestAnimation(2)

	a.AddFrame(NewGrid(3, 3))
	a.AddFrame(nil)
	if a.FrameCount() != 2 {
		t.Errorf("expected 2 frames after mismatched adds, got %d", a.FrameCount())
	}

	keep := NewGrid(4, 2)
	a.SetFrames([]*Grid{NewGrid(5, 2), nil, keep, NewGrid(4, 1)})
	if a.FrameCount() != 1 {
		t.Fatalf("expected 1 frame, got %d", a.FrameCount())
	}
	if a.ActiveFrame() != keep {
		t.Error("expected the matching grid to be active")
	}
}

func TestAnimatedSurfaceActivateDeactivate(t *testing.T) {
	a := newTestAnimation(1)
	states := recordStates(a)

	a.Activate()
	a.Deactivate()

	if len(*states) != 2 || (*states)[0] != AnimationActivated || (*states)[1] != AnimationDeactivated {
		t.Errorf("expected [activated deactivated], got %v", *states)
	}
}

func TestAnimatedSurfaceEmptyUpdate(t *testing.T) {
	a := NewAnimatedSurface("empty", 2, 2)
	a.SetAnimationDuration(time.Second)
	a.Start()
	a.Update(2 * time.Second)

	if a.CurrentFrameIndex() != 0 {
		t.Errorf("expected index 0, got %d", a.CurrentFrameIndex())
	}
	if a.FrameDuration() != 0 {
		t.Errorf("expected zero frame duration without frames, got %v", a.FrameDuration())
	}
}
