package textsurface

import "testing"

func TestAnimationStateString(t *testing.T) {
	tests := []struct {
		state AnimationState
		want  string
	}{
		{AnimationStopped, "stopped"},
		{AnimationPlaying, "playing"},
		{AnimationRestarted, "restarted"},
		{AnimationFinished, "finished"},
		{AnimationActivated, "activated"},
		{AnimationDeactivated, "deactivated"},
		{AnimationState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestStateObserverOrder(t *testing.T) {
	a := newTestAnimation(1)

	var order []string
	a.Subscribe(StateObserverFunc(func(StateChange) { order = append(order, "first") }))
	a.Subscribe(StateObserverFunc(func(StateChange) { order = append(order, "second") }))

	a.Start()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("expected [first second], got %v", order)
	}
}

func TestStateObserverPrevious(t *testing.T) {
	a := newTestAnimation(1)

	var changes []StateChange
	a.Subscribe(StateObserverFunc(func(ch StateChange) { changes = append(changes, ch) }))

	a.Start()
	a.Stop()

	want := []StateChange{
		{Previous: AnimationStopped, Current: AnimationPlaying},
		{Previous: AnimationPlaying, Current: AnimationStopped},
	}
	if len(changes) != len(want) {
		t.Fatalf("expected %d changes, got %d", len(want), len(changes))
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d: expected %+v, got %+v", i, want[i], changes[i])
		}
	}
}

func TestStateObserverNoEventWithoutChange(t *testing.T) {
	a := newTestAnimation(1)

	count := 0
	a.Subscribe(StateObserverFunc(func(StateChange) { count++ }))

	a.Stop()
	a.Start()
	a.Start()

	if count != 1 {
		t.Errorf("expected 1 notification, got %d", count)
	}
}

func TestSubscriptionUnsubscribe(t *testing.T) {
	a := newTestAnimation(1)

	count := 0
	sub := a.Subscribe(StateObserverFunc(func(StateChange) { count++ }))

	a.Start()
	sub.Unsubscribe()
	sub.Unsubscribe()
	a.Stop()

	if count != 1 {
		t.Errorf("expected 1 notification, got %d", count)
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	a := newTestAnimation(1)

	var sub *Subscription
	calls := 0
	sub = a.Subscribe(StateObserverFunc(func(StateChange) {
		calls++
		sub.Unsubscribe()
	}))
	other := 0
	a.Subscribe(StateObserverFunc(func(StateChange) { other++ }))

	a.Start()
	a.Stop()

	if calls != 1 {
		t.Errorf("expected self-removing observer to run once, got %d", calls)
	}
	if other != 2 {
		t.Errorf("expected remaining observer to run twice, got %d", other)
	}
}
