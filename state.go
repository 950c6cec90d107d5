package textsurface

// AnimationState is the playback state of an AnimatedSurface.
type AnimationState int

const (
	// AnimationStopped means playback was stopped with Stop.
	AnimationStopped AnimationState = iota
	// AnimationPlaying means frames advance on Update.
	AnimationPlaying
	// AnimationRestarted is published right before AnimationPlaying when playback restarts from frame 0.
	AnimationRestarted
	// AnimationFinished means a non-repeating animation reached its last frame.
	AnimationFinished
	// AnimationActivated is published by Activate.
	AnimationActivated
	// AnimationDeactivated is published by Deactivate.
	AnimationDeactivated
)

// String returns the state name.
func (s AnimationState) String() string {
	switch s {
	case AnimationStopped:
		return "stopped"
	case AnimationPlaying:
		return "playing"
	case AnimationRestarted:
		return "restarted"
	case AnimationFinished:
		return "finished"
	case AnimationActivated:
		return "activated"
	case AnimationDeactivated:
		return "deactivated"
	default:
		return "unknown"
	}
}

// StateChange describes one state transition.
type StateChange struct {
	Previous AnimationState
	Current  AnimationState
}

// StateObserver receives state transitions synchronously, in the order they happen.
type StateObserver interface {
	StateChanged(change StateChange)
}

// StateObserverFunc adapts a function to StateObserver.
type StateObserverFunc func(change StateChange)

// StateChanged calls f(change).
func (f StateObserverFunc) StateChanged(change StateChange) {
	f(change)
}

// Subscription represents an active observer registration.
type Subscription struct {
	id       uint64
	observer StateObserver
	notifier *stateNotifier
}

// Unsubscribe removes the observer. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
		s.notifier = nil
	}
}

// stateNotifier keeps observers in subscription order. It is not safe for
// concurrent use; the owning surface is single-threaded.
type stateNotifier struct {
	nextID uint64
	subs   []*Subscription
}

func (n *stateNotifier) subscribe(o StateObserver) *Subscription {
	n.nextID++
	sub := &Subscription{id: n.nextID, observer: o, notifier: n}
	n.subs = append(n.subs, sub)
	return sub
}

func (n *stateNotifier) unsubscribe(id uint64) {
	for i, sub := range n.subs {
		if sub.id == id {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return
		}
	}
}

func (n *stateNotifier) notify(change StateChange) {
	// Snapshot so observers may unsubscribe while being notified.
	subs := n.subs
	for _, sub := range subs {
		sub.observer.StateChanged(change)
	}
}
