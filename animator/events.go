package animator

// EventKind identifies a lifecycle notification.
type EventKind int

const (
	// EventStart fires when a move is accepted.
	EventStart EventKind = iota
	// EventProgress fires on each intermediate step.
	EventProgress
	// EventEnd fires when the move converges on its target.
	EventEnd
)

// Frame is a snapshot of the animator's position delivered with each event.
type Frame struct {
	Current int
	Target  int
	Panel   int
}

// Listener receives lifecycle notifications. Listeners fire synchronously
// in subscription order on the caller's goroutine.
type Listener struct {
	OnStart    func(Frame)
	OnProgress func(Frame)
	OnEnd      func(Frame)
}

// Subscribe registers a listener for lifecycle events.
func (a *Animator) Subscribe(l Listener) {
	a.listeners = append(a.listeners, l)
}

func (a *Animator) emit(kind EventKind) {
	frame := Frame{Current: a.current, Target: a.target, Panel: a.panel}
	for _, l := range a.listeners {
		switch kind {
		case EventStart:
			if l.OnStart != nil {
				l.OnStart(frame)
			}
		case EventProgress:
			if l.OnProgress != nil {
				l.OnProgress(frame)
			}
		case EventEnd:
			if l.OnEnd != nil {
				l.OnEnd(frame)
			}
		}
	}
}
