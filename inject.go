package mrbinaer

// Queue is an EventSource fed by injected events instead of a real device.
// Frontends use it to replay scripts; tests use it to drive sessions
// deterministically.
type Queue struct {
	events []Event
}

// Poll returns and clears every queued event.
func (q *Queue) Poll() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Inject queues an arbitrary event.
func (q *Queue) Inject(ev Event) {
	q.events = append(q.events, ev)
}

// InjectKey queues a key press.
func (q *Queue) InjectKey(k Key) {
	q.Inject(Event{Type: EventKeyPressed, Key: k})
}

// InjectPress queues a left button press at the given screen coordinates.
func (q *Queue) InjectPress(x, y float64) {
	q.Inject(Event{Type: EventPointerDown, Button: MouseButtonLeft, X: x, Y: y})
}

// InjectRelease queues a left button release at the given screen coordinates.
func (q *Queue) InjectRelease(x, y float64) {
	q.Inject(Event{Type: EventPointerUp, Button: MouseButtonLeft, X: x, Y: y})
}

// InjectClick queues a press followed by a release at the same point. Both
// arrive in the same frame.
func (q *Queue) InjectClick(x, y float64) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectScroll queues a wheel event. Positive delta grows the figure.
func (q *Queue) InjectScroll(delta, x, y float64) {
	q.Inject(Event{Type: EventWheel, Delta: delta, X: x, Y: y})
}

// InjectClose queues a close request.
func (q *Queue) InjectClose() {
	q.Inject(Event{Type: EventClose})
}
