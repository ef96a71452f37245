package glimpse

//go:generate go tool stringer -type=EventKind -trimprefix=Event

type EventKind uint8

const (
	EventCloseRequested EventKind = iota
	EventResized
	EventRedrawRequested
)

type Event struct {
	Kind EventKind

	// new framebuffer size, only set for EventResized
	Width  uint32
	Height uint32
}

func CloseRequested() Event {
	return Event{Kind: EventCloseRequested}
}

func Resized(width, height uint32) Event {
	return Event{Kind: EventResized, Width: width, Height: height}
}

func RedrawRequested() Event {
	return Event{Kind: EventRedrawRequested}
}

// EventQueue buffers platform events in delivery order.
// The zero value is ready to use.
type EventQueue struct {
	events []Event

	// true while a redraw event is waiting in the queue
	redrawPending bool
}

func (q *EventQueue) Push(event Event) {
	if event.Kind == EventRedrawRequested {
		if q.redrawPending {
			return
		}

		q.redrawPending = true
	}

	q.events = append(q.events, event)
}

func (q *EventQueue) Pop() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}

	event := q.events[0]
	q.events = q.events[1:]

	if event.Kind == EventRedrawRequested {
		q.redrawPending = false
	}

	return event, true
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
