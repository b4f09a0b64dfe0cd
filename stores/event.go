package stores

import "fmt"

// Event is a payload-less notification channel: a registry of listeners and
// nothing else.
type Event struct {
	reg registry[struct{}]
}

// NewEvent creates an event with no listeners.
func NewEvent() *Event {
	return &Event{}
}

// Listen registers fn to run on every dispatch.
func (e *Event) Listen(fn func()) (unlisten func()) {
	id := e.reg.add(func(struct{}) { fn() })
	return e.reg.unlisten(id)
}

// Dispatch invokes every registered listener synchronously, in registration
// order. With zero listeners it is a no-op.
func (e *Event) Dispatch() {
	e.reg.publish(func() (struct{}, bool) {
		return struct{}{}, true
	})
}

func (e *Event) String() string {
	return fmt.Sprintf("Event{listeners: %d}", e.reg.count())
}

var _ Emitter = (*Event)(nil)
