package stores

import "fmt"

// Derived is a read-only value computed from other observables. It
// recomputes on every notification from any of its sources and re-broadcasts
// the result to its own listeners. The dependency set is fixed at
// construction; there is no dynamic dependency tracking.
type Derived[T any] struct {
	cell     cell[T]
	compute  func() T
	unlisten []func()
}

// NewDerived creates a derived value over the given sources. compute is run
// once eagerly to seed the initial value, then again on every source
// notification. compute should read its sources via Get and must close over
// the same sources that are passed in; sources it reads but does not declare
// will not trigger recomputation.
//
// Recomputes are not coalesced: N source writes produce N recomputes, and a
// recompute notifies even when the result is unchanged. Wrap the sources or
// the derived itself in a Deduped to suppress no-op notifications.
func NewDerived[T any](sources []Emitter, compute func() T) *Derived[T] {
	d := &Derived[T]{compute: compute}
	d.cell.value = compute()
	d.unlisten = make([]func(), 0, len(sources))
	for _, src := range sources {
		d.unlisten = append(d.unlisten, src.Listen(d.recompute))
	}
	return d
}

func (d *Derived[T]) recompute() {
	d.cell.reg.publish(func() (T, bool) {
		d.cell.value = d.compute()
		return d.cell.value, true
	})
}

// Get returns a copy of the last computed value.
func (d *Derived[T]) Get() T { return d.cell.get() }

// Subscribe registers fn and immediately invokes it once with the last
// computed value.
func (d *Derived[T]) Subscribe(fn func(v T)) (unsubscribe func()) {
	return d.cell.subscribe(fn)
}

// Listen registers fn to run on every recompute, without the payload.
func (d *Derived[T]) Listen(fn func()) (unlisten func()) {
	return d.cell.listen(fn)
}

// Detach unsubscribes the derived from all of its sources. It stops
// recomputing and keeps its last value; Detach is idempotent.
func (d *Derived[T]) Detach() {
	for _, unlisten := range d.unlisten {
		unlisten()
	}
}

func (d *Derived[T]) String() string {
	return fmt.Sprintf("Derived{value: %v, listeners: %d}", d.Get(), d.cell.reg.count())
}

var _ Readable[int] = (*Derived[int])(nil)
