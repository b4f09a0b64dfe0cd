package stores

import "fmt"

// Observable is a mutable value cell that notifies its listeners on every
// write.
type Observable[T any] struct {
	cell cell[T]
}

// NewObservable creates an observable holding initial.
func NewObservable[T any](initial T) *Observable[T] {
	o := &Observable[T]{}
	o.cell.value = initial
	return o
}

// Get returns a copy of the current value.
func (o *Observable[T]) Get() T { return o.cell.get() }

// Set replaces the value and notifies every listener, even when the new
// value equals the old one. Wrap the observable in a Deduped to suppress
// redundant notifications.
func (o *Observable[T]) Set(v T) { o.cell.store(v) }

// Update applies f to the current value, stores the result and notifies.
// The read-modify-write runs under the cell lock, so concurrent Updates
// never lose writes.
func (o *Observable[T]) Update(f func(old T) T) {
	o.cell.reg.publish(func() (T, bool) {
		o.cell.value = f(o.cell.value)
		return o.cell.value, true
	})
}

// Subscribe registers fn and immediately invokes it once with the current
// value.
func (o *Observable[T]) Subscribe(fn func(v T)) (unsubscribe func()) {
	return o.cell.subscribe(fn)
}

// Listen registers fn to run on every write, without the payload.
func (o *Observable[T]) Listen(fn func()) (unlisten func()) {
	return o.cell.listen(fn)
}

func (o *Observable[T]) String() string {
	return fmt.Sprintf("Observable{value: %v, listeners: %d}", o.Get(), o.cell.reg.count())
}

var (
	_ Readable[int] = (*Observable[int])(nil)
	_ Writable[int] = (*Observable[int])(nil)
)
