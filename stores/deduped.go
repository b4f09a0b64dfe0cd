package stores

import "fmt"

// Deduped wraps a source and forwards only value-changing notifications:
// when the source notifies with a value equal to the last delivered one, the
// notification is suppressed. Reads return the last delivered value. If the
// wrapped source is also Writable, Set and Update pass through to it and the
// source's own notification flows back through the dedup check.
type Deduped[T any] struct {
	cell     cell[T]
	source   Readable[T]
	writer   Writable[T] // nil when the source is read-only
	equals   func(a, b T) bool
	unlisten func()
}

// NewDeduped creates a standalone deduped value backed by an internal
// Observable, using == as the equality check.
func NewDeduped[T comparable](initial T) *Deduped[T] {
	return DedupedFrom[T](NewObservable(initial))
}

// NewDedupedFunc is NewDeduped with a custom equality predicate, for value
// types that are not comparable or need looser equality.
func NewDedupedFunc[T any](initial T, equals func(a, b T) bool) *Deduped[T] {
	return DedupedFromFunc[T](NewObservable(initial), equals)
}

// DedupedFrom wraps an existing source, using == as the equality check. The
// baseline for deduplication is the source's current value at construction
// time; wrapping does not emit a notification.
func DedupedFrom[T comparable](source Readable[T]) *Deduped[T] {
	return DedupedFromFunc(source, func(a, b T) bool { return a == b })
}

// DedupedFromFunc is DedupedFrom with a custom equality predicate.
func DedupedFromFunc[T any](source Readable[T], equals func(a, b T) bool) *Deduped[T] {
	d := &Deduped[T]{source: source, equals: equals}
	d.writer, _ = source.(Writable[T])
	d.cell.value = source.Get()
	// The subscription's immediate delivery compares equal to the baseline
	// just read, so construction never notifies.
	d.unlisten = source.Subscribe(d.forward)
	return d
}

func (d *Deduped[T]) forward(v T) {
	d.cell.reg.publish(func() (T, bool) {
		if d.equals(d.cell.value, v) {
			var zero T
			return zero, false
		}
		d.cell.value = v
		return v, true
	})
}

// Get returns a copy of the last delivered (deduplicated) value.
func (d *Deduped[T]) Get() T { return d.cell.get() }

// Set forwards the write to the wrapped source. The source's notification
// flows back through the dedup check, so a write that does not change the
// value never reaches this Deduped's listeners. Set panics if the wrapped
// source is not Writable.
func (d *Deduped[T]) Set(v T) {
	if d.writer == nil {
		panic("stores: deduped source is not writable")
	}
	d.writer.Set(v)
}

// Update forwards the read-modify-write to the wrapped source. It panics if
// the wrapped source is not Writable.
func (d *Deduped[T]) Update(f func(old T) T) {
	if d.writer == nil {
		panic("stores: deduped source is not writable")
	}
	d.writer.Update(f)
}

// Subscribe registers fn and immediately invokes it once with the last
// delivered value.
func (d *Deduped[T]) Subscribe(fn func(v T)) (unsubscribe func()) {
	return d.cell.subscribe(fn)
}

// Listen registers fn to run on every value-changing notification.
func (d *Deduped[T]) Listen(fn func()) (unlisten func()) {
	return d.cell.listen(fn)
}

func (d *Deduped[T]) String() string {
	return fmt.Sprintf("Deduped{value: %v, listeners: %d}", d.Get(), d.cell.reg.count())
}

var (
	_ Readable[int] = (*Deduped[int])(nil)
	_ Writable[int] = (*Deduped[int])(nil)
)
