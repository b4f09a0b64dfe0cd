// Package stores provides observable value primitives: mutable values that
// notify listeners on change (Observable), read-only values computed from
// other observables (Derived), wrappers that suppress notifications when the
// value did not actually change (Deduped), and payload-less emitters (Event).
//
// All primitives are safe for concurrent use and are shared by pointer; the
// pointer is the handle, there is no deep copy. Notification fan-out is
// synchronous: Set, Update and Dispatch invoke every registered callback
// in registration order before returning. A write issued from inside a
// callback of the same primitive is applied immediately and its fan-out is
// queued behind the in-flight pass, so re-entrant writes are well-defined
// and never deadlock.
package stores

// Emitter is the contract for payload-less change subscription. Every
// primitive in this package implements it.
type Emitter interface {
	// Listen registers fn to run on every notification, without the value.
	// Unlike Subscribe it does not invoke fn up front. The returned function
	// removes the registration; calling it more than once is a no-op.
	Listen(fn func()) (unlisten func())
}

// Readable is the read side of a value-carrying primitive.
type Readable[T any] interface {
	Emitter

	// Get returns a copy of the current value. It never blocks past
	// acquiring the read.
	Get() T

	// Subscribe registers fn and immediately invokes it once, synchronously,
	// with the current value. The initial call runs outside the primitive's
	// lock: if another goroutine has a fan-out pass in flight, it may
	// interleave with deliveries of values queued before the registration.
	// The returned function unsubscribes; calling it more than once is a
	// no-op.
	Subscribe(fn func(v T)) (unsubscribe func())
}

// Writable is the write side of a value-carrying primitive.
type Writable[T any] interface {
	// Set replaces the value unconditionally and notifies every listener,
	// even when the new value equals the old one.
	Set(v T)

	// Update applies f to the current value, stores the result and notifies.
	// The read-modify-write is a single critical section with respect to
	// concurrent Set and Update calls on the same primitive.
	Update(f func(old T) T)
}
