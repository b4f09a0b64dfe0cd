package stores

import "sync"

// entry is a single registered callback. Emitter listeners are stored as
// value callbacks that ignore the payload, so one ordered list serves both
// Listen and Subscribe registrations.
type entry[T any] struct {
	id      uint64
	fn      func(T)
	removed bool
}

// registry is the subscription and fan-out engine shared by every primitive.
// Its mutex also guards the owning primitive's stored value, so a
// read-modify-write-notify sequence is one critical section.
//
// Fan-out works on a snapshot of the entries taken when the pass starts:
// callbacks added while a pass is running are not invoked during that pass,
// callbacks removed mid-pass are skipped if not yet reached. A write issued
// from inside a callback, or by another goroutine while a pass is in flight,
// updates storage immediately and queues its fan-out; the goroutine that
// owns the in-flight pass drains the queue in order.
type registry[T any] struct {
	mu       sync.Mutex
	entries  []*entry[T]
	nextID   uint64
	draining bool
	pending  []T
}

func (r *registry[T]) add(fn func(T)) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addLocked(fn)
}

func (r *registry[T]) addLocked(fn func(T)) uint64 {
	id := r.nextID
	r.nextID++
	r.entries = append(r.entries, &entry[T]{id: id, fn: fn})
	return id
}

// remove is idempotent and safe to call from inside the entry's own callback.
func (r *registry[T]) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.id == id {
			e.removed = true
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry[T]) unlisten(id uint64) func() {
	return func() { r.remove(id) }
}

func (r *registry[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// publish runs mutate under the lock and, when it reports a change, fans the
// produced value out. The calling goroutine drains the queue itself unless a
// pass is already in flight, in which case the fan-out is handed to the
// draining goroutine.
func (r *registry[T]) publish(mutate func() (T, bool)) {
	r.mu.Lock()
	locked := true
	// mutate runs user code (updaters, compute, equality predicates); if it
	// panics the lock must still be released or the cell deadlocks forever.
	defer func() {
		if locked {
			r.mu.Unlock()
		}
	}()
	v, changed := mutate()
	if !changed {
		return
	}
	r.pending = append(r.pending, v)
	if r.draining {
		return
	}
	locked = false // drain unlocks
	r.drain()
}

// drain delivers queued values until none remain. Called with r.mu held and
// r.draining unset; unlocks before returning. A panicking callback does not
// stop the pass: every other listener still runs, and the first captured
// panic is re-raised once the queue is empty.
func (r *registry[T]) drain() {
	r.draining = true
	var failure any
	failed := false
	for len(r.pending) > 0 {
		v := r.pending[0]
		r.pending = r.pending[1:]
		snapshot := make([]*entry[T], len(r.entries))
		copy(snapshot, r.entries)
		r.mu.Unlock()
		for _, e := range snapshot {
			if p, ok := r.invoke(e, v); ok && !failed {
				failure = p
				failed = true
			}
		}
		r.mu.Lock()
	}
	r.draining = false
	r.mu.Unlock()
	if failed {
		panic(failure)
	}
}

// invoke runs one callback outside the lock, re-checking liveness so entries
// removed since the snapshot are skipped.
func (r *registry[T]) invoke(e *entry[T], v T) (failure any, panicked bool) {
	r.mu.Lock()
	gone := e.removed
	r.mu.Unlock()
	if gone {
		return nil, false
	}
	defer func() {
		if p := recover(); p != nil {
			failure = p
			panicked = true
		}
	}()
	e.fn(v)
	return nil, false
}

// cell is the shared state behind every value-carrying primitive: the
// current value plus its registry, guarded by the registry's lock.
type cell[T any] struct {
	reg   registry[T]
	value T
}

func (c *cell[T]) get() T {
	c.reg.mu.Lock()
	defer c.reg.mu.Unlock()
	return c.value
}

// store replaces the value and notifies unconditionally.
func (c *cell[T]) store(v T) {
	c.reg.publish(func() (T, bool) {
		c.value = v
		return v, true
	})
}

// subscribe registers fn and delivers the current value once. Registration
// and the read happen in the same critical section, so the initial delivery
// cannot be stale relative to the registration point; an in-flight pass
// never sees the new entry. The initial call itself runs after the lock is
// released and can interleave with a concurrent pass still draining older
// queued values.
func (c *cell[T]) subscribe(fn func(T)) func() {
	c.reg.mu.Lock()
	id := c.reg.addLocked(fn)
	v := c.value
	c.reg.mu.Unlock()
	fn(v)
	return c.reg.unlisten(id)
}

func (c *cell[T]) listen(fn func()) func() {
	id := c.reg.add(func(T) { fn() })
	return c.reg.unlisten(id)
}
