package stores_test

import (
	"testing"

	"github.com/delaneyj/storeparty/stores"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fan-out works on a snapshot: a listener added mid-pass is not invoked
// during that pass.
func TestListenerAddedDuringDispatchWaitsForNextPass(t *testing.T) {
	e := stores.NewEvent()
	lateCalls := 0
	added := false

	e.Listen(func() {
		if !added {
			added = true
			e.Listen(func() {
				lateCalls++
			})
		}
	})

	e.Dispatch()
	assert.Equal(t, 0, lateCalls)

	e.Dispatch()
	assert.Equal(t, 1, lateCalls)
}

// A listener removed mid-pass is skipped if not yet reached.
func TestListenerRemovedDuringDispatchIsSkipped(t *testing.T) {
	o := stores.NewObservable(0)
	var unlistenB func()
	bCalls := 0

	o.Listen(func() {
		unlistenB()
	})
	unlistenB = o.Listen(func() {
		bCalls++
	})

	o.Set(1)
	assert.Equal(t, 0, bCalls)
}

// Self-removal from inside the listener's own callback must not corrupt the
// pass, and the listener gets no further calls.
func TestSelfUnlistenDuringDispatch(t *testing.T) {
	e := stores.NewEvent()
	calls := 0
	otherCalls := 0

	var unlisten func()
	unlisten = e.Listen(func() {
		calls++
		unlisten()
	})
	e.Listen(func() {
		otherCalls++
	})

	e.Dispatch()
	e.Dispatch()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, otherCalls)
}

// A Set issued from inside a listener of the same observable is applied
// immediately and its fan-out queued behind the in-flight pass.
func TestReentrantSetIsQueued(t *testing.T) {
	o := stores.NewObservable(0)
	var delivered []int

	o.Subscribe(func(v int) {
		if v != 0 {
			delivered = append(delivered, v)
		}
	})
	o.Listen(func() {
		if o.Get() == 1 {
			o.Set(2)
		}
	})

	o.Set(1)
	assert.Equal(t, []int{1, 2}, delivered)
	assert.Equal(t, 2, o.Get())
}

// Listeners registered through Listen and Subscribe share one registration
// order.
func TestFanoutFollowsRegistrationOrder(t *testing.T) {
	o := stores.NewObservable(0)
	var order []string

	o.Listen(func() { order = append(order, "a") })
	o.Subscribe(func(int) { order = append(order, "b") })
	o.Listen(func() { order = append(order, "c") })

	order = nil
	o.Set(1)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

// One panicking listener must not prevent the others from running; the panic
// surfaces to the caller of Set after the pass completes.
func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	o := stores.NewObservable(0)
	aCalls, cCalls := 0, 0

	o.Listen(func() { aCalls++ })
	o.Listen(func() { panic("boom") })
	o.Listen(func() { cCalls++ })

	require.PanicsWithValue(t, "boom", func() {
		o.Set(1)
	})
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 1, cCalls)
	assert.Equal(t, 1, o.Get())

	// The registry stays usable afterwards.
	require.PanicsWithValue(t, "boom", func() {
		o.Set(2)
	})
	assert.Equal(t, 2, aCalls)
	assert.Equal(t, 2, cCalls)
}

func TestFirstPanicWins(t *testing.T) {
	e := stores.NewEvent()

	e.Listen(func() { panic("first") })
	e.Listen(func() { panic("second") })

	require.PanicsWithValue(t, "first", func() {
		e.Dispatch()
	})
}

// A panic in an Update updater must release the cell lock: the value stays
// unchanged and the observable remains usable, including from other
// goroutines.
func TestPanickingUpdaterKeepsObservableUsable(t *testing.T) {
	o := stores.NewObservable(1)

	require.PanicsWithValue(t, "bad updater", func() {
		o.Update(func(int) int { panic("bad updater") })
	})
	assert.Equal(t, 1, o.Get())

	done := make(chan int)
	go func() { done <- o.Get() }()
	assert.Equal(t, 1, <-done)

	o.Set(2)
	assert.Equal(t, 2, o.Get())
}

// A panicking compute surfaces through the source's Set; the derived keeps
// its previous value and keeps recomputing afterwards.
func TestPanickingComputeKeepsDerivedUsable(t *testing.T) {
	o := stores.NewObservable(1)
	d := stores.Derive1(o, func(v int) int {
		if v == 3 {
			panic("bad compute")
		}
		return v * 2
	})

	require.PanicsWithValue(t, "bad compute", func() {
		o.Set(3)
	})
	assert.Equal(t, 2, d.Get())

	o.Set(4)
	assert.Equal(t, 8, d.Get())
}

// A panicking equality predicate suppresses the delivery but must leave the
// Deduped usable.
func TestPanickingEqualityKeepsDedupedUsable(t *testing.T) {
	calls := 0
	d := stores.NewDedupedFunc(1, func(a, b int) bool {
		calls++
		if calls == 1 {
			panic("bad equals")
		}
		return a == b
	})

	require.PanicsWithValue(t, "bad equals", func() {
		d.Set(2)
	})
	assert.Equal(t, 1, d.Get())

	d.Set(3)
	assert.Equal(t, 3, d.Get())
}

// Ported from the cross-wiring scenario: listeners of a and b both write a
// third observable.
func TestCrossWiredSum(t *testing.T) {
	a := stores.NewObservable(1)
	b := stores.NewObservable(2)
	sum := stores.NewObservable(0)

	a.Subscribe(func(av int) {
		sum.Set(av + b.Get())
	})
	b.Subscribe(func(bv int) {
		sum.Set(a.Get() + bv)
	})

	a.Set(2)
	b.Set(5)
	assert.Equal(t, 7, sum.Get())
}
