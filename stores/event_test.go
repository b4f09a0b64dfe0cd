package stores_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/delaneyj/storeparty/stores"
	"github.com/stretchr/testify/assert"
)

func TestEventDispatches(t *testing.T) {
	e := stores.NewEvent()
	callCount := 0

	e.Listen(func() {
		callCount++
	})

	assert.Equal(t, 0, callCount)
	e.Dispatch()
	assert.Equal(t, 1, callCount)
}

func TestEventDispatchWithoutListeners(t *testing.T) {
	e := stores.NewEvent()
	e.Dispatch() // no-op, returns normally
	assert.Equal(t, "Event{listeners: 0}", e.String())
}

func TestEventUnlisten(t *testing.T) {
	e := stores.NewEvent()
	callCount := 0

	unlisten := e.Listen(func() {
		callCount++
	})

	e.Dispatch()
	assert.Equal(t, 1, callCount)

	unlisten()
	e.Dispatch()
	assert.Equal(t, 1, callCount)
}

func TestEventListenerOrder(t *testing.T) {
	e := stores.NewEvent()
	var order []string

	e.Listen(func() { order = append(order, "a") })
	e.Listen(func() { order = append(order, "b") })
	e.Listen(func() { order = append(order, "c") })

	e.Dispatch()
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestEventThreads(t *testing.T) {
	e := stores.NewEvent()
	var callCount atomic.Int64

	e.Listen(func() {
		callCount.Add(1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Dispatch()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), callCount.Load())
}
