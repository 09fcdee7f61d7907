package busy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTracker_AcquireRelease verifies the basic acquire/release cycle.
func TestTracker_AcquireRelease(t *testing.T) {
	tr := NewTracker()

	assert.True(t, tr.Acquire("order-1"))
	assert.True(t, tr.IsBusy("order-1"))

	// Second acquire on the same id is rejected while in flight.
	assert.False(t, tr.Acquire("order-1"))

	tr.Release("order-1")
	assert.False(t, tr.IsBusy("order-1"))

	// The same id is acquirable again once released.
	assert.True(t, tr.Acquire("order-1"))
}

// TestTracker_IndependentIds verifies that a busy id does not block other ids.
func TestTracker_IndependentIds(t *testing.T) {
	tr := NewTracker()

	assert.True(t, tr.Acquire("order-1"))
	assert.True(t, tr.Acquire("order-2"))
	assert.True(t, tr.IsBusy("order-1"))
	assert.True(t, tr.IsBusy("order-2"))

	tr.Release("order-1")
	assert.False(t, tr.IsBusy("order-1"))
	assert.True(t, tr.IsBusy("order-2"))
}

// TestTracker_ReleaseUnknown verifies that releasing an unknown id is harmless.
func TestTracker_ReleaseUnknown(t *testing.T) {
	tr := NewTracker()
	tr.Release("never-acquired")
	assert.False(t, tr.IsBusy("never-acquired"))
}

// TestTracker_ConcurrentAcquire verifies that exactly one of N concurrent
// acquirers wins for a single id.
func TestTracker_ConcurrentAcquire(t *testing.T) {
	tr := NewTracker()

	const goroutines = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	won := 0

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.Acquire("order-1") {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
}
