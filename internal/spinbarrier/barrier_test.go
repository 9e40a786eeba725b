package spinbarrier

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGateReleasesAllWaiters(t *testing.T) {
	const n = 8
	g := New(n, WaitYield)

	var started atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Wait()
			started.Add(1)
		}()
	}

	g.AwaitArrivals()
	require.Equal(t, n, g.Arrived())
	assert.Equal(t, int32(0), started.Load(), "no worker may pass before release")

	g.Release()
	wg.Wait()
	assert.Equal(t, int32(n), started.Load())
}

func TestGateNoEarlyStart(t *testing.T) {
	g := New(1, WaitYield)

	passed := make(chan struct{})
	go func() {
		g.Wait()
		close(passed)
	}()
	g.AwaitArrivals()

	select {
	case <-passed:
		t.Fatal("worker passed a closed gate")
	case <-time.After(20 * time.Millisecond):
	}

	g.Release()
	select {
	case <-passed:
	case <-time.After(time.Second):
		t.Fatal("worker never released")
	}
}

func TestGateResetRearms(t *testing.T) {
	g := New(2, WaitYield)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() { defer wg.Done(); g.Wait() }()
	}
	g.AwaitArrivals()
	g.Release()
	wg.Wait()

	g.Reset()
	require.Equal(t, 0, g.Arrived())

	done := make(chan struct{})
	go func() {
		g.Wait()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("reset gate let a waiter through")
	case <-time.After(20 * time.Millisecond):
	}
	g.Release()
	<-done

	var second sync.WaitGroup
	second.Add(1)
	go func() { defer second.Done(); g.Wait() }()
	second.Wait() // released gate admits late arrivals immediately
}

func TestGateSpinPolicy(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping busy-wait test in short mode")
	}
	g := New(1, WaitSpin)
	done := make(chan struct{})
	go func() {
		g.Wait()
		close(done)
	}()
	g.AwaitArrivals()
	g.Release()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("spin waiter never observed release")
	}
}

func TestWaitPolicyString(t *testing.T) {
	assert.Equal(t, "spin", WaitSpin.String())
	assert.Equal(t, "yield", WaitYield.String())
	assert.Equal(t, "unknown", WaitPolicy(42).String())
}
