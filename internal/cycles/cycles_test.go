package cycles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNowNonDecreasing(t *testing.T) {
	prev := Now()
	for i := 0; i < 10000; i++ {
		cur := Now()
		if cur < prev {
			t.Fatalf("counter went backwards: %d -> %d", prev, cur)
		}
		prev = cur
	}
}

func TestSinceMeasuresWork(t *testing.T) {
	start := Now()
	sink := 0
	for i := 0; i < 1_000_000; i++ {
		sink += i
	}
	_ = sink
	assert.Positive(t, Since(start), "a million additions should cost at least one tick")
}

func TestSinceWraparound(t *testing.T) {
	// Near-max start value simulates a counter about to wrap; unsigned
	// subtraction must still yield the small forward delta.
	var start uint64 = ^uint64(0) - 5
	end := start + 12 // wraps to 6
	assert.Equal(t, uint64(12), end-start)
}
