package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		t.Run("", func(t *testing.T) {
			pool := Start(workers)

			var count atomic.Int64
			for range 100 {
				pool.Do(func() { count.Add(1) })
			}
			pool.Wait(false)
			require.EqualValues(t, 100, count.Load())

			for range 10 {
				pool.Do(func() { count.Add(1) })
			}
			pool.Wait(true)
			require.EqualValues(t, 110, count.Load())
		})
	}
}

func TestPoolInline(t *testing.T) {
	pool := Start(1)
	ran := false
	pool.Do(func() { ran = true })
	require.True(t, ran, "a single worker must run jobs before Do returns")
	pool.Wait(true)
}
