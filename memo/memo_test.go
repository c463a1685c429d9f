package memo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFibonacciCallCount(t *testing.T) {
	calls := 0
	fib := New(func(recurse func(int) int, n int) int {
		calls++
		if n < 2 {
			return 1
		}
		return recurse(n-1) + recurse(n-2)
	})
	require.Equal(t, 8, fib.Get(5))
	require.Equal(t, 6, calls)
	require.Equal(t, 6, fib.Len())

	require.Equal(t, 8, fib.Get(5))
	require.Equal(t, 6, calls)
}

func TestReset(t *testing.T) {
	calls := 0
	double := New(func(recurse func(int) int, n int) int {
		calls++
		return n * 2
	})
	require.Equal(t, 4, double.Get(2))
	double.Reset()
	require.Equal(t, 0, double.Len())
	require.Equal(t, 4, double.Get(2))
	require.Equal(t, 2, calls)
}

type point struct{ x, y int64 }

func TestStructStateWithOptionalResult(t *testing.T) {
	type result struct {
		cost  int64
		found bool
	}
	// Cheapest way to reach (0, 0) by subtracting (3, 1) for 3 tokens or (1, 1) for 1 token.
	cheapest := New(func(recurse func(point) result, p point) result {
		if p.x == 0 && p.y == 0 {
			return result{found: true}
		}
		if p.x < 0 || p.y < 0 {
			return result{}
		}
		best := result{}
		if r := recurse(point{p.x - 3, p.y - 1}); r.found {
			best = result{cost: r.cost + 3, found: true}
		}
		if r := recurse(point{p.x - 1, p.y - 1}); r.found && (!best.found || r.cost+1 < best.cost) {
			best = result{cost: r.cost + 1, found: true}
		}
		return best
	})
	require.Equal(t, result{cost: 6, found: true}, cheapest.Get(point{6, 4}))
	require.False(t, cheapest.Get(point{1, 2}).found)
}
