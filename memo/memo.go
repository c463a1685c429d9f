// Package memo provides memoised recursive functions.
//
// The cache belongs to the Memo value, so two Memos over the same function never share
// results and a Memo can be discarded or Reset between inputs.
package memo

// Memo caches the results of a recursive function keyed by its argument.
//
// A Memo is not safe for concurrent use.
type Memo[S comparable, R any] struct {
	fn      func(recurse func(S) R, s S) R
	results map[S]R
}

// New wraps fn so that every distinct state is computed at most once.
//
// fn receives a "recurse" function that must be used in place of direct recursion, eg.
//
//	fib := memo.New(func(recurse func(int) int, n int) int {
//		if n < 2 {
//			return 1
//		}
//		return recurse(n-1) + recurse(n-2)
//	})
func New[S comparable, R any](fn func(recurse func(S) R, s S) R) *Memo[S, R] {
	return &Memo[S, R]{fn: fn, results: map[S]R{}}
}

// Get returns the result for s, computing it if it has not been seen before.
func (m *Memo[S, R]) Get(s S) R {
	if r, ok := m.results[s]; ok {
		return r
	}
	r := m.fn(m.Get, s)
	m.results[s] = r
	return r
}

// Len returns the number of cached results.
func (m *Memo[S, R]) Len() int {
	return len(m.results)
}

// Reset discards all cached results.
func (m *Memo[S, R]) Reset() {
	m.results = map[S]R{}
}
