// Package cache provides a small generic LRU used to memoize values that are
// expensive to derive but cheap to keep, such as tokenized format masks.
//
// The cache is bounded: once capacity is reached the least recently used entry is
// dropped. All methods are safe for concurrent use.
//
// # Usage
//
//	masks := cache.NewLRU[string, []token](256)
//
//	toks := masks.GetOrCompute(mask, func() []token {
//		return tokenize(mask)
//	})
//
// GetOrCompute runs the compute function outside the lock, so two goroutines
// racing on the same missing key may both compute it; the last writer wins.
// Cached values must therefore be immutable and deterministic.
package cache
