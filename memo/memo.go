// Package memo provides an explicit memoization cache with normalized key
// derivation. The cache is a value owned by the caching entity; nothing is
// attached to functions or objects behind the scenes.
//
// Keys are derived from a name plus the textual form of every argument, so
// two calls with equal argument values produce the same key regardless of
// how the call was spelled. The rendered form is digested with xxh3 so keys
// stay fixed-size no matter how large the arguments are.
//
// Example:
//
//	type parser struct {
//	    patterns memo.Cache[string]
//	}
//
//	func (p *parser) pattern(min int, max int) string {
//	    return p.patterns.GetOrCompute(memo.Key("pattern", min, max), func() string {
//	        return expensiveBuild(min, max)
//	    })
//	}
package memo

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Key derives a cache key from a name (typically the memoized function's
// name) and the argument values of the call.
func Key(name string, args ...any) uint64 {
	var sb strings.Builder

	sb.WriteString(name)

	for _, arg := range args {
		sb.WriteByte('_')
		fmt.Fprint(&sb, arg)
	}

	return xxh3.HashString(sb.String())
}

// Cache memoizes computed values by key. The zero value is ready to use.
// Cache is not safe for concurrent use; callers that share one across
// goroutines must synchronize access themselves.
type Cache[V any] struct {
	entries map[uint64]V
}

// Get returns the cached value for key and whether one is present.
func (c *Cache[V]) Get(key uint64) (V, bool) {
	v, ok := c.entries[key]

	return v, ok
}

// Put stores a value under key, replacing any previous entry.
func (c *Cache[V]) Put(key uint64, value V) {
	if c.entries == nil {
		c.entries = make(map[uint64]V)
	}

	c.entries[key] = value
}

// GetOrCompute returns the cached value for key, computing and caching it on
// first use. compute runs at most once per key.
func (c *Cache[V]) GetOrCompute(key uint64, compute func() V) V {
	if v, ok := c.entries[key]; ok {
		return v
	}

	v := compute()
	c.Put(key, v)

	return v
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return len(c.entries)
}

// Reset drops every cached entry.
func (c *Cache[V]) Reset() {
	c.entries = nil
}

// Func1 wraps a one-argument function so repeated calls with an equal
// argument return the cached result. The name seeds key derivation and
// should be unique per wrapped function.
func Func1[A, V any](name string, fn func(A) V) func(A) V {
	var cache Cache[V]

	return func(a A) V {
		return cache.GetOrCompute(Key(name, a), func() V {
			return fn(a)
		})
	}
}

// Func2 is Func1 for two-argument functions.
func Func2[A, B, V any](name string, fn func(A, B) V) func(A, B) V {
	var cache Cache[V]

	return func(a A, b B) V {
		return cache.GetOrCompute(Key(name, a, b), func() V {
			return fn(a, b)
		})
	}
}
