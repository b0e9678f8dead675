// Package memory provides the built-in secure-memory allocators.
package memory

import (
	"runtime"
)

// SecureZero overwrites a byte slice with zeros to clear sensitive data from
// memory. Uses runtime.KeepAlive() to prevent the wipe from being optimized
// away.
func SecureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
