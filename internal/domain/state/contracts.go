package state

import (
	"github.com/cdesjardins/botan/internal/domain/crypto"
)

// Mutex is the mutual-exclusion primitive guarding the library's internal
// tables. Implementations come from a MutexFactory so that single-threaded
// embedders can run without locking overhead.
type Mutex interface {
	Lock()
	Unlock()
}

// MutexFactory produces mutexes on demand.
type MutexFactory interface {
	New() Mutex
}

// Allocator is a pluggable strategy for obtaining memory intended to hold
// sensitive data. The registry that an allocator is added to owns it
// exclusively: Init is called exactly once at registration, Destroy exactly
// once at registry teardown.
type Allocator interface {
	// Type returns the name the allocator registers under (e.g. "malloc").
	Type() string

	// Init prepares the allocator for use.
	Init() error

	// Destroy releases everything the allocator holds.
	Destroy()

	// Alloc returns a buffer of n bytes suitable for sensitive data.
	Alloc(n int) ([]byte, error)

	// Free wipes and releases a buffer obtained from Alloc.
	Free(buf []byte)
}

// Engine constructs implementations of cryptographic primitives. Each typed
// lookup reports ok=false when the engine cannot produce the named
// algorithm; the factory then falls through to the next engine in order.
type Engine interface {
	// Name identifies the engine in logs and diagnostics.
	Name() string

	SymmetricCipher(name string) (crypto.SymmetricCipher, bool)
	HashFunction(name string) (crypto.HashFunction, bool)
	MAC(name string) (crypto.MAC, bool)
}

// AlgorithmResolver is the subset of the algorithm factory's surface needed
// by external collaborators such as the self-test suite.
type AlgorithmResolver interface {
	SymmetricCipher(name string) (crypto.SymmetricCipher, error)
	HashFunction(name string) (crypto.HashFunction, error)
	MAC(name string) (crypto.MAC, error)
}

// SelfTestRunner checks the library's own primitives before the library is
// trusted for use, notably under FIPS-mode operation.
type SelfTestRunner interface {
	// PassesSelfTests runs the full suite against resolver and reports
	// whether every test passed.
	PassesSelfTests(resolver AlgorithmResolver) bool
}

// ModuleDescriptor bundles the platform-specific providers handed to the
// library at initialization time. The core never constructs any of these;
// it only orchestrates them.
type ModuleDescriptor interface {
	// MutexFactory returns a mutex factory appropriate for the requested
	// thread-safety level, or nil if none is available.
	MutexFactory(threadSafe bool) MutexFactory

	// Allocators returns the allocator providers to register, in order.
	// Ownership transfers to the library state.
	Allocators() []Allocator

	// DefaultAllocator returns the suggested default allocator type name,
	// or "" for no suggestion.
	DefaultAllocator() string

	// Engines returns the engines to add to the algorithm factory, in
	// priority order. Ownership transfers to the library state.
	Engines() []Engine

	// SelfTests returns the self-test suite, or nil when no suite is
	// available (the self-test gate is then skipped).
	SelfTests() SelfTestRunner
}
