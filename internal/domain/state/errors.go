package state

import "errors"

// Error variants for the initialization protocol and resolution queries.
// Named lookups (allocator by type, alias with no entry) are deliberately
// not errors; they return absent/identity results instead.
var (
	// ErrAlreadyInitialized reports a second Initialize call on a state
	// that already holds a mutex factory.
	ErrAlreadyInitialized = errors.New("library state already initialized")

	// ErrNoMutexFactory reports that the module descriptor could not
	// supply a mutex factory at initialization.
	ErrNoMutexFactory = errors.New("no mutex factory available at init")

	// ErrSelfTestFailed reports a failed self-test gate; the library must
	// not be considered usable.
	ErrSelfTestFailed = errors.New("initialization self-tests failed")

	// ErrUninitialized reports use of the library before required
	// one-time setup has occurred.
	ErrUninitialized = errors.New("library state not initialized")

	// ErrAliasCycle reports an alias chain that exceeded the maximum
	// dereference depth.
	ErrAliasCycle = errors.New("alias chain exceeds maximum depth")

	// ErrAlgorithmNotFound reports that no registered engine can produce
	// the requested algorithm.
	ErrAlgorithmNotFound = errors.New("no engine provides algorithm")
)
