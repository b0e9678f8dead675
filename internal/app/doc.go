// Package app implements the library's runtime core: the configuration
// store, the allocator registry, the algorithm factory and the library
// state that owns them, including the one-time initialization protocol and
// its self-test gate.
package app
