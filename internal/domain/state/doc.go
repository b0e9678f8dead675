// Package state defines the contracts between the library's runtime core and
// the pluggable providers supplied at initialization time: mutex factories,
// secure-memory allocators, engines and self-test suites, bundled by a
// module descriptor.
package state
