// Package botan is the public facade over the library's runtime core.
//
// Most embedders construct an explicit library state, initialize it once
// and pass it around as a dependency. Code paths that cannot take an
// explicit dependency use the process-wide accessor triad: GlobalState
// lazily constructs and initializes a state with default parameters on
// first use, SetGlobalState replaces it, and SwapGlobalState replaces it
// while handing ownership of the previous state back to the caller.
package botan
