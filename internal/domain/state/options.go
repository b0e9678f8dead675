package state

import (
	"fmt"
	"strconv"
	"strings"
)

// InitializerOptions carries the recognized initialization flags.
type InitializerOptions struct {
	// ThreadSafe requests a real mutex factory; without it the module
	// descriptor may supply a no-op factory for single-threaded use.
	ThreadSafe bool

	// FipsMode forces the self-test gate and FIPS-approved operation.
	FipsMode bool

	// SelfTest forces the self-test gate regardless of FipsMode.
	SelfTest bool

	// SecureMemory requests the locked-memory allocator as the default
	// when available.
	SecureMemory bool
}

// ParseInitializerOptions parses a space-separated list of name=value
// option pairs, e.g. "thread_safe=true self_test=false". A bare name is
// shorthand for name=true. Unknown option names are rejected.
func ParseInitializerOptions(args string) (InitializerOptions, error) {
	var opts InitializerOptions

	for _, token := range strings.Fields(args) {
		name, value := token, "true"
		if idx := strings.IndexByte(token, '='); idx >= 0 {
			name, value = token[:idx], token[idx+1:]
		}

		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return InitializerOptions{}, fmt.Errorf("invalid value %q for option %q", value, name)
		}

		switch name {
		case "thread_safe":
			opts.ThreadSafe = enabled
		case "fips_mode", "fips140":
			opts.FipsMode = enabled
		case "self_test", "selftest":
			opts.SelfTest = enabled
		case "secure_memory":
			opts.SecureMemory = enabled
		default:
			return InitializerOptions{}, fmt.Errorf("unknown initializer option %q", name)
		}
	}

	return opts, nil
}
