package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Built-in allocator type names
const (
	AllocatorMalloc  = "malloc"
	AllocatorLocking = "locking"
)

// LibrarySettings holds the initialization settings the embedding application
// hands to the library runtime.
type LibrarySettings struct {
	ThreadSafe       bool   `mapstructure:"thread_safe"`
	FipsMode         bool   `mapstructure:"fips_mode"`
	SelfTest         bool   `mapstructure:"self_test"`
	DefaultAllocator string `mapstructure:"default_allocator" validate:"omitempty,oneof=malloc locking"`
}

// Validate checks that all fields in LibrarySettings are valid
func (s *LibrarySettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LibrarySettings: %w", err)
	}

	return nil
}
