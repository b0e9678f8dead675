// Package modules bundles the built-in providers into the module descriptor
// consumed at library initialization.
package modules

import (
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/infrastructure/engines"
	"github.com/cdesjardins/botan/internal/infrastructure/memory"
	"github.com/cdesjardins/botan/internal/infrastructure/platform"
	"github.com/cdesjardins/botan/internal/infrastructure/selftest"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// defaultModules struct that implements the ModuleDescriptor interface
type defaultModules struct {
	logger           logger.Logger
	defaultAllocator string
}

// NewDefaultModules creates the built-in module descriptor with "malloc" as
// the suggested default allocator.
func NewDefaultModules(logger logger.Logger) state.ModuleDescriptor {
	return &defaultModules{
		logger:           logger,
		defaultAllocator: config.AllocatorMalloc,
	}
}

// NewSecureModules creates the built-in module descriptor preferring the
// mlock-backed allocator for key material.
func NewSecureModules(logger logger.Logger) state.ModuleDescriptor {
	return &defaultModules{
		logger:           logger,
		defaultAllocator: config.AllocatorLocking,
	}
}

// MutexFactory returns a real mutex factory when thread safety is requested
// and a no-op factory otherwise.
func (m *defaultModules) MutexFactory(threadSafe bool) state.MutexFactory {
	if threadSafe {
		return platform.NewSyncMutexFactory()
	}
	return platform.NewNoopMutexFactory()
}

// Allocators returns the built-in allocator providers.
func (m *defaultModules) Allocators() []state.Allocator {
	return []state.Allocator{
		memory.NewHeapAllocator(m.logger),
		memory.NewLockingAllocator(m.logger),
	}
}

// DefaultAllocator returns the suggested default allocator type name.
func (m *defaultModules) DefaultAllocator() string {
	return m.defaultAllocator
}

// Engines returns the built-in engines in priority order.
func (m *defaultModules) Engines() []state.Engine {
	engine, err := engines.NewBuiltinEngine(m.logger)
	if err != nil {
		// The builtin engine only fails on a programming error in its own
		// algorithm table.
		m.logger.Error("failed to construct builtin engine: ", err)
		return nil
	}
	return []state.Engine{engine}
}

// SelfTests returns the built-in known-answer suite.
func (m *defaultModules) SelfTests() state.SelfTestRunner {
	return selftest.NewRunner(m.logger)
}
