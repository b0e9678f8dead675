package app

import (
	"fmt"

	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// defaultAllocatorOption is the conf-section key naming the default
// allocator type.
const defaultAllocatorOption = "base/default_allocator"

// AllocatorRegistry owns the registered secure-memory allocator providers.
// Every provider is initialized exactly once at registration and destroyed
// exactly once at registry teardown. Default-allocator resolution is
// memoized because it sits on the hot path of every secure buffer
// allocation.
type AllocatorRegistry struct {
	lock   state.Mutex
	config *ConfigStore
	logger logger.Logger

	byType map[string]state.Allocator
	owned  []state.Allocator

	// cachedDefault is a non-owning reference into byType.
	cachedDefault state.Allocator
}

// NewAllocatorRegistry creates an empty registry resolving its default
// through the given configuration store.
func NewAllocatorRegistry(config *ConfigStore, logger logger.Logger) *AllocatorRegistry {
	return &AllocatorRegistry{
		lock:   unlockedMutex{},
		config: config,
		logger: logger,
		byType: make(map[string]state.Allocator),
	}
}

// SetLock installs the allocator lock produced by the mutex factory.
func (r *AllocatorRegistry) SetLock(mu state.Mutex) {
	r.lock = mu
}

// ResetCache invalidates the memoized default allocator.
func (r *AllocatorRegistry) ResetCache() {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.cachedDefault = nil
}

// Add initializes provider, takes ownership of it and registers it under
// its reported type name, replacing any prior registration of that name.
func (r *AllocatorRegistry) Add(provider state.Allocator) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if err := provider.Init(); err != nil {
		return fmt.Errorf("failed to initialize allocator %q: %w", provider.Type(), err)
	}

	r.owned = append(r.owned, provider)
	r.byType[provider.Type()] = provider
	r.logger.Debug("registered allocator ", provider.Type())
	return nil
}

// Get returns the allocator registered under typeName, or nil when no such
// registration exists. With an empty typeName it returns the default
// allocator: the type named by the base/default_allocator option, falling
// back to "malloc" when unset, memoized until the default type changes.
func (r *AllocatorRegistry) Get(typeName string) state.Allocator {
	r.lock.Lock()
	defer r.lock.Unlock()

	if typeName != "" {
		return r.byType[typeName]
	}

	if r.cachedDefault == nil {
		chosen := r.config.Option(defaultAllocatorOption)
		if chosen == "" {
			chosen = config.AllocatorMalloc
		}
		r.cachedDefault = r.byType[chosen]
	}

	return r.cachedDefault
}

// SetDefault records typeName as the default allocator type and invalidates
// the memoized default so the next Get re-resolves. An empty typeName is
// ignored.
func (r *AllocatorRegistry) SetDefault(typeName string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if typeName == "" {
		return
	}

	r.config.SetOption(defaultAllocatorOption, typeName)
	r.cachedDefault = nil
}

// Destroy tears down every owned provider exactly once and empties the
// registry. Safe to call more than once.
func (r *AllocatorRegistry) Destroy() {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, provider := range r.owned {
		provider.Destroy()
	}
	r.owned = nil
	r.byType = make(map[string]state.Allocator)
	r.cachedDefault = nil
}
