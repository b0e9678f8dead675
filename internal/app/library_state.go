package app

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

var _ state.AlgorithmResolver = (*AlgorithmFactory)(nil)

// LibraryState owns the configuration store, the allocator registry and the
// algorithm factory, and governs the one-time initialization protocol.
//
// A state is constructed uninitialized and becomes usable after exactly one
// successful Initialize call. Initialization is not safe against itself;
// it must complete before worker goroutines touch the state. Once
// initialized, configuration and allocator queries are linearized by their
// own locks and never fail.
type LibraryState struct {
	id     string
	logger logger.Logger

	mutexFactory state.MutexFactory
	config       *ConfigStore
	allocators   *AllocatorRegistry
	algoFactory  *AlgorithmFactory
}

// NewLibraryState constructs an uninitialized library state.
func NewLibraryState(log logger.Logger) *LibraryState {
	s := &LibraryState{
		id:     uuid.New().String(),
		logger: log,
	}
	s.config = NewConfigStore()
	s.allocators = NewAllocatorRegistry(s.config, log)
	return s
}

// ID returns the state's instance identifier used in log correlation.
func (s *LibraryState) ID() string {
	return s.id
}

// Initialize performs the one-time setup: it installs the mutex factory,
// registers the module descriptor's allocators and engines, loads the
// built-in default configuration and, when opts requests it, runs the
// self-test gate.
//
// A second call on an already-initialized state fails with
// ErrAlreadyInitialized and leaves the first initialization untouched.
// Any other failure is terminal for this instance; callers must construct
// a fresh state instead of retrying.
func (s *LibraryState) Initialize(opts state.InitializerOptions, mods state.ModuleDescriptor) error {
	if s.mutexFactory != nil {
		return state.ErrAlreadyInitialized
	}

	mutexFactory := mods.MutexFactory(opts.ThreadSafe)
	if mutexFactory == nil {
		return state.ErrNoMutexFactory
	}
	s.mutexFactory = mutexFactory

	s.config.SetLock(mutexFactory.New())
	s.allocators.SetLock(mutexFactory.New())
	s.allocators.ResetCache()

	for _, provider := range mods.Allocators() {
		if err := s.allocators.Add(provider); err != nil {
			return err
		}
	}

	suggested := mods.DefaultAllocator()
	if opts.SecureMemory {
		suggested = config.AllocatorLocking
	}
	s.allocators.SetDefault(suggested)

	s.loadDefaultConfig()

	factory := NewAlgorithmFactory(s.config.DerefAlias, s.logger)
	for _, engine := range mods.Engines() {
		factory.AddEngine(engine)
	}

	if runner := mods.SelfTests(); runner != nil && (opts.FipsMode || opts.SelfTest) {
		if !runner.PassesSelfTests(factory) {
			return state.ErrSelfTestFailed
		}
	}

	s.algoFactory = factory
	s.logger.Info("library state ", s.id, " initialized")
	return nil
}

// loadDefaultConfig applies the built-in defaults without overwriting, so a
// caller's explicit Set made before Initialize survives this pass.
func (s *LibraryState) loadDefaultConfig() {
	s.config.SetDefault(sectionConf, defaultAllocatorOption, config.AllocatorMalloc)

	defaultAliases := map[string]string{
		"AES":   crypto.AlgorithmAES256GCM,
		"SHA2":  crypto.AlgorithmSHA256,
		"SHA-2": crypto.AlgorithmSHA256,
		"HMAC":  crypto.AlgorithmHMACSHA256,
	}
	for key, value := range defaultAliases {
		s.config.SetDefault(sectionAlias, key, value)
	}
}

// Close tears down everything the state owns. Each registered allocator
// provider is destroyed exactly once; calling Close again is a no-op.
func (s *LibraryState) Close() {
	s.algoFactory = nil
	s.allocators.Destroy()
	s.logger.Debug("library state ", s.id, " closed")
}

// Get returns the configuration value for section/key, or "" if absent.
func (s *LibraryState) Get(section, key string) string {
	return s.config.Get(section, key)
}

// IsSet reports whether section/key has a configuration entry.
func (s *LibraryState) IsSet(section, key string) bool {
	return s.config.IsSet(section, key)
}

// Set writes a configuration value, replacing any prior entry.
func (s *LibraryState) Set(section, key, value string) {
	s.config.Set(section, key, value)
}

// SetDefault writes a configuration value only when no non-empty entry
// exists.
func (s *LibraryState) SetDefault(section, key, value string) {
	s.config.SetDefault(section, key, value)
}

// SetOption writes an option value in the conf section.
func (s *LibraryState) SetOption(key, value string) {
	s.config.SetOption(key, value)
}

// Option returns an option value from the conf section, or "" if unset.
func (s *LibraryState) Option(key string) string {
	return s.config.Option(key)
}

// AddAlias records key -> value in the alias namespace.
func (s *LibraryState) AddAlias(key, value string) {
	s.config.AddAlias(key, value)
}

// DerefAlias resolves key through the alias table to a fixed name.
func (s *LibraryState) DerefAlias(key string) (string, error) {
	return s.config.DerefAlias(key)
}

// AddAllocator registers an allocator provider, transferring ownership to
// the state.
func (s *LibraryState) AddAllocator(provider state.Allocator) error {
	return s.allocators.Add(provider)
}

// GetAllocator returns the allocator registered under typeName, or the
// default allocator when typeName is empty. Returns nil on a named miss.
func (s *LibraryState) GetAllocator(typeName string) state.Allocator {
	return s.allocators.Get(typeName)
}

// SetDefaultAllocator records typeName as the default allocator type.
func (s *LibraryState) SetDefaultAllocator(typeName string) {
	s.allocators.SetDefault(typeName)
}

// AlgoFactory returns the algorithm factory. It fails with ErrUninitialized
// before a successful Initialize.
func (s *LibraryState) AlgoFactory() (*AlgorithmFactory, error) {
	if s.algoFactory == nil {
		return nil, fmt.Errorf("%w: algorithm factory unavailable", state.ErrUninitialized)
	}
	return s.algoFactory, nil
}
