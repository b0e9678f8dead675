package app

import (
	"fmt"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// AlgorithmFactory holds the ordered engine collection and resolves
// primitive-construction requests against it. Earlier-added engines win;
// engines added later are strictly fallbacks for a given name.
//
// The factory is populated during single-threaded initialization and
// treated as read-only afterwards; it carries no lock of its own.
type AlgorithmFactory struct {
	engines []state.Engine
	deref   func(string) (string, error)
	logger  logger.Logger
}

// NewAlgorithmFactory creates an empty factory. Requested names pass
// through deref once before the engines are consulted, so aliases resolve
// to canonical names.
func NewAlgorithmFactory(deref func(string) (string, error), logger logger.Logger) *AlgorithmFactory {
	return &AlgorithmFactory{
		deref:  deref,
		logger: logger,
	}
}

// AddEngine appends an engine, transferring ownership to the factory.
func (f *AlgorithmFactory) AddEngine(engine state.Engine) {
	f.engines = append(f.engines, engine)
	f.logger.Debug("added engine ", engine.Name())
}

// EngineNames returns the names of the registered engines in priority
// order.
func (f *AlgorithmFactory) EngineNames() []string {
	names := make([]string, 0, len(f.engines))
	for _, engine := range f.engines {
		names = append(names, engine.Name())
	}
	return names
}

// SymmetricCipher resolves a symmetric cipher by name or alias.
func (f *AlgorithmFactory) SymmetricCipher(name string) (domaincrypto.SymmetricCipher, error) {
	canonical, err := f.deref(name)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference %q: %w", name, err)
	}

	for _, engine := range f.engines {
		if cipher, ok := engine.SymmetricCipher(canonical); ok {
			return cipher, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", state.ErrAlgorithmNotFound, name)
}

// HashFunction resolves a hash function by name or alias.
func (f *AlgorithmFactory) HashFunction(name string) (domaincrypto.HashFunction, error) {
	canonical, err := f.deref(name)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference %q: %w", name, err)
	}

	for _, engine := range f.engines {
		if hash, ok := engine.HashFunction(canonical); ok {
			return hash, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", state.ErrAlgorithmNotFound, name)
}

// MAC resolves a message authentication code by name or alias.
func (f *AlgorithmFactory) MAC(name string) (domaincrypto.MAC, error) {
	canonical, err := f.deref(name)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference %q: %w", name, err)
	}

	for _, engine := range f.engines {
		if mac, ok := engine.MAC(canonical); ok {
			return mac, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", state.ErrAlgorithmNotFound, name)
}
