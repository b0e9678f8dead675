// Package platform supplies the mutual-exclusion providers bundled by the
// default module descriptor.
package platform

import (
	"sync"

	"github.com/cdesjardins/botan/internal/domain/state"
)

// syncMutexFactory produces sync.Mutex-backed mutexes.
type syncMutexFactory struct{}

// NewSyncMutexFactory returns a factory producing real mutexes for
// thread-safe operation.
func NewSyncMutexFactory() state.MutexFactory {
	return syncMutexFactory{}
}

func (syncMutexFactory) New() state.Mutex {
	return &sync.Mutex{}
}

// noopMutex satisfies the Mutex contract without any locking. Only valid
// when the embedder guarantees single-threaded access.
type noopMutex struct{}

func (noopMutex) Lock()   {}
func (noopMutex) Unlock() {}

type noopMutexFactory struct{}

// NewNoopMutexFactory returns a factory producing no-op mutexes for
// single-threaded embedders.
func NewNoopMutexFactory() state.MutexFactory {
	return noopMutexFactory{}
}

func (noopMutexFactory) New() state.Mutex {
	return noopMutex{}
}
