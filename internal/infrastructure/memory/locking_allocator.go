package memory

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// lockingAllocator pins its buffers with mlock(2) so key material cannot be
// swapped to disk. When the mlock limit is exhausted it degrades to plain
// wiped buffers rather than failing the allocation.
type lockingAllocator struct {
	logger logger.Logger

	mu     sync.Mutex
	pinned map[*byte][]byte
}

// NewLockingAllocator creates the "locking" allocator for non-swappable key
// material.
func NewLockingAllocator(logger logger.Logger) state.Allocator {
	return &lockingAllocator{logger: logger}
}

// Type returns the allocator type name.
func (a *lockingAllocator) Type() string {
	return config.AllocatorLocking
}

// Init prepares the bookkeeping table.
func (a *lockingAllocator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pinned = make(map[*byte][]byte)
	return nil
}

// Destroy unlocks and wipes every buffer still pinned.
func (a *lockingAllocator) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.pinned) != 0 {
		a.logger.Warn("locking allocator destroyed with ", len(a.pinned), " pinned buffers")
	}
	for _, buf := range a.pinned {
		SecureZero(buf)
		if err := unix.Munlock(buf); err != nil {
			a.logger.Error("munlock failed during teardown: ", err)
		}
	}
	a.pinned = nil
}

// Alloc returns a zeroed buffer of n bytes, pinned with mlock when the
// kernel permits it.
func (a *lockingAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("allocation size must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if err := unix.Mlock(buf); err != nil {
		// RLIMIT_MEMLOCK exhausted or denied; serve an unpinned buffer.
		a.logger.Warn("mlock failed, falling back to unpinned buffer: ", err)
		return buf, nil
	}

	a.mu.Lock()
	a.pinned[&buf[0]] = buf
	a.mu.Unlock()

	return buf, nil
}

// Free wipes a buffer and releases its mlock pin if one was taken.
func (a *lockingAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	SecureZero(buf)

	a.mu.Lock()
	_, wasPinned := a.pinned[&buf[0]]
	if wasPinned {
		delete(a.pinned, &buf[0])
	}
	a.mu.Unlock()

	if wasPinned {
		if err := unix.Munlock(buf); err != nil {
			a.logger.Error("munlock failed: ", err)
		}
	}
}
