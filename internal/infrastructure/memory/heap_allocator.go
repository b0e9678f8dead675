package memory

import (
	"fmt"
	"sync/atomic"

	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/config"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// heapAllocator hands out ordinary heap buffers and wipes them on free.
type heapAllocator struct {
	logger      logger.Logger
	outstanding atomic.Int64
}

// NewHeapAllocator creates the "malloc" allocator, the built-in default.
func NewHeapAllocator(logger logger.Logger) state.Allocator {
	return &heapAllocator{logger: logger}
}

// Type returns the allocator type name.
func (a *heapAllocator) Type() string {
	return config.AllocatorMalloc
}

// Init prepares the allocator for use.
func (a *heapAllocator) Init() error {
	return nil
}

// Destroy releases the allocator. Outstanding buffers are reported but not
// reclaimed; their owners still hold them.
func (a *heapAllocator) Destroy() {
	if n := a.outstanding.Load(); n != 0 {
		a.logger.Warn("heap allocator destroyed with ", n, " outstanding buffers")
	}
}

// Alloc returns a zeroed buffer of n bytes.
func (a *heapAllocator) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("allocation size must be positive, got %d", n)
	}
	a.outstanding.Add(1)
	return make([]byte, n), nil
}

// Free wipes a buffer obtained from Alloc.
func (a *heapAllocator) Free(buf []byte) {
	if buf == nil {
		return
	}
	SecureZero(buf)
	a.outstanding.Add(-1)
}
