//go:build unit
// +build unit

package app

import (
	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/infrastructure/platform"
)

// fakeAllocator counts its lifecycle calls.
type fakeAllocator struct {
	typeName     string
	initCalls    int
	destroyCalls int
	initErr      error
}

func (f *fakeAllocator) Type() string { return f.typeName }

func (f *fakeAllocator) Init() error {
	f.initCalls++
	return f.initErr
}

func (f *fakeAllocator) Destroy() {
	f.destroyCalls++
}

func (f *fakeAllocator) Alloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func (f *fakeAllocator) Free([]byte) {}

// fakeHash is distinguishable by the single tag byte it emits.
type fakeHash struct {
	name string
	tag  byte
}

func (f *fakeHash) Name() string { return f.name }

func (f *fakeHash) Size() int { return 1 }

func (f *fakeHash) Compute([]byte) []byte { return []byte{f.tag} }

// fakeEngine serves pre-registered primitives by name.
type fakeEngine struct {
	name   string
	hashes map[string]domaincrypto.HashFunction
}

func (f *fakeEngine) Name() string { return f.name }

func (f *fakeEngine) SymmetricCipher(string) (domaincrypto.SymmetricCipher, bool) {
	return nil, false
}

func (f *fakeEngine) HashFunction(name string) (domaincrypto.HashFunction, bool) {
	hash, ok := f.hashes[name]
	return hash, ok
}

func (f *fakeEngine) MAC(string) (domaincrypto.MAC, bool) {
	return nil, false
}

// fakeSelfTest reports a fixed verdict and counts invocations.
type fakeSelfTest struct {
	pass  bool
	calls int
}

func (f *fakeSelfTest) PassesSelfTests(state.AlgorithmResolver) bool {
	f.calls++
	return f.pass
}

// fakeModules is a configurable module descriptor.
type fakeModules struct {
	mutexFactory     state.MutexFactory
	allocators       []state.Allocator
	defaultAllocator string
	engines          []state.Engine
	selfTests        state.SelfTestRunner
}

func newFakeModules() *fakeModules {
	return &fakeModules{
		mutexFactory: platform.NewSyncMutexFactory(),
	}
}

func (f *fakeModules) MutexFactory(bool) state.MutexFactory { return f.mutexFactory }

func (f *fakeModules) Allocators() []state.Allocator { return f.allocators }

func (f *fakeModules) DefaultAllocator() string { return f.defaultAllocator }

func (f *fakeModules) Engines() []state.Engine { return f.engines }

func (f *fakeModules) SelfTests() state.SelfTestRunner { return f.selfTests }
