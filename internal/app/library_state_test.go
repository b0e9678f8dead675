//go:build unit
// +build unit

package app

import (
	"testing"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLibraryState(t *testing.T) *LibraryState {
	t.Helper()

	return NewLibraryState(testutil.SetupTestLogger(t))
}

func TestLibraryState_Initialize(t *testing.T) {
	t.Run("RegistersAllocatorsAndEngines", func(t *testing.T) {
		libState := setupLibraryState(t)

		malloc := &fakeAllocator{typeName: "malloc"}
		mods := newFakeModules()
		mods.allocators = []state.Allocator{malloc}
		mods.defaultAllocator = "malloc"
		mods.engines = []state.Engine{&fakeEngine{name: "builtin"}}

		require.NoError(t, libState.Initialize(state.InitializerOptions{ThreadSafe: true}, mods))

		assert.Equal(t, 1, malloc.initCalls)
		assert.Same(t, malloc, libState.GetAllocator(""))

		factory, err := libState.AlgoFactory()
		require.NoError(t, err)
		assert.Equal(t, []string{"builtin"}, factory.EngineNames())
	})

	t.Run("DoubleInitializeFails", func(t *testing.T) {
		libState := setupLibraryState(t)

		mods := newFakeModules()
		mods.engines = []state.Engine{&fakeEngine{name: "builtin"}}
		require.NoError(t, libState.Initialize(state.InitializerOptions{}, mods))

		second := newFakeModules()
		second.engines = []state.Engine{&fakeEngine{name: "intruder"}}
		err := libState.Initialize(state.InitializerOptions{}, second)
		require.Error(t, err)
		assert.ErrorIs(t, err, state.ErrAlreadyInitialized)

		// The first initialization's engine set is untouched.
		factory, err := libState.AlgoFactory()
		require.NoError(t, err)
		assert.Equal(t, []string{"builtin"}, factory.EngineNames())
	})

	t.Run("MissingMutexFactoryFails", func(t *testing.T) {
		libState := setupLibraryState(t)

		mods := newFakeModules()
		mods.mutexFactory = nil

		err := libState.Initialize(state.InitializerOptions{ThreadSafe: true}, mods)
		require.Error(t, err)
		assert.ErrorIs(t, err, state.ErrNoMutexFactory)
	})

	t.Run("AllocatorInitFailureAborts", func(t *testing.T) {
		libState := setupLibraryState(t)

		mods := newFakeModules()
		mods.allocators = []state.Allocator{
			&fakeAllocator{typeName: "broken", initErr: assert.AnError},
		}

		err := libState.Initialize(state.InitializerOptions{}, mods)
		require.Error(t, err)

		_, err = libState.AlgoFactory()
		assert.ErrorIs(t, err, state.ErrUninitialized)
	})

	t.Run("PreInitializeSetSurvivesDefaultLoad", func(t *testing.T) {
		libState := setupLibraryState(t)
		libState.SetOption("base/default_allocator", "locking")

		locking := &fakeAllocator{typeName: "locking"}
		mods := newFakeModules()
		mods.allocators = []state.Allocator{
			&fakeAllocator{typeName: "malloc"},
			locking,
		}

		require.NoError(t, libState.Initialize(state.InitializerOptions{}, mods))

		assert.Equal(t, "locking", libState.Option("base/default_allocator"))
		assert.Same(t, locking, libState.GetAllocator(""))
	})

	t.Run("DefaultAliasesAreLoaded", func(t *testing.T) {
		libState := setupLibraryState(t)
		require.NoError(t, libState.Initialize(state.InitializerOptions{}, newFakeModules()))

		name, err := libState.DerefAlias("AES")
		require.NoError(t, err)
		assert.Equal(t, domaincrypto.AlgorithmAES256GCM, name)
	})
}

func TestLibraryState_SelfTestGate(t *testing.T) {
	t.Run("FipsModeRunsSuite", func(t *testing.T) {
		libState := setupLibraryState(t)

		suite := &fakeSelfTest{pass: true}
		mods := newFakeModules()
		mods.selfTests = suite

		require.NoError(t, libState.Initialize(state.InitializerOptions{FipsMode: true}, mods))
		assert.Equal(t, 1, suite.calls)
	})

	t.Run("SuiteSkippedWithoutRequest", func(t *testing.T) {
		libState := setupLibraryState(t)

		suite := &fakeSelfTest{pass: false}
		mods := newFakeModules()
		mods.selfTests = suite

		require.NoError(t, libState.Initialize(state.InitializerOptions{}, mods))
		assert.Equal(t, 0, suite.calls)
	})

	t.Run("FailingSuiteAbortsInitialization", func(t *testing.T) {
		libState := setupLibraryState(t)

		mods := newFakeModules()
		mods.selfTests = &fakeSelfTest{pass: false}

		err := libState.Initialize(state.InitializerOptions{SelfTest: true}, mods)
		require.Error(t, err)
		assert.ErrorIs(t, err, state.ErrSelfTestFailed)

		// Unusable but must not crash.
		_, err = libState.AlgoFactory()
		assert.ErrorIs(t, err, state.ErrUninitialized)
		assert.Equal(t, "", libState.Get("base", "anything"))
		libState.Close()
	})

	t.Run("MissingSuiteSkipsGate", func(t *testing.T) {
		libState := setupLibraryState(t)

		mods := newFakeModules()
		mods.selfTests = nil

		require.NoError(t, libState.Initialize(state.InitializerOptions{FipsMode: true}, mods))
	})
}

func TestLibraryState_Close(t *testing.T) {
	t.Run("TeardownDestroysEachProviderOnce", func(t *testing.T) {
		libState := setupLibraryState(t)

		providers := []*fakeAllocator{
			{typeName: "malloc"},
			{typeName: "locking"},
			{typeName: "mmap"},
		}
		mods := newFakeModules()
		for _, p := range providers {
			mods.allocators = append(mods.allocators, p)
		}

		require.NoError(t, libState.Initialize(state.InitializerOptions{}, mods))

		libState.Close()
		libState.Close()

		for _, p := range providers {
			assert.Equal(t, 1, p.destroyCalls, "provider %s", p.typeName)
		}

		_, err := libState.AlgoFactory()
		assert.ErrorIs(t, err, state.ErrUninitialized)
	})
}

func TestLibraryState_AlgoFactoryBeforeInitialize(t *testing.T) {
	libState := setupLibraryState(t)

	_, err := libState.AlgoFactory()
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrUninitialized)
}
