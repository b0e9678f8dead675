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

func setupFactory(t *testing.T, store *ConfigStore) *AlgorithmFactory {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	return NewAlgorithmFactory(store.DerefAlias, log)
}

func TestAlgorithmFactory(t *testing.T) {
	t.Run("FirstAddedEngineWins", func(t *testing.T) {
		factory := setupFactory(t, NewConfigStore())

		e1 := &fakeEngine{name: "e1", hashes: map[string]domaincrypto.HashFunction{
			"X": &fakeHash{name: "X", tag: 1},
		}}
		e2 := &fakeEngine{name: "e2", hashes: map[string]domaincrypto.HashFunction{
			"X": &fakeHash{name: "X", tag: 2},
		}}
		factory.AddEngine(e1)
		factory.AddEngine(e2)

		hash, err := factory.HashFunction("X")
		require.NoError(t, err)
		assert.Equal(t, []byte{1}, hash.Compute(nil))
	})

	t.Run("LaterEngineActsAsFallback", func(t *testing.T) {
		factory := setupFactory(t, NewConfigStore())

		e1 := &fakeEngine{name: "e1", hashes: map[string]domaincrypto.HashFunction{}}
		e2 := &fakeEngine{name: "e2", hashes: map[string]domaincrypto.HashFunction{
			"Y": &fakeHash{name: "Y", tag: 2},
		}}
		factory.AddEngine(e1)
		factory.AddEngine(e2)

		hash, err := factory.HashFunction("Y")
		require.NoError(t, err)
		assert.Equal(t, []byte{2}, hash.Compute(nil))
	})

	t.Run("UnknownAlgorithmFails", func(t *testing.T) {
		factory := setupFactory(t, NewConfigStore())
		factory.AddEngine(&fakeEngine{name: "e1"})

		_, err := factory.HashFunction("no-such-algorithm")
		require.Error(t, err)
		assert.ErrorIs(t, err, state.ErrAlgorithmNotFound)
	})

	t.Run("AliasResolvesBeforeLookup", func(t *testing.T) {
		store := NewConfigStore()
		store.AddAlias("SHA2", "SHA-256")
		factory := setupFactory(t, store)

		factory.AddEngine(&fakeEngine{name: "e1", hashes: map[string]domaincrypto.HashFunction{
			"SHA-256": &fakeHash{name: "SHA-256", tag: 7},
		}})

		hash, err := factory.HashFunction("SHA2")
		require.NoError(t, err)
		assert.Equal(t, "SHA-256", hash.Name())
	})

	t.Run("EngineNamesInPriorityOrder", func(t *testing.T) {
		factory := setupFactory(t, NewConfigStore())
		factory.AddEngine(&fakeEngine{name: "first"})
		factory.AddEngine(&fakeEngine{name: "second"})

		assert.Equal(t, []string{"first", "second"}, factory.EngineNames())
	})
}
