//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"crypto/rand"
	"testing"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAESGCMCipher(t *testing.T, keySize int) domaincrypto.SymmetricCipher {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	cipher, err := NewAESGCMCipher(keySize, log)
	require.NoError(t, err)
	return cipher
}

func randomKey(t *testing.T, size int) []byte {
	t.Helper()

	key := make([]byte, size)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestAESGCMCipher(t *testing.T) {
	cipher := setupAESGCMCipher(t, domaincrypto.AESKeySize256)

	t.Run("EncryptDecrypt", func(t *testing.T) {
		key := randomKey(t, domaincrypto.AESKeySize256)
		plainText := []byte("This is a test message.")

		ciphertext, err := cipher.Encrypt(plainText, key)
		assert.NoError(t, err)
		assert.Greater(t, len(ciphertext), len(plainText))

		decrypted, err := cipher.Decrypt(ciphertext, key)
		assert.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("EncryptionWithInvalidKey", func(t *testing.T) {
		_, err := cipher.Encrypt([]byte("This is a test."), []byte("shortkey"))
		assert.Error(t, err)
	})

	t.Run("DecryptWithWrongKey", func(t *testing.T) {
		key := randomKey(t, domaincrypto.AESKeySize256)
		ciphertext, err := cipher.Encrypt([]byte("Test decryption with wrong key."), key)
		require.NoError(t, err)

		wrongKey := randomKey(t, domaincrypto.AESKeySize256)
		_, err = cipher.Decrypt(ciphertext, wrongKey)
		assert.Error(t, err)
	})

	t.Run("TamperedCiphertextFailsAuthentication", func(t *testing.T) {
		key := randomKey(t, domaincrypto.AESKeySize256)
		ciphertext, err := cipher.Encrypt([]byte("integrity matters"), key)
		require.NoError(t, err)

		ciphertext[len(ciphertext)-1] ^= 0x01
		_, err = cipher.Decrypt(ciphertext, key)
		assert.Error(t, err)
	})

	t.Run("TruncatedCiphertextFails", func(t *testing.T) {
		key := randomKey(t, domaincrypto.AESKeySize256)
		_, err := cipher.Decrypt([]byte{0x01, 0x02}, key)
		assert.Error(t, err)
	})
}

func TestNewAESGCMCipher(t *testing.T) {
	t.Run("NamesFollowKeySize", func(t *testing.T) {
		tests := []struct {
			keySize int
			name    string
		}{
			{domaincrypto.AESKeySize128, domaincrypto.AlgorithmAES128GCM},
			{domaincrypto.AESKeySize192, domaincrypto.AlgorithmAES192GCM},
			{domaincrypto.AESKeySize256, domaincrypto.AlgorithmAES256GCM},
		}
		for _, tt := range tests {
			cipher := setupAESGCMCipher(t, tt.keySize)
			assert.Equal(t, tt.name, cipher.Name())
			assert.Equal(t, tt.keySize, cipher.KeySize())
		}
	})

	t.Run("UnsupportedKeySize", func(t *testing.T) {
		log := testutil.SetupTestLogger(t)
		_, err := NewAESGCMCipher(17, log)
		assert.Error(t, err)
	})
}

func TestAESGCMCipher_NoncesAreUnique(t *testing.T) {
	cipher := setupAESGCMCipher(t, domaincrypto.AESKeySize128)
	key := randomKey(t, domaincrypto.AESKeySize128)

	first, err := cipher.Encrypt([]byte("same message"), key)
	require.NoError(t, err)
	second, err := cipher.Encrypt([]byte("same message"), key)
	require.NoError(t, err)

	assert.False(t, bytes.Equal(first, second))
}
