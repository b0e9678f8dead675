// Package cryptography implements the built-in cryptographic primitives
// served by the builtin engine.
package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// aesGCMCipher struct that implements the SymmetricCipher interface
type aesGCMCipher struct {
	name    string
	keySize int
	logger  logger.Logger
}

// NewAESGCMCipher creates an AES-GCM cipher for the given key size.
// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
func NewAESGCMCipher(keySize int, logger logger.Logger) (domaincrypto.SymmetricCipher, error) {
	var name string
	switch keySize {
	case domaincrypto.AESKeySize128:
		name = domaincrypto.AlgorithmAES128GCM
	case domaincrypto.AESKeySize192:
		name = domaincrypto.AlgorithmAES192GCM
	case domaincrypto.AESKeySize256:
		name = domaincrypto.AlgorithmAES256GCM
	default:
		return nil, fmt.Errorf("unsupported AES key size: %d", keySize)
	}

	return &aesGCMCipher{
		name:    name,
		keySize: keySize,
		logger:  logger,
	}, nil
}

// Name returns the canonical algorithm name.
func (c *aesGCMCipher) Name() string {
	return c.name
}

// KeySize returns the required key size in bytes.
func (c *aesGCMCipher) KeySize() int {
	return c.keySize
}

// Encrypt encrypts and authenticates plaintext with the provided key.
// The returned ciphertext has the random nonce prepended.
func (c *aesGCMCipher) Encrypt(plaintext, key []byte) ([]byte, error) {
	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt verifies and decrypts ciphertext produced by Encrypt.
func (c *aesGCMCipher) Decrypt(ciphertext, key []byte) ([]byte, error) {
	aead, err := c.newAEAD(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < aead.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short: %d bytes", len(ciphertext))
	}

	nonce, sealed := ciphertext[:aead.NonceSize()], ciphertext[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}

func (c *aesGCMCipher) newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != c.keySize {
		return nil, fmt.Errorf("%s requires a %d-byte key, got %d", c.name, c.keySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM mode: %w", err)
	}

	return aead, nil
}
