package cryptography

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
)

// sha2Hash struct that implements the HashFunction interface
type sha2Hash struct {
	name  string
	size  int
	newFn func() hash.Hash
}

// NewSHA256Hash creates the SHA-256 hash function.
func NewSHA256Hash() domaincrypto.HashFunction {
	return &sha2Hash{
		name:  domaincrypto.AlgorithmSHA256,
		size:  sha256.Size,
		newFn: sha256.New,
	}
}

// NewSHA512Hash creates the SHA-512 hash function.
func NewSHA512Hash() domaincrypto.HashFunction {
	return &sha2Hash{
		name:  domaincrypto.AlgorithmSHA512,
		size:  sha512.Size,
		newFn: sha512.New,
	}
}

// Name returns the canonical algorithm name.
func (h *sha2Hash) Name() string {
	return h.name
}

// Size returns the digest size in bytes.
func (h *sha2Hash) Size() int {
	return h.size
}

// Compute returns the digest of data.
func (h *sha2Hash) Compute(data []byte) []byte {
	digest := h.newFn()
	digest.Write(data)
	return digest.Sum(nil)
}
