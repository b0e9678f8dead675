package cryptography

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
)

// hmacMAC struct that implements the MAC interface
type hmacMAC struct {
	name  string
	newFn func() hash.Hash
}

// NewHMACSHA256 creates the HMAC(SHA-256) message authentication code.
func NewHMACSHA256() domaincrypto.MAC {
	return &hmacMAC{
		name:  domaincrypto.AlgorithmHMACSHA256,
		newFn: sha256.New,
	}
}

// NewHMACSHA512 creates the HMAC(SHA-512) message authentication code.
func NewHMACSHA512() domaincrypto.MAC {
	return &hmacMAC{
		name:  domaincrypto.AlgorithmHMACSHA512,
		newFn: sha512.New,
	}
}

// Name returns the canonical algorithm name.
func (m *hmacMAC) Name() string {
	return m.name
}

// Compute returns the authentication tag for message under key.
func (m *hmacMAC) Compute(message, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%s requires a non-empty key", m.name)
	}

	mac := hmac.New(m.newFn, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}

// Verify checks tag against message under key in constant time.
func (m *hmacMAC) Verify(message, tag, key []byte) (bool, error) {
	expected, err := m.Compute(message, key)
	if err != nil {
		return false, err
	}
	return hmac.Equal(expected, tag), nil
}
