package crypto

// SymmetricCipher provides authenticated symmetric encryption with a
// caller-supplied key.
type SymmetricCipher interface {
	// Name returns the canonical algorithm name (e.g. "AES-256/GCM").
	Name() string

	// KeySize returns the required key size in bytes.
	KeySize() int

	// Encrypt encrypts and authenticates plaintext with the provided key.
	// Returns the ciphertext (nonce prepended) or an error if encryption fails.
	Encrypt(plaintext, key []byte) ([]byte, error)

	// Decrypt verifies and decrypts ciphertext produced by Encrypt.
	// Returns the original plaintext or an error if authentication fails.
	Decrypt(ciphertext, key []byte) ([]byte, error)
}

// HashFunction computes a fixed-size digest over arbitrary input.
type HashFunction interface {
	// Name returns the canonical algorithm name (e.g. "SHA-256").
	Name() string

	// Size returns the digest size in bytes.
	Size() int

	// Compute returns the digest of data.
	Compute(data []byte) []byte
}

// MAC computes and verifies keyed message authentication codes.
type MAC interface {
	// Name returns the canonical algorithm name (e.g. "HMAC(SHA-256)").
	Name() string

	// Compute returns the authentication tag for message under key.
	Compute(message, key []byte) ([]byte, error)

	// Verify checks tag against message under key in constant time.
	Verify(message, tag, key []byte) (bool, error)
}
