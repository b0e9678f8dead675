package crypto

// Canonical algorithm names understood by the built-in engine. Aliases such
// as "AES" or "SHA2" resolve to one of these through the configuration
// alias table.
const (
	AlgorithmAES128GCM  = "AES-128/GCM"
	AlgorithmAES192GCM  = "AES-192/GCM"
	AlgorithmAES256GCM  = "AES-256/GCM"
	AlgorithmSHA256     = "SHA-256"
	AlgorithmSHA512     = "SHA-512"
	AlgorithmHMACSHA256 = "HMAC(SHA-256)"
	AlgorithmHMACSHA512 = "HMAC(SHA-512)"
)

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32
