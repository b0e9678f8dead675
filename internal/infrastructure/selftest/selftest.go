// Package selftest implements the known-answer self-test suite run before
// the library is trusted for use under FIPS-mode operation.
package selftest

import (
	"bytes"
	"encoding/hex"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// Known-answer vectors. SHA-256 from FIPS 180-2 appendix B.1, HMAC from
// RFC 4231 test case 2.
const (
	sha256ABCDigest = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	hmacSHA256Key    = "Jefe"
	hmacSHA256Data   = "what do ya want for nothing?"
	hmacSHA256Digest = "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"
)

// runner struct that implements the SelfTestRunner interface
type runner struct {
	logger logger.Logger
}

// NewRunner creates the built-in self-test suite.
func NewRunner(logger logger.Logger) state.SelfTestRunner {
	return &runner{logger: logger}
}

// PassesSelfTests runs every known-answer test against resolver and reports
// whether all of them passed. Each failure is logged individually.
func (r *runner) PassesSelfTests(resolver state.AlgorithmResolver) bool {
	passed := true

	if !r.checkSHA256(resolver) {
		passed = false
	}
	if !r.checkHMACSHA256(resolver) {
		passed = false
	}
	if !r.checkAESGCM(resolver, domaincrypto.AlgorithmAES128GCM, domaincrypto.AESKeySize128) {
		passed = false
	}
	if !r.checkAESGCM(resolver, domaincrypto.AlgorithmAES256GCM, domaincrypto.AESKeySize256) {
		passed = false
	}

	if passed {
		r.logger.Info("all self-tests passed")
	}
	return passed
}

func (r *runner) checkSHA256(resolver state.AlgorithmResolver) bool {
	hash, err := resolver.HashFunction(domaincrypto.AlgorithmSHA256)
	if err != nil {
		r.logger.Error("self-test: SHA-256 unavailable: ", err)
		return false
	}

	digest := hash.Compute([]byte("abc"))
	if hex.EncodeToString(digest) != sha256ABCDigest {
		r.logger.Error("self-test: SHA-256 known-answer mismatch")
		return false
	}
	return true
}

func (r *runner) checkHMACSHA256(resolver state.AlgorithmResolver) bool {
	mac, err := resolver.MAC(domaincrypto.AlgorithmHMACSHA256)
	if err != nil {
		r.logger.Error("self-test: HMAC(SHA-256) unavailable: ", err)
		return false
	}

	tag, err := mac.Compute([]byte(hmacSHA256Data), []byte(hmacSHA256Key))
	if err != nil {
		r.logger.Error("self-test: HMAC(SHA-256) compute failed: ", err)
		return false
	}
	if hex.EncodeToString(tag) != hmacSHA256Digest {
		r.logger.Error("self-test: HMAC(SHA-256) known-answer mismatch")
		return false
	}
	return true
}

func (r *runner) checkAESGCM(resolver state.AlgorithmResolver, name string, keySize int) bool {
	cipher, err := resolver.SymmetricCipher(name)
	if err != nil {
		r.logger.Error("self-test: ", name, " unavailable: ", err)
		return false
	}

	key := bytes.Repeat([]byte{0x42}, keySize)
	plaintext := []byte("self test plaintext")

	ciphertext, err := cipher.Encrypt(plaintext, key)
	if err != nil {
		r.logger.Error("self-test: ", name, " encrypt failed: ", err)
		return false
	}

	recovered, err := cipher.Decrypt(ciphertext, key)
	if err != nil {
		r.logger.Error("self-test: ", name, " decrypt failed: ", err)
		return false
	}
	if !bytes.Equal(plaintext, recovered) {
		r.logger.Error("self-test: ", name, " round trip mismatch")
		return false
	}
	return true
}
