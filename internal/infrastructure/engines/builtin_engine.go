// Package engines provides the engines bundled by the default module
// descriptor.
package engines

import (
	"fmt"

	domaincrypto "github.com/cdesjardins/botan/internal/domain/crypto"
	"github.com/cdesjardins/botan/internal/domain/state"
	"github.com/cdesjardins/botan/internal/infrastructure/cryptography"
	"github.com/cdesjardins/botan/internal/pkg/logger"
)

// builtinEngine serves the software implementations shipped with the
// library, keyed by canonical algorithm name.
type builtinEngine struct {
	logger  logger.Logger
	ciphers map[string]domaincrypto.SymmetricCipher
	hashes  map[string]domaincrypto.HashFunction
	macs    map[string]domaincrypto.MAC
}

// NewBuiltinEngine creates the built-in software engine.
func NewBuiltinEngine(logger logger.Logger) (state.Engine, error) {
	e := &builtinEngine{
		logger:  logger,
		ciphers: make(map[string]domaincrypto.SymmetricCipher),
		hashes:  make(map[string]domaincrypto.HashFunction),
		macs:    make(map[string]domaincrypto.MAC),
	}

	for _, keySize := range []int{
		domaincrypto.AESKeySize128,
		domaincrypto.AESKeySize192,
		domaincrypto.AESKeySize256,
	} {
		cipher, err := cryptography.NewAESGCMCipher(keySize, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create AES-GCM cipher: %w", err)
		}
		e.ciphers[cipher.Name()] = cipher
	}

	for _, hash := range []domaincrypto.HashFunction{
		cryptography.NewSHA256Hash(),
		cryptography.NewSHA512Hash(),
	} {
		e.hashes[hash.Name()] = hash
	}

	for _, mac := range []domaincrypto.MAC{
		cryptography.NewHMACSHA256(),
		cryptography.NewHMACSHA512(),
	} {
		e.macs[mac.Name()] = mac
	}

	return e, nil
}

// Name identifies the engine.
func (e *builtinEngine) Name() string {
	return "builtin"
}

// SymmetricCipher looks up a symmetric cipher by canonical name.
func (e *builtinEngine) SymmetricCipher(name string) (domaincrypto.SymmetricCipher, bool) {
	cipher, ok := e.ciphers[name]
	return cipher, ok
}

// HashFunction looks up a hash function by canonical name.
func (e *builtinEngine) HashFunction(name string) (domaincrypto.HashFunction, bool) {
	hash, ok := e.hashes[name]
	return hash, ok
}

// MAC looks up a message authentication code by canonical name.
func (e *builtinEngine) MAC(name string) (domaincrypto.MAC, bool) {
	mac, ok := e.macs[name]
	return mac, ok
}
