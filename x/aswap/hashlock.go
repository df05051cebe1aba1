package aswap

import (
	"bytes"
	"crypto/sha256"

	"github.com/iov-one/pswap/errors"
)

// KeyLength is the size of a swap key, a sha256 hash.
const KeyLength = sha256.Size

// HashBytes returns the swap key that given secret unlocks.
func HashBytes(secret []byte) []byte {
	hash := sha256.Sum256(secret)
	return hash[:]
}

// VerifySecret returns ErrHashMismatch unless the secret hashes to the key.
func VerifySecret(key, secret []byte) error {
	if !bytes.Equal(HashBytes(secret), key) {
		return errors.Wrap(errors.ErrHashMismatch, "secret does not match the swap key")
	}
	return nil
}

// ValidateKey ensures given value can be a swap key.
func ValidateKey(key []byte) error {
	if len(key) != KeyLength {
		return errors.Wrapf(errors.ErrInput, "swap key must be exactly %d bytes, got %d", KeyLength, len(key))
	}
	return nil
}

func validateSecret(secret []byte, maxLength int32) error {
	if len(secret) == 0 {
		return errors.Wrap(errors.ErrEmpty, "secret")
	}
	if len(secret) > int(maxLength) {
		return errors.Wrapf(errors.ErrInput, "secret longer than %d bytes", maxLength)
	}
	return nil
}
