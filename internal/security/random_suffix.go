package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// RandomSuffix returns a cryptographically secure, unbiased lowercase
// alphanumeric string. Used to de-collide usernames generated from OAuth
// profiles.
func RandomSuffix(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(suffixAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = suffixAlphabet[position.Int64()]
	}

	return string(value), nil
}
