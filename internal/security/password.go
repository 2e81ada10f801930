package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Ambiguous glyphs (0/O, 1/l/I) are left out because temporary passwords are
// read over the phone or copied from a printout.
const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

var errNonPositiveLength = errors.New("length must be positive")

// TempPassword returns a cryptographically secure one-time password of the
// requested length. Selection is unbiased: each character is drawn with
// rand.Int over the alphabet size rather than a modulo.
func TempPassword(length int) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}

	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = tempPasswordAlphabet[position.Int64()]
	}

	return string(value), nil
}
