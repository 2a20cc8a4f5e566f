package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const tempPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var errInvalidLength = errors.New("length must be positive")

// TempPassword generates a temporary password from an alphabet without
// lookalike characters. Selection goes through crypto/rand.Int so no
// alphabet position is favored.
func TempPassword(length int) (string, error) {
	if length <= 0 {
		return "", errInvalidLength
	}

	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	password := make([]byte, length)
	for index := range password {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		password[index] = tempPasswordAlphabet[position.Int64()]
	}

	return string(password), nil
}
