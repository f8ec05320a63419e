// Package token generates opaque identifiers and short random codes.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/google/uuid"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// New returns a random 32 character lowercase hex identifier.
func New() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Code returns n random characters from [A-Z0-9].
func Code(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
