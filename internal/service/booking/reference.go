package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	DefaultReferencePrefix = "SX"
	referenceLength        = 6
	referenceAlphabet      = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var referencePattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{6}$`)

// ReferenceGenerator returns a fresh candidate booking reference. Uniqueness
// is enforced by the repository, not the generator.
type ReferenceGenerator func() (string, error)

// RandomReference builds references of the form <prefix> + 6 base-36 chars.
func RandomReference(prefix string) ReferenceGenerator {
	max := big.NewInt(int64(len(referenceAlphabet)))
	return func() (string, error) {
		buf := make([]byte, referenceLength)
		for i := range buf {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("generate booking reference: %w", err)
			}
			buf[i] = referenceAlphabet[n.Int64()]
		}
		return prefix + string(buf), nil
	}
}

func ValidReference(ref string) bool {
	return referencePattern.MatchString(ref)
}
