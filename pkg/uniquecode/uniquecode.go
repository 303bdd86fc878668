package uniquecode

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ExistsFunc reports whether a candidate code is already taken.
type ExistsFunc func(code string) (bool, error)

// Generate samples codes of the given length uniformly from the 62-symbol
// alphabet until exists reports false for a candidate. There is no retry cap:
// for length 25 the keyspace is 62^25, so a collision forcing even one retry
// is already vanishingly rare against any realistic stored set.
func Generate(length int, exists ExistsFunc) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	max := big.NewInt(int64(len(alphabet)))

	for {
		var sb strings.Builder
		sb.Grow(length)

		for range length {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("failed to read random source: %w", err)
			}
			sb.WriteByte(alphabet[n.Int64()])
		}

		candidate := sb.String()

		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
