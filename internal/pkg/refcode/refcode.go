// Package refcode mints short referral codes handed to users at
// registration.
package refcode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet without easily confused characters (0/O, 1/I/L).
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeLength = 8

// Generate returns a code like "SS-K7M2Q9XW". Uniqueness is enforced by the
// database constraint; callers retry on conflict.
func Generate() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, b := range buf {
		sb.WriteByte(alphabet[int(b)%len(alphabet)])
	}

	return fmt.Sprintf("SS-%s", sb.String()), nil
}
