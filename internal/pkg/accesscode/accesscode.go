package accesscode

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// Alphabet for access codes: uppercase alphanumerics minus lookalikes (0/O, 1/I/L),
// since clients type these by hand.
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// Alphabet for machine-generated id suffixes (62 chars: 0-9, a-z, A-Z).
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLength is the standard business access code length.
const CodeLength = 8

// Generate creates a cryptographically secure random access code.
func Generate() (string, error) {
	return randomString(codeAlphabet, CodeLength)
}

// TimestampedID returns a `<unix-ms>-<suffix>` identifier with a random suffix of the
// given length. Sortable by creation time, unique enough under a DB unique index.
func TimestampedID(suffixLen int) string {
	suffix, err := randomString(idAlphabet, suffixLen)
	if err != nil {
		// crypto/rand failing is unrecoverable for id generation anyway
		panic(err)
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// Normalize maps user input onto the stored code form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func randomString(alphabet string, length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length: %d", length)
	}

	// Rejection sampling to avoid modulo bias: discard bytes at or above the largest
	// multiple of the alphabet size below 256.
	maxRandomByte := byte(256 - (256 % len(alphabet)))

	out := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			out[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(out), nil
}
