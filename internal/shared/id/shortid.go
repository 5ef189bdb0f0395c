// Package id generates the entity identifiers. A client ID doubles as the
// portal access token, so every ID comes from crypto/rand.
package id

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	DefaultLength = 12

	// bytes at or above this bound would bias the modulo and are redrawn
	unbiasedLimit = 256 - 256%len(alphabet)
)

const (
	PrefixTicket = "tk"
	PrefixClient = "cl"
	PrefixMember = "tm"
)

// Generate returns length random base62 characters. A non-positive length
// means DefaultLength.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/4)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= unbiasedLimit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

// GenerateWithPrefix returns "<prefix>_<random>", e.g. "tk_xK9mP2vL3nQa".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	s, err := Generate(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}
