package bookingcode

import (
	"crypto/rand"
	"errors"
	"io"
)

// Length of a booking code as presented to users (e.g. "7KQ2RD").
const Length = 6

// Full A-Z0-9 set. Existing codes were issued from this alphabet, so
// 0/O and 1/I stay in.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// rejectAbove is the largest multiple of len(alphabet) that fits in a
// byte. Bytes at or above it are redrawn, keeping every character
// equally likely.
const rejectAbove = byte(7 * len(alphabet)) // 252

var ErrEntropyUnavailable = errors.New("booking code entropy unavailable")

// New returns a random human-presentable booking code.
func New() (string, error) {
	return generate(rand.Reader)
}

func generate(r io.Reader) (string, error) {
	code := make([]byte, 0, Length)
	buf := make([]byte, Length)
	for len(code) < Length {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", ErrEntropyUnavailable
		}
		for _, b := range buf {
			if b >= rejectAbove {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == Length {
				break
			}
		}
	}
	return string(code), nil
}

// IsValid reports whether s has the shape of a booking code.
func IsValid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
