package common

import "errors"

var (
	// ErrorNotFound is returned when a requested record is absent from local state.
	ErrorNotFound = errors.New("not found")

	// ErrInvalidToken marks a credential that is empty or cannot be decoded.
	ErrInvalidToken = errors.New("invalid token")
)

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords read from the terminal as soon as they are no longer needed.
// A nil slice is ignored.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
