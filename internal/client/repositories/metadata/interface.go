// Package metadata is the persistent key/value store of the client. It holds
// the session credential and a few bits of session context, and survives
// restarts the way browser local storage would.
package metadata

import (
	"context"
)

// Repository stores opaque byte values under string keys. The table holds
// one session at a time: List reads it whole and Clear ends it.
type Repository interface {
	Set(ctx context.Context, key string, value []byte) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
