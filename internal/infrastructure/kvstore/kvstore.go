// Package kvstore provides string key-value stores the entity state is
// mirrored into. Every backend writes a batch of entries all-or-nothing
// where the backend allows it.
package kvstore

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("kvstore: store is closed")

type Entry struct {
	Key   string
	Value string
}

type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all entries as one batch.
	SetMany(ctx context.Context, entries []Entry) error
	Close() error
}
