package persist

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("persist: key not found")

// Store is the device-local key-value persistence used by the cart and
// wishlist stores. Values are opaque JSON blobs owned by the caller.
//
//go:generate mockgen -source=store.go -destination=../../mock/persist/store_mock.go -package=mock
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
