package port

import "context"

// KeyChange reports that a key was written or deleted, by this process or
// by another one sharing the store.
type KeyChange struct {
	Key     string
	Deleted bool
}

// KeyValueStore is a flat durable namespace of JSON-encoded values.
// A Get issued after a Set in the same process observes the Set.
type KeyValueStore interface {
	// Get returns the raw value of key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set replaces the whole value of key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Watch streams changes until ctx is done, then closes the channel.
	Watch(ctx context.Context) (<-chan KeyChange, error)

	Close() error
}
