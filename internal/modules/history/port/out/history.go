package out

import "context"

// KVStore is a string key-value store. Get reports ok=false for absent keys.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
