package repository

import "context"

// CacheRepository is a string key/value store used to memoize results and
// hold calculation history.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
