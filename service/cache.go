package service

import (
	"context"
	"encoding/json"
	"log"

	"toolbox-api/repository"
)

// memoize returns the cached value under key, or computes and stores it.
// Cache failures never fail the computation.
func memoize[T any](
	ctx context.Context,
	cache repository.CacheRepository,
	key string,
	compute func() (T, error),
) (T, error) {
	if cache != nil {
		if raw, ok := cache.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal([]byte(raw), &v); err == nil {
				return v, nil
			}
			log.Printf("Warning: discarding unreadable cache entry %q", key)
		}
	}

	v, err := compute()
	if err != nil {
		return v, err
	}

	if cache != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			log.Printf("Warning: failed to encode cache entry %q: %v", key, err)
			return v, nil
		}
		if err := cache.Set(ctx, key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache %q: %v", key, err)
		}
	}
	return v, nil
}
