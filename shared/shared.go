package shared

import (
	"context"
	"math"
	"roombook/shared/cache"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	keys := make([]string, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		keys = append(keys, part)
	}

	return strings.Join(keys, cacheKeySeparator)
}

// InvalidateCaches deletes every key and returns the first failure.
// Remaining keys are still attempted after a failure.
func InvalidateCaches(ctx context.Context, store cache.Cache, keys ...string) error {
	var firstErr error

	for _, key := range keys {
		if err := store.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to invalidate cache")

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
