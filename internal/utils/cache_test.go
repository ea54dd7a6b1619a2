package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsAlwaysAMiss(t *testing.T) {
	ctx := context.Background()
	for _, c := range []*Cache{nil, NewCache(nil)} {
		assert.False(t, c.Enabled())
		require.NoError(t, c.Set(ctx, SummaryCacheKey, map[string]int{"count": 1}, SummaryCacheTTL))

		var dest map[string]int
		found, err := c.Get(ctx, SummaryCacheKey, &dest)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, dest)

		assert.NoError(t, c.Delete(ctx, SummaryCacheKey))
	}
}
