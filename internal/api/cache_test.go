// internal/api/cache_test.go
package api

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopmatch/internal/common/config"
	"hoopmatch/internal/common/database"
	"hoopmatch/internal/common/logger"
	"hoopmatch/internal/models"
)

func newTestCache(t *testing.T) (*ResultsCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { rdb.Close() })

	cache := NewResultsCache(config.CacheConfig{
		Enabled: true,
		TTL:     60,
		Prefix:  "hoopmatch:match:",
	}, rdb, logger.NewNoOpLogger())
	require.NotNil(t, cache)
	return cache, mr
}

func TestResultsCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	payload := sourcesRequest{Teams: []string{"Liverpool", "Dallas Cowboys"}}
	key := cache.Key("sources", payload)
	require.NotEmpty(t, key)

	stored := matchResponse{Results: []models.MatchResult{
		{Name: "Boston Celtics", MatchPercent: 95, Reasons: []string{"High watchability"}},
	}}
	cache.Set(ctx, key, stored)

	var loaded matchResponse
	require.True(t, cache.Get(ctx, key, &loaded))
	assert.Equal(t, stored, loaded)
}

func TestResultsCacheKeyIsDeterministic(t *testing.T) {
	cache, _ := newTestCache(t)

	a := cache.Key("sources", sourcesRequest{Teams: []string{"Liverpool"}})
	b := cache.Key("sources", sourcesRequest{Teams: []string{"Liverpool"}})
	c := cache.Key("sources", sourcesRequest{Teams: []string{"Arsenal"}})
	d := cache.Key("quiz", sourcesRequest{Teams: []string{"Liverpool"}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
}

func TestResultsCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	var out matchResponse
	assert.False(t, cache.Get(context.Background(), "hoopmatch:match:absent", &out))
}

func TestResultsCacheTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	key := cache.Key("sources", sourcesRequest{Teams: []string{"Liverpool"}})
	cache.Set(ctx, key, matchResponse{})

	mr.FastForward(61 * time.Second)

	var out matchResponse
	assert.False(t, cache.Get(ctx, key, &out))
}

func TestNilCacheIsSafe(t *testing.T) {
	var cache *ResultsCache

	assert.Empty(t, cache.Key("sources", sourcesRequest{}))
	assert.False(t, cache.Get(context.Background(), "k", &matchResponse{}))
	cache.Set(context.Background(), "k", matchResponse{}) // must not panic

	assert.Nil(t, NewResultsCache(config.CacheConfig{Enabled: false}, nil, logger.NewNoOpLogger()))
}
