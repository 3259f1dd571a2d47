package cachemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

type verdict struct {
	Compatible bool
	Reason     string
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, verdict]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	v := verdict{Compatible: false, Reason: "incompatible pair"}
	cache.Set(context.Background(), "fp|backend|express", v, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "fp|backend|express")
	require.True(t, ok)
	require.Equal(t, v, got)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "step", "frontend", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "step")
	require.True(t, ok)
	require.Equal(t, "frontend", got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("step", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "step")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Delete(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)

	require.NoError(t, cache.Delete(context.Background(), "a"))

	_, ok := cache.Get(context.Background(), "a")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "b")
	require.True(t, ok)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("option-cache", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "a", "1", DefaultExpiration)
	cache.Set(context.Background(), "b", "2", DefaultExpiration)
	require.Equal(t, 2, cache.Len())

	require.NoError(t, cache.Flush(context.Background()))
	require.Equal(t, 0, cache.Len())
}
