package server

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homecast/internal/domain"
)

func TestMemoryCache_SetGet(t *testing.T) {
	cache := NewMemoryCache(time.Hour)

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set("key", "value"))
	got, ok := cache.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	current := time.Now()
	cache.now = func() time.Time { return current }

	require.NoError(t, cache.Set("key", "value"))

	_, ok := cache.Get("key")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = cache.Get("key")
	assert.False(t, ok, "Entries past their TTL are misses")
}

func TestCacheKey_Deterministic(t *testing.T) {
	targetAge := 35
	input := &domain.AffordabilityInput{
		Location:          "Springfield, IL",
		CurrentAge:        30,
		TargetAge:         &targetAge,
		CurrentSavings:    decimal.NewFromInt(5000),
		DepositPercent:    decimal.RequireFromString("0.10"),
		MortgageTermYears: 30,
		CreditTier:        domain.CreditGood,
	}

	first, err := cacheKey(input)
	require.NoError(t, err)
	second, err := cacheKey(input)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other := *input
	other.CurrentAge = 31
	third, err := cacheKey(&other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third, "Different requests must not collide")
}
