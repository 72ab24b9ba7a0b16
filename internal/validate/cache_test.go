package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"architect/internal/artifact"
	"architect/internal/designsys"
)

func TestCache_ReturnsSameVerdictAsDirectValidate(t *testing.T) {
	reg, err := designsys.NewRegistry([]designsys.Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#6366f1"}},
	})
	require.NoError(t, err)

	cache, err := NewCache(8)
	require.NoError(t, err)

	a := artifact.FromRaw([]byte(`{"markup": "<div>", "style": "", "behavior": ""}`))
	direct := Validate(a, reg)
	first := cache.Validate(a, reg)
	second := cache.Validate(a, reg)

	require.Equal(t, direct, first)
	require.Equal(t, first, second)
}

func TestCache_DistinguishesRegistries(t *testing.T) {
	regA, err := designsys.NewRegistry([]designsys.Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#6366f1"}},
	})
	require.NoError(t, err)
	regB, err := designsys.NewRegistry([]designsys.Token{
		{Name: "primary-color", Mandatory: true, MatchPatterns: []string{"#000000"}},
	})
	require.NoError(t, err)

	cache, err := NewCache(8)
	require.NoError(t, err)

	a := artifact.FromRaw([]byte(`{"markup": "<div></div>", "style": ".x { color: #6366f1; }", "behavior": ""}`))
	require.True(t, cache.Validate(a, regA).Pass())
	require.False(t, cache.Validate(a, regB).Pass())
}

func TestCache_NilCacheFallsBackToDirect(t *testing.T) {
	reg, err := designsys.NewRegistry(nil)
	require.NoError(t, err)
	var c *Cache
	a := artifact.FromRaw([]byte(`{"markup": "", "style": "", "behavior": ""}`))
	require.True(t, c.Validate(a, reg).Pass())
}
