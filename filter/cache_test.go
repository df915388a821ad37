package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user-none/softfilter/pixel"
)

func isDestroyed(t *testing.T, in Instance) bool {
	t.Helper()
	ki, ok := in.(*kernelInstance)
	require.True(t, ok, "unexpected instance type %T", in)
	return ki.destroyed
}

func TestCache_ReusesInstances(t *testing.T) {
	c, err := NewCache(4)
	require.NoError(t, err)
	defer c.Purge()

	a, err := c.Get("supereagle", pixel.FormatXRGB8888, 1)
	require.NoError(t, err)
	b, err := c.Get("SuperEagle", pixel.FormatXRGB8888, 0)
	require.NoError(t, err)
	assert.Same(t, a, b)

	other, err := c.Get("supereagle", pixel.FormatRGB565, 1)
	require.NoError(t, err)
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, c.Len())
}

func TestCache_EvictionDestroys(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	first, err := c.Get("super2xsai", pixel.FormatRGB565, 1)
	require.NoError(t, err)
	second, err := c.Get("supereagle", pixel.FormatRGB565, 1)
	require.NoError(t, err)
	third, err := c.Get("scale2x", pixel.FormatRGB565, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.True(t, isDestroyed(t, first))
	assert.False(t, isDestroyed(t, second))
	assert.False(t, isDestroyed(t, third))

	c.Purge()
	assert.Equal(t, 0, c.Len())
	assert.True(t, isDestroyed(t, second))
	assert.True(t, isDestroyed(t, third))
}

func TestCache_Errors(t *testing.T) {
	c, err := NewCache(0)
	require.NoError(t, err)

	_, err = c.Get("nope", pixel.FormatRGB565, 1)
	assert.ErrorIs(t, err, ErrUnknownFilter)

	_, err = c.Get("supereagle", pixel.FormatNone, 1)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, c.Len())
}
