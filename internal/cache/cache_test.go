package cache_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/healthtracker/internal/cache"
)

func TestNewResponseCache(t *testing.T) {
	c, err := cache.NewResponseCache(0, time.Minute)
	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = cache.NewResponseCache(1, 0)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, int64(0), c.EntryCount())
}

func TestResponseCache_GetSetClear(t *testing.T) {
	c, err := cache.NewResponseCache(1, time.Minute)
	require.NoError(t, err)

	_, found := c.Get("dashboard::s1::1")
	assert.False(t, found)

	payload := []byte(`{"weight":{"title":"Weight Progress"}}`)
	require.NoError(t, c.Set("dashboard::s1::1", payload))

	got, found := c.Get("dashboard::s1::1")
	require.True(t, found)
	assert.Equal(t, payload, got)
	assert.Equal(t, int64(1), c.EntryCount())

	// other sessions do not see the entry
	_, found = c.Get("dashboard::s2::1")
	assert.False(t, found)

	c.Clear()
	_, found = c.Get("dashboard::s1::1")
	assert.False(t, found)
	assert.Equal(t, int64(0), c.EntryCount())
}

func TestResponseCache_SetTooLarge(t *testing.T) {
	c, err := cache.NewResponseCache(1, time.Minute)
	require.NoError(t, err)

	// an entry larger than 1/1024 of the cache does not fit
	huge := bytes.Repeat([]byte("x"), 2*1024)
	err = c.Set("huge", huge)
	assert.ErrorIs(t, err, cache.ErrEntryTooLarge)
	assert.Equal(t, int64(0), c.EntryCount())
}
