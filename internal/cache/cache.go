package cache

import (
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

const (
	minSizeMB        = 1
	DefaultExpiresIn = 10 * time.Minute
)

// ErrEntryTooLarge is returned by Set for values above 1/1024 of the cache size.
var ErrEntryTooLarge = freecache.ErrLargeEntry

// ResponseCache keeps rendered response payloads in a fixed size, GC-free cache.
type ResponseCache struct {
	cache     *freecache.Cache
	expiresIn time.Duration
}

func NewResponseCache(sizeMB int, expiresIn time.Duration) (*ResponseCache, error) {
	if sizeMB < minSizeMB {
		return nil, fmt.Errorf("response cache size must be at least %d MB, got %d", minSizeMB, sizeMB)
	}
	if expiresIn <= 0 {
		expiresIn = DefaultExpiresIn
	}

	return &ResponseCache{
		cache:     freecache.NewCache(sizeMB * 1024 * 1024),
		expiresIn: expiresIn,
	}, nil
}

func (rc *ResponseCache) Get(key string) ([]byte, bool) {
	value, err := rc.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return value, true
}

func (rc *ResponseCache) Set(key string, value []byte) error {
	if err := rc.cache.Set([]byte(key), value, int(rc.expiresIn.Seconds())); err != nil {
		return fmt.Errorf("cache set [%s]: %w", key, err)
	}
	return nil
}

func (rc *ResponseCache) Clear() {
	rc.cache.Clear()
}

func (rc *ResponseCache) EntryCount() int64 {
	return rc.cache.EntryCount()
}
