package entry

import (
	"context"
	"strconv"
	"time"

	"github.com/ethanbaker/lineramind/pkg/entry"
	gocache "github.com/patrickmn/go-cache"
)

// CachedReader keeps recently read entries in memory. Entries are immutable
// once created, so a cached entry never goes stale. Misses and failures are
// not cached, since a missing id may be created later.
type CachedReader struct {
	reader entry.Reader
	cache  *gocache.Cache
}

// NewCachedReader wraps reader with a cache holding entries for ttl
func NewCachedReader(reader entry.Reader, ttl time.Duration) *CachedReader {
	return &CachedReader{
		reader: reader,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// GetEntry reads an entry, serving repeated reads from memory
func (c *CachedReader) GetEntry(ctx context.Context, id int64) (*entry.Entry, error) {
	key := strconv.FormatInt(id, 10)
	if val, found := c.cache.Get(key); found {
		return val.(*entry.Entry).Clone(), nil
	}

	e, err := c.reader.GetEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(key, e.Clone())
	return e, nil
}

// Len returns the number of cached entries
func (c *CachedReader) Len() int {
	return c.cache.ItemCount()
}
