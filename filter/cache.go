package filter

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/user-none/softfilter/pixel"
)

// DefaultCacheSize is the instance count used by NewCache when size <= 0.
const DefaultCacheSize = 8

type cacheKey struct {
	id      string
	format  pixel.Format
	threads int
}

// Cache keeps recently used instances so a frame loop can switch filters
// without recreating them. Evicted and purged instances are destroyed.
// Instances returned by Get are shared and follow the usual rule of one
// rendering goroutine at a time.
type Cache struct {
	lru *lru.Cache[cacheKey, Instance]
}

// NewCache creates a cache holding up to size instances.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	l, err := lru.NewWithEvict(size, func(k cacheKey, in Instance) {
		Logger().Debug("filter evicted from cache", "filter", k.id, "format", k.format.String())
		in.Destroy()
	})
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns the instance of the named filter for format and thread count,
// creating it on first use.
func (c *Cache) Get(name string, format pixel.Format, threads int) (Instance, error) {
	d, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if threads < 1 {
		threads = 1
	}
	key := cacheKey{id: strings.ToLower(d.ID()), format: format, threads: threads}
	if in, ok := c.lru.Get(key); ok {
		return in, nil
	}

	in, err := d.Create(format, WithThreads(threads))
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, in)
	return in, nil
}

// Len returns the number of cached instances.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge destroys and drops every cached instance.
func (c *Cache) Purge() {
	c.lru.Purge()
}
