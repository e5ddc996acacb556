package texture

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// Cache configuration constants.
const (
	// cacheShardCount is the number of shards for reduced lock contention.
	// Must be a power of 2 for fast modulo via bitwise AND.
	cacheShardCount = 8

	// cacheShardMask is used for fast shard selection.
	cacheShardMask = cacheShardCount - 1

	// DefaultCacheBudget is the default byte budget per shard.
	DefaultCacheBudget = 8 << 20 // 8 MiB
)

// Cache is a thread-safe sharded cache of decoded sprite sheets,
// keyed by path. Eviction is LRU by decoded byte size: each shard
// holds at most its byte budget of texture data.
//
// Cached buffers are shared; callers must not mutate them.
type Cache struct {
	shards [cacheShardCount]*cacheShard
	budget int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type cacheShard struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	head    *cacheEntry // most recently used
	tail    *cacheEntry // least recently used
	bytes   int64
}

type cacheEntry struct {
	key  string
	buf  *Buffer
	size int64
	prev *cacheEntry
	next *cacheEntry
}

// CacheStats reports cache usage counters.
type CacheStats struct {
	// Len is the current number of cached textures.
	Len int
	// Bytes is the total decoded bytes held.
	Bytes int64
	// Budget is the byte budget per shard.
	Budget int64
	// Hits is the number of cache hits.
	Hits uint64
	// Misses is the number of cache misses.
	Misses uint64
	// Evictions is the number of evicted textures.
	Evictions uint64
}

// NewCache creates a texture cache with the given byte budget per
// shard. A budget <= 0 uses DefaultCacheBudget.
func NewCache(budgetPerShard int64) *Cache {
	if budgetPerShard <= 0 {
		budgetPerShard = DefaultCacheBudget
	}
	c := &Cache{budget: budgetPerShard}
	for i := range c.shards {
		c.shards[i] = &cacheShard{entries: make(map[string]*cacheEntry)}
	}
	return c
}

func (c *Cache) shard(key string) *cacheShard {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key)) // fnv.Write never returns an error
	return c.shards[h.Sum64()&cacheShardMask]
}

// Get returns a cached texture by path.
// A hit moves the entry to the front of the LRU order.
func (c *Cache) Get(path string) (*Buffer, bool) {
	s := c.shard(path)

	s.mu.Lock()
	e, ok := s.entries[path]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		return nil, false
	}
	s.moveToFront(e)
	buf := e.buf
	s.mu.Unlock()

	c.hits.Add(1)
	return buf, true
}

// Put stores a decoded texture under the given path, evicting least
// recently used entries if the shard exceeds its byte budget.
// Textures larger than the whole budget are not cached.
func (c *Cache) Put(path string, buf *Buffer) {
	if buf == nil {
		return
	}
	size := int64(len(buf.Data()))
	if size > c.budget {
		return
	}

	s := c.shard(path)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[path]; ok {
		s.bytes += size - e.size
		e.buf = buf
		e.size = size
		s.moveToFront(e)
	} else {
		e := &cacheEntry{key: path, buf: buf, size: size}
		s.entries[path] = e
		s.pushFront(e)
		s.bytes += size
	}

	for s.bytes > c.budget && s.tail != nil {
		oldest := s.tail
		s.unlink(oldest)
		delete(s.entries, oldest.key)
		s.bytes -= oldest.size
		c.evictions.Add(1)
	}
}

// GetOrLoad returns the cached texture for path, loading and caching
// it on a miss. Concurrent misses for the same path may load more
// than once; the last loader wins.
func (c *Cache) GetOrLoad(path string, load func(string) (*Buffer, error)) (*Buffer, error) {
	if buf, ok := c.Get(path); ok {
		return buf, nil
	}
	buf, err := load(path)
	if err != nil {
		return nil, err
	}
	c.Put(path, buf)
	return buf, nil
}

// Delete removes a cached texture.
// Returns true if the entry was found and removed.
func (c *Cache) Delete(path string) bool {
	s := c.shard(path)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[path]
	if !ok {
		return false
	}
	s.unlink(e)
	delete(s.entries, path)
	s.bytes -= e.size
	return true
}

// Clear removes all cached textures.
func (c *Cache) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.entries = make(map[string]*cacheEntry)
		s.head = nil
		s.tail = nil
		s.bytes = 0
		s.mu.Unlock()
	}
}

// Len returns the total number of cached textures.
func (c *Cache) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns current cache statistics.
func (c *Cache) Stats() CacheStats {
	var bytes int64
	length := 0
	for _, s := range c.shards {
		s.mu.Lock()
		bytes += s.bytes
		length += len(s.entries)
		s.mu.Unlock()
	}
	return CacheStats{
		Len:       length,
		Bytes:     bytes,
		Budget:    c.budget,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// List manipulation; callers hold the shard mutex.

func (s *cacheShard) pushFront(e *cacheEntry) {
	e.prev = nil
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *cacheShard) moveToFront(e *cacheEntry) {
	if e == s.head {
		return
	}
	s.unlink(e)
	s.pushFront(e)
}

func (s *cacheShard) unlink(e *cacheEntry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
