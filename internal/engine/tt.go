package engine

import "sync"

const perftCacheCap = 1_000_000

type perftKey struct {
	Hash  uint64
	Depth int
}

// perft 结果缓存，按 (局面哈希 ^ 走子方, 深度) 存叶子数
type perftCache struct {
	mu sync.RWMutex
	m  map[perftKey]uint64
}

func newPerftCache() *perftCache {
	return &perftCache{m: make(map[perftKey]uint64, 1<<16)}
}

func (c *perftCache) get(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	n, ok := c.m[perftKey{Hash: hash, Depth: depth}]
	c.mu.RUnlock()
	return n, ok
}

func (c *perftCache) store(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	if len(c.m) > perftCacheCap {
		c.m = make(map[perftKey]uint64, 1<<16)
	}
	c.m[perftKey{Hash: hash, Depth: depth}] = nodes
	c.mu.Unlock()
}

func (c *perftCache) reset() {
	c.mu.Lock()
	c.m = make(map[perftKey]uint64, 1<<16)
	c.mu.Unlock()
}

func (c *perftCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
