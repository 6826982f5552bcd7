package engine

import (
	"runtime"
	"sync/atomic"
)

// Engine 做走法统计类的分析（perft / divide / 随机对局）。
// 根节点的每个分支在独立的棋盘副本上计算，分支之间并行。
type Engine struct {
	workers int

	// 累计访问的节点数，多个 goroutine 共享
	nodes int64

	cache *perftCache
}

func NewEngine(workers int) *Engine {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Engine{
		workers: workers,
		cache:   newPerftCache(),
	}
}

func (e *Engine) Workers() int { return e.workers }

// Nodes 返回到目前为止访问的节点数
func (e *Engine) Nodes() int64 { return atomic.LoadInt64(&e.nodes) }

func (e *Engine) addNodes(n int64) { atomic.AddInt64(&e.nodes, n) }

// ResetCache 清空 perft 缓存和节点计数
func (e *Engine) ResetCache() {
	e.cache.reset()
	atomic.StoreInt64(&e.nodes, 0)
}
