package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"xiangqi/internal/xiangqi"
)

// PerftResult 是一次 perft 的结果
type PerftResult struct {
	Depth    int
	Nodes    uint64                  // 叶子数
	Divide   map[xiangqi.Move]uint64 // 每个根走法下的叶子数
	TimeUsed time.Duration
}

// Perft 统计 side 先走时 depth 层的合法走法叶子数。b 不会被修改。
func (e *Engine) Perft(ctx context.Context, b *xiangqi.Board, side xiangqi.Side, depth int) (PerftResult, error) {
	start := time.Now()
	res := PerftResult{Depth: depth}
	if depth < 0 {
		return res, fmt.Errorf("perft: negative depth %d", depth)
	}
	if depth == 0 {
		res.Nodes = 1
		res.TimeUsed = time.Since(start)
		return res, nil
	}

	root := b.LegalMoves(side)
	counts := make([]uint64, len(root))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, m := range root {
		i, m := i, m
		g.Go(func() error {
			// 每个分支用自己的棋盘副本
			nb := b.Clone()
			if _, err := nb.Commit(side, m); err != nil {
				return fmt.Errorf("perft: root move %v: %w", m, err)
			}
			n, err := e.perft(gctx, nb, side.Opposite(), depth-1)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	res.Divide = make(map[xiangqi.Move]uint64, len(root))
	for i, m := range root {
		res.Divide[m] = counts[i]
		res.Nodes += counts[i]
	}
	e.addNodes(1)
	res.TimeUsed = time.Since(start)
	return res, nil
}

func (e *Engine) perft(ctx context.Context, b *xiangqi.Board, side xiangqi.Side, depth int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	e.addNodes(1)
	if depth == 0 {
		return 1, nil
	}

	key := b.Hash() ^ xiangqi.SideKey(side)
	if n, ok := e.cache.get(key, depth); ok {
		return n, nil
	}

	moves := b.LegalMoves(side)
	if depth == 1 {
		n := uint64(len(moves))
		e.cache.store(key, depth, n)
		return n, nil
	}

	var total uint64
	for _, m := range moves {
		u, err := b.Apply(side, m)
		if err != nil {
			return 0, fmt.Errorf("perft: move %v: %w", m, err)
		}
		n, err := e.perft(ctx, b, side.Opposite(), depth-1)
		b.Revert(u)
		if err != nil {
			return 0, err
		}
		total += n
	}
	e.cache.store(key, depth, total)
	return total, nil
}
