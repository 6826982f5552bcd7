package main

import (
	"context"
	"fmt"
	"sort"

	"xiangqi/internal/config"
	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

// runBenchmark 从 1 到配置深度逐层跑 perft，最后一层打印 divide
func runBenchmark(ctx context.Context, cfg config.Config) error {
	b, side := xiangqi.NewBoard(), xiangqi.Red
	if cfg.StartFEN != "" {
		var err error
		b, side, err = xiangqi.DecodeBoard(cfg.StartFEN)
		if err != nil {
			return err
		}
	}

	e := engine.NewEngine(cfg.Workers)
	fmt.Printf("perft %s, workers=%d\n", b.Encode(side), e.Workers())

	var last engine.PerftResult
	for d := 1; d <= cfg.PerftDepth; d++ {
		e.ResetCache()
		res, err := e.Perft(ctx, b, side, d)
		if err != nil {
			return err
		}
		secs := res.TimeUsed.Seconds()
		nps := int64(0)
		if secs > 0 {
			nps = int64(float64(e.Nodes()) / secs)
		}
		fmt.Printf("depth %d: %d leaves, %d nodes, %v, NPS %d\n", d, res.Nodes, e.Nodes(), res.TimeUsed, nps)
		last = res
	}

	if len(last.Divide) == 0 {
		return nil
	}
	moves := make([]xiangqi.Move, 0, len(last.Divide))
	for m := range last.Divide {
		moves = append(moves, m)
	}
	sort.Slice(moves, func(i, j int) bool { return moves[i].String() < moves[j].String() })
	fmt.Println("divide:")
	for _, m := range moves {
		fmt.Printf("  %v: %d\n", m, last.Divide[m])
	}
	return nil
}
