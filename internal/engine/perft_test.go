package engine

import (
	"context"
	"errors"
	"testing"

	"xiangqi/internal/xiangqi"
)

func TestPerftOpening(t *testing.T) {
	engine := NewEngine(4)

	cases := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 44},
		{2, 1920},
	}
	if !testing.Short() {
		cases = append(cases, struct {
			depth int
			want  uint64
		}{3, 79666})
	}

	for _, tc := range cases {
		b := xiangqi.NewBoard()
		res, err := engine.Perft(context.Background(), b, xiangqi.Red, tc.depth)
		if err != nil {
			t.Fatalf("depth %d: %v", tc.depth, err)
		}
		if res.Nodes != tc.want {
			t.Fatalf("depth %d: got %d want %d", tc.depth, res.Nodes, tc.want)
		}
	}
}

func TestPerftDivideSums(t *testing.T) {
	engine := NewEngine(2)
	b := xiangqi.NewBoard()

	res, err := engine.Perft(context.Background(), b, xiangqi.Red, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Divide) != 44 {
		t.Fatalf("divide has %d root moves, want 44", len(res.Divide))
	}
	var sum uint64
	for m, n := range res.Divide {
		if n == 0 {
			t.Errorf("root move %v has no replies", m)
		}
		sum += n
	}
	if sum != res.Nodes {
		t.Fatalf("divide sum %d != nodes %d", sum, res.Nodes)
	}
}

func TestPerftLeavesBoardUntouched(t *testing.T) {
	engine := NewEngine(0)
	b := xiangqi.NewBoard()
	before := *b

	if _, err := engine.Perft(context.Background(), b, xiangqi.Red, 2); err != nil {
		t.Fatal(err)
	}
	if *b != before {
		t.Fatalf("perft modified the input board")
	}
	if engine.Nodes() == 0 {
		t.Fatalf("node counter not updated")
	}
}

func TestPerftCacheConsistent(t *testing.T) {
	engine := NewEngine(1)
	b := xiangqi.NewBoard()

	first, err := engine.Perft(context.Background(), b, xiangqi.Red, 2)
	if err != nil {
		t.Fatal(err)
	}
	if engine.cache.len() == 0 {
		t.Fatalf("cache empty after perft")
	}
	second, err := engine.Perft(context.Background(), b, xiangqi.Red, 2)
	if err != nil {
		t.Fatal(err)
	}
	if first.Nodes != second.Nodes {
		t.Fatalf("cached perft %d != fresh %d", second.Nodes, first.Nodes)
	}

	engine.ResetCache()
	if engine.cache.len() != 0 || engine.Nodes() != 0 {
		t.Fatalf("reset left cache=%d nodes=%d", engine.cache.len(), engine.Nodes())
	}
}

func TestPerftCancelled(t *testing.T) {
	engine := NewEngine(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Perft(ctx, xiangqi.NewBoard(), xiangqi.Red, 3)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestPerftNegativeDepth(t *testing.T) {
	if _, err := NewEngine(1).Perft(context.Background(), xiangqi.NewBoard(), xiangqi.Red, -1); err == nil {
		t.Fatalf("negative depth accepted")
	}
}

func TestPerftNoMoves(t *testing.T) {
	// 红方被困毙
	b, side, err := xiangqi.DecodeBoard("4k4/9/9/9/9/9/9/9/r8/3K5 w")
	if err != nil {
		t.Fatal(err)
	}
	res, err := NewEngine(1).Perft(context.Background(), b, side, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Nodes != 0 || len(res.Divide) != 0 {
		t.Fatalf("got nodes=%d divide=%d, want 0", res.Nodes, len(res.Divide))
	}
}
