package engine

import (
	"context"
	"math/rand"

	"xiangqi/internal/game"
)

// PlayRandom 让双方随机走合法步，直到分出胜负、达到 maxPlies 或 ctx 结束。
// 返回最终结果和实际走的步数；达到步数上限时结果为 Unfinished。
func PlayRandom(ctx context.Context, s *game.Session, rng *rand.Rand, maxPlies int) (game.State, int, error) {
	plies := 0
	for plies < maxPlies && s.State() == game.Unfinished {
		if err := ctx.Err(); err != nil {
			return s.State(), plies, err
		}
		moves := s.LegalMoves()
		if len(moves) == 0 {
			break
		}
		if err := s.Play(moves[rng.Intn(len(moves))]); err != nil {
			return s.State(), plies, err
		}
		plies++
	}
	return s.State(), plies, nil
}
