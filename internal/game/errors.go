package game

import "errors"

var (
	ErrGameOver     = errors.New("game is over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameNotFound = errors.New("game not found")
	ErrAmbiguousID  = errors.New("game id prefix matches several games")

	// 不该走的一方已被将军：走子方可以直接吃将
	ErrOpponentInCheck = errors.New("side not to move is in check")
)
