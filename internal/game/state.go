package game

import "xiangqi/internal/xiangqi"

// State 是对局结果；只会从 Unfinished 变为某一方获胜，之后不再变化
type State int8

const (
	Unfinished State = iota
	RedWon
	BlackWon
)

func (s State) String() string {
	switch s {
	case RedWon:
		return "RED_WON"
	case BlackWon:
		return "BLACK_WON"
	default:
		return "UNFINISHED"
	}
}

func wonBy(side xiangqi.Side) State {
	if side == xiangqi.Red {
		return RedWon
	}
	return BlackWon
}

// Winner 返回胜方；未结束时为 NoSide
func (s State) Winner() xiangqi.Side {
	switch s {
	case RedWon:
		return xiangqi.Red
	case BlackWon:
		return xiangqi.Black
	default:
		return xiangqi.NoSide
	}
}
