package xiangqi

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 落在 row 上的兵是否已经过河
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 兵：未过河只能向前一格；过河后可以左右，永远不能后退
func canReachSoldier(p Piece, from, to Square) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr == soldierDir(p.Side) && dc == 0 {
		return true
	}
	if p.Movement == ForwardOrLateral {
		return dr == 0 && abs(dc) == 1
	}
	return false
}
