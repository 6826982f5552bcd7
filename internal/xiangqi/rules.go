package xiangqi

// CanReach 判断 p 能否按自己的走法从 from 走到 to。
// 只看棋盘占位，不管轮到谁走，也不管走后自己是否被将军。
func CanReach(b *Board, p Piece, from, to Square) bool {
	if !from.OnBoard() || !to.OnBoard() || from == to {
		return false
	}
	if dst, ok := b.Occupant(to); ok && dst.Side == p.Side {
		return false
	}

	switch p.Movement {
	case Orthogonal:
		return canReachOrthogonal(b, p, from, to)
	case DiagonalStep:
		return canReachDiagonal(b, p, from, to)
	case Leap:
		return canReachLeap(b, from, to)
	case ForwardOnly, ForwardOrLateral:
		return canReachSoldier(p, from, to)
	}
	return false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// 帅、车、炮：直线。炮吃子必须隔一子（炮架），平移时路径必须全空
func canReachOrthogonal(b *Board, p Piece, from, to Square) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if dr != 0 && dc != 0 {
		return false
	}
	dist := abs(dr) + abs(dc)
	if dist > p.MaxDistance {
		return false
	}
	if p.Kind == General && !inPalace(p.Side, to.Row, to.Col) {
		return false
	}

	screens := 0
	sr, sc := sign(dr), sign(dc)
	for r, c := from.Row+sr, from.Col+sc; r != to.Row || c != to.Col; r, c = r+sr, c+sc {
		if b.occupied(r, c) {
			screens++
		}
	}

	if p.Kind != Cannon {
		return screens == 0
	}
	if b.occupied(to.Row, to.Col) {
		return screens == 1
	}
	return screens == 0
}

// 仕：九宫内斜一格；相：田字，塞象眼不能走，不过河
func canReachDiagonal(b *Board, p Piece, from, to Square) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if abs(dr) != abs(dc) || abs(dr) != p.MaxDistance {
		return false
	}

	switch p.Kind {
	case Advisor:
		if !inPalace(p.Side, to.Row, to.Col) {
			return false
		}
	case Elephant:
		if !ownHalf(p.Side, to.Row) {
			return false
		}
	}

	// 中途经过的斜点必须为空（相眼）
	sr, sc := sign(dr), sign(dc)
	for step := 1; step < p.MaxDistance; step++ {
		if b.occupied(from.Row+step*sr, from.Col+step*sc) {
			return false
		}
	}
	return true
}
