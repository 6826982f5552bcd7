package xiangqi

// 马的 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func canReachLeap(b *Board, from, to Square) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	for _, m := range horseLegMoves {
		if m.Dr != dr || m.Dc != dc {
			continue
		}
		return !b.occupied(from.Row+m.Br, from.Col+m.Bc) // 憋马腿
	}
	return false
}
