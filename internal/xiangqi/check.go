package xiangqi

// IsAttacked 判断 sq 这个格子是否被 bySide 这一方攻击。
// 采用走法模拟：只要对方任何一个棋子能按走法“走到”这个位置，就说明该位置被攻击。
// 不修改棋盘。
func (b *Board) IsAttacked(sq Square, bySide Side) bool {
	if !sq.OnBoard() {
		return false
	}
	for s, id := range b.grid {
		if id == NoPiece {
			continue
		}
		pc := b.pieces[id]
		if pc.Side != bySide {
			continue
		}
		if CanReach(b, pc, squareOf(s), sq) {
			return true
		}
	}
	return false
}

// InCheck 判断 side 这一方的将是否被将军
func (b *Board) InCheck(side Side) bool {
	g := b.GeneralSquare(side)
	if !g.OnBoard() {
		return false
	}
	// 对方是否能走到我方将的位置
	return b.IsAttacked(g, opposite(side))
}

// Checkers 返回正在将军 side 的对方棋子位置
func (b *Board) Checkers(side Side) []Square {
	g := b.GeneralSquare(side)
	if !g.OnBoard() {
		return nil
	}
	var out []Square
	for s, id := range b.grid {
		if id == NoPiece {
			continue
		}
		pc := b.pieces[id]
		if pc.Side == side {
			continue
		}
		if CanReach(b, pc, squareOf(s), g) {
			out = append(out, squareOf(s))
		}
	}
	return out
}
