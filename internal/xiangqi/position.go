package xiangqi

// Undo 记录一步棋的全部还原信息。Apply 返回它，Revert 用它撤销，
// 只支持撤销紧接着的上一步。
type Undo struct {
	Move     Move
	Captured PieceID // 被吃的子，没有则为 NoPiece

	mover    PieceID
	movement Movement // 走之前的走法类别（兵过河会变）
	generals [2]Square
	hash     uint64
}

// Apply 让 side 走 m。失败时棋盘不变。
// 成功后若兵第一次过河，其 Movement 变为 ForwardOrLateral。
// 不检查走后自己是否被将军，那是 Commit 的事。
func (b *Board) Apply(side Side, m Move) (Undo, error) {
	if !m.From.OnBoard() || !m.To.OnBoard() {
		return Undo{}, ErrOffBoard
	}
	id := b.grid[m.From.index()]
	if id == NoPiece {
		return Undo{}, ErrEmptySquare
	}
	pc := b.pieces[id]
	if pc.Side != side {
		return Undo{}, ErrWrongSide
	}
	if !CanReach(b, pc, m.From, m.To) {
		return Undo{}, ErrIllegalPath
	}

	u := b.relocate(id, m)

	// 王不见王
	if b.generalsFacing() {
		b.Revert(u)
		return Undo{}, ErrGeneralsFace
	}
	return u, nil
}

func (b *Board) relocate(id PieceID, m Move) Undo {
	pc := b.pieces[id]
	from, to := m.From.index(), m.To.index()
	captured := b.grid[to]

	u := Undo{
		Move:     m,
		Captured: captured,
		mover:    id,
		movement: pc.Movement,
		generals: b.generals,
		hash:     b.hash,
	}

	// 增量 Zobrist：移除 from 的子、移除被吃子（若有）、加入 to 的子
	h := b.hash
	h ^= pieceHashKey(pc, from)
	if captured != NoPiece {
		cp := b.pieces[captured]
		h ^= pieceHashKey(cp, to)
		if cp.Kind == General {
			b.generals[cp.Side] = noSquare
		}
	}
	h ^= pieceHashKey(pc, to)
	b.hash = h

	b.grid[to] = id
	b.grid[from] = NoPiece
	if pc.Kind == General {
		b.generals[pc.Side] = m.To
	}
	if pc.Movement == ForwardOnly && crossedRiver(pc.Side, m.To.Row) {
		b.pieces[id].Movement = ForwardOrLateral
	}
	return u
}

// Revert 撤销 Apply 返回的 u，恢复被吃的子、将帅位置、兵的走法类别和哈希
func (b *Board) Revert(u Undo) {
	if u.mover == NoPiece {
		return
	}
	b.grid[u.Move.From.index()] = u.mover
	b.grid[u.Move.To.index()] = u.Captured
	b.pieces[u.mover].Movement = u.movement
	b.generals = u.generals
	b.hash = u.hash
}

// Commit 是真正落子：在 Apply 的基础上拒绝送将（走后自己被将军）
func (b *Board) Commit(side Side, m Move) (Undo, error) {
	u, err := b.Apply(side, m)
	if err != nil {
		return Undo{}, err
	}
	if b.InCheck(side) {
		b.Revert(u)
		return Undo{}, ErrSelfCheck
	}
	return u, nil
}

// Try 试走 m，在走后的局面上调用 fn，返回前一定撤销这一步。
// fn 里可以继续嵌套 Try，但不能保留 Board 的引用。
func (b *Board) Try(side Side, m Move, fn func(*Board) bool) (bool, error) {
	u, err := b.Apply(side, m)
	if err != nil {
		return false, err
	}
	defer b.Revert(u)
	return fn(b), nil
}

// IsLegal 判断 side 走 m 是否完全合法（包括不送将）
func (b *Board) IsLegal(side Side, m Move) bool {
	ok, err := b.Try(side, m, func(nb *Board) bool {
		return !nb.InCheck(side)
	})
	return err == nil && ok
}

func (b *Board) generalsFacing() bool {
	red, black := b.generals[Red], b.generals[Black]
	if !red.OnBoard() || !black.OnBoard() {
		// 有一方将已经没了：对局终结，但不存在“对脸”问题
		return false
	}
	if red.Col != black.Col {
		return false
	}

	lo, hi := black.Row, red.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for r := lo + 1; r < hi; r++ {
		if b.occupied(r, red.Col) {
			return false // 中间有子，不算“对脸”
		}
	}
	return true
}

// GeneralsFacing 报告两将是否在同一列且中间无子
func (b *Board) GeneralsFacing() bool { return b.generalsFacing() }
