package xiangqi

// HasLegalMove 判断 side 是否还有不送将的走法。
// 对每个己方棋子逐格试走，找到一步就提前返回。
func (b *Board) HasLegalMove(side Side) bool {
	for _, from := range b.Squares(side) {
		if b.pieceHasLegalMove(side, from) {
			return true
		}
	}
	return false
}

func (b *Board) pieceHasLegalMove(side Side, from Square) bool {
	for to := 0; to < NumSquares; to++ {
		if b.IsLegal(side, Move{From: from, To: squareOf(to)}) {
			return true
		}
	}
	return false
}

// LegalMoves 生成 side 的全部合法走法
func (b *Board) LegalMoves(side Side) []Move {
	var moves []Move
	for _, from := range b.Squares(side) {
		moves = b.appendLegalFrom(moves, side, from)
	}
	return moves
}

// LegalMovesFrom 生成 from 上棋子的合法走法；from 不是 side 的子时返回空
func (b *Board) LegalMovesFrom(side Side, from Square) []Move {
	return b.appendLegalFrom(nil, side, from)
}

func (b *Board) appendLegalFrom(moves []Move, side Side, from Square) []Move {
	pc, ok := b.Occupant(from)
	if !ok || pc.Side != side {
		return moves
	}
	for to := 0; to < NumSquares; to++ {
		mv := Move{From: from, To: squareOf(to)}
		// 先用走法规则快速过滤，再试走判断送将
		if !CanReach(b, pc, mv.From, mv.To) {
			continue
		}
		if b.IsLegal(side, mv) {
			moves = append(moves, mv)
		}
	}
	return moves
}

// Outcome 是局面对走子方的终局判断
type Outcome int8

const (
	Ongoing Outcome = iota
	Checkmate
	Stalemate
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// Evaluate 判断 side 是否被将死或困毙；两种情况在本规则下都判负
func (b *Board) Evaluate(side Side) Outcome {
	if b.HasLegalMove(side) {
		return Ongoing
	}
	if b.InCheck(side) {
		return Checkmate
	}
	return Stalemate
}
