package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界：红方在 5..9 行，黑方在 0..4 行
	RiverRow = 5

	// 标准开局每方 16 子
	MaxPieces = 32
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func squareOf(sq int) Square { return Square{Row: rowOf(sq), Col: colOf(sq)} }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 是否在本方半场（相不能离开）
func ownHalf(side Side, row int) bool {
	if side == Red {
		return row >= RiverRow
	}
	if side == Black {
		return row < RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= Rows-3 && row <= Rows-1
	}
	return false
}

var noSquare = Square{Row: -1, Col: -1}

// Board 持有所有棋子。棋盘格存的是 PieceID 而不是棋子本身，
// 被吃的子留在仓库里，只是不再被任何格子引用。
// Board 是值类型：直接复制即得到互不影响的副本。
type Board struct {
	pieces [MaxPieces + 1]Piece // 下标 0 不用
	count  int
	grid   [NumSquares]PieceID

	generals [2]Square
	hash     uint64
}

// EmptyBoard 返回一个没有任何棋子的棋盘
func EmptyBoard() *Board {
	b := &Board{}
	b.generals = [2]Square{noSquare, noSquare}
	return b
}

// Place 在 sq 放一枚新棋子，用于摆局面
func (b *Board) Place(sq Square, side Side, kind Kind) error {
	if !sq.OnBoard() {
		return ErrOffBoard
	}
	if side != Red && side != Black {
		return ErrInvalidPiece
	}
	if kind <= KindNone || kind > Soldier {
		return ErrInvalidPiece
	}
	if b.grid[sq.index()] != NoPiece {
		return ErrOccupied
	}
	if b.count >= MaxPieces {
		return ErrTooManyPieces
	}
	if kind == General && b.generals[side] != noSquare {
		return ErrDuplicateGeneral
	}

	pc := NewPiece(side, kind)
	// 摆在对方半场的兵视为已经过河
	if kind == Soldier && crossedRiver(side, sq.Row) {
		pc.Movement = ForwardOrLateral
	}

	b.count++
	id := PieceID(b.count)
	b.pieces[id] = pc
	b.grid[sq.index()] = id
	if kind == General {
		b.generals[side] = sq
	}
	b.hash ^= pieceHashKey(pc, sq.index())
	return nil
}

// Occupant 返回 sq 上的棋子
func (b *Board) Occupant(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return Piece{}, false
	}
	id := b.grid[sq.index()]
	if id == NoPiece {
		return Piece{}, false
	}
	return b.pieces[id], true
}

func (b *Board) occupied(row, col int) bool {
	return b.grid[indexOf(row, col)] != NoPiece
}

// PieceAt 返回 sq 上棋子的 id，空格返回 NoPiece
func (b *Board) PieceAt(sq Square) PieceID {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.grid[sq.index()]
}

// Piece 按 id 取棋子（包括已被吃掉的）
func (b *Board) Piece(id PieceID) Piece {
	if id <= NoPiece || int(id) > b.count {
		return Piece{Side: NoSide}
	}
	return b.pieces[id]
}

// GeneralSquare 返回 side 帅/将的位置；不存在时 OnBoard() 为 false
func (b *Board) GeneralSquare(side Side) Square {
	if side != Red && side != Black {
		return noSquare
	}
	return b.generals[side]
}

// Hash 返回当前局面的 Zobrist 哈希（不含走子方）
func (b *Board) Hash() uint64 { return b.hash }

// Squares 返回 side 所有在盘棋子的位置，按行列顺序
func (b *Board) Squares(side Side) []Square {
	out := make([]Square, 0, MaxPieces/2)
	for sq, id := range b.grid {
		if id == NoPiece || b.pieces[id].Side != side {
			continue
		}
		out = append(out, squareOf(sq))
	}
	return out
}

// Clone 返回一个独立副本，供并发分析使用
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

var letterToKind = map[rune]Kind{
	'k': General,
	'a': Advisor,
	'b': Elephant,
	'n': Horse,
	'r': Chariot,
	'c': Cannon,
	'p': Soldier,
}

// 一些记谱习惯用 e / h 表示相和马
var kindAliases = map[rune]Kind{
	'e': Elephant,
	'h': Horse,
}

var kindLetters = [...]rune{
	General:  'k',
	Advisor:  'a',
	Elephant: 'b',
	Horse:    'n',
	Chariot:  'r',
	Cannon:   'c',
	Soldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p.Kind <= KindNone || int(p.Kind) >= len(kindLetters) {
		return '.'
	}
	if p.Side == Red {
		return unicode.ToUpper(kindLetters[p.Kind])
	}
	return kindLetters[p.Kind]
}

func charToPiece(ch rune) (Side, Kind, bool) {
	base := unicode.ToLower(ch)
	kind, ok := letterToKind[base]
	if !ok {
		kind, ok = kindAliases[base]
	}
	if !ok {
		return NoSide, KindNone, false
	}
	if unicode.IsUpper(ch) {
		return Red, kind, true
	}
	return Black, kind, true
}

// 标准开局，大写为红方
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseInitialBoard() *Board {
	b := EmptyBoard()
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString 行数不为 10")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString 列数不为 9")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			side, kind, ok := charToPiece(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			if err := b.Place(Sq(r, c), side, kind); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// NewBoard 返回标准开局
func NewBoard() *Board {
	return parseInitialBoard()
}
