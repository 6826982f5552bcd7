package xiangqi

import (
	"strings"
)

// 简单 FEN：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示先后。
// 只用于摆局面和显示，不做存档。
func (b *Board) Encode(toMove Side) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc, ok := b.Occupant(Sq(r, c))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

// DecodeBoard 解析 FEN，返回棋盘和走子方。缺少走子方时默认红先。
func DecodeBoard(fen string) (*Board, Side, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, NoSide, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, NoSide, ErrInvalidFEN
	}
	b := EmptyBoard()
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, NoSide, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			if ch == '.' {
				c++
				continue
			}
			side, kind, ok := charToPiece(ch)
			if !ok {
				return nil, NoSide, ErrInvalidFEN
			}
			if err := b.Place(Sq(r, c), side, kind); err != nil {
				return nil, NoSide, ErrInvalidFEN
			}
			c++
		}
		if c != Cols {
			return nil, NoSide, ErrInvalidFEN
		}
	}

	stm := Red
	if len(parts) > 1 {
		switch parts[1] {
		case "w", "r":
			stm = Red
		case "b":
			stm = Black
		default:
			return nil, NoSide, ErrInvalidFEN
		}
	}
	return b, stm, nil
}
