package xiangqi

import "sync"

// 每个 (方, 兵种, 格子) 一个随机键，共 2*7*90 个。
// 键只和格子上是什么子有关，与 PieceID 无关：同一局面不管棋子怎么编号哈希都一样。
// 兵的 Movement 由所在格子决定，不进哈希。
type zobristKeys struct {
	pieces [2][Soldier + 1][NumSquares]uint64 // 下标 KindNone 不用
	black  uint64                             // 黑方走子
}

var (
	zobristOnce  sync.Once
	zobristTable zobristKeys
)

// splitmix64，固定种子，保证每次运行键都一样
type splitmix uint64

func (s *splitmix) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func keys() *zobristKeys {
	zobristOnce.Do(func() {
		rng := splitmix(0x58_49_41_4E_47_51_49) // "XIANGQI"
		for _, side := range [...]Side{Red, Black} {
			for k := General; k <= Soldier; k++ {
				for sq := range zobristTable.pieces[side][k] {
					zobristTable.pieces[side][k][sq] = rng.next()
				}
			}
		}
		zobristTable.black = rng.next()
	})
	return &zobristTable
}

// pieceHashKey 返回 pc 位于 sq 时的键；空子或越界为 0
func pieceHashKey(pc Piece, sq int) uint64 {
	if sq < 0 || sq >= NumSquares {
		return 0
	}
	if pc.Side != Red && pc.Side != Black {
		return 0
	}
	if pc.Kind <= KindNone || pc.Kind > Soldier {
		return 0
	}
	return keys().pieces[pc.Side][pc.Kind][sq]
}

// SideKey 是走子方的哈希分量，Board 本身不记录轮到谁
func SideKey(side Side) uint64 {
	if side != Black {
		return 0
	}
	return keys().black
}

// CalculateHash 从棋盘格重新算哈希，用来核对 Apply/Revert 里的增量更新
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for sq, id := range b.grid {
		if id != NoPiece {
			h ^= pieceHashKey(b.pieces[id], sq)
		}
	}
	return h
}
