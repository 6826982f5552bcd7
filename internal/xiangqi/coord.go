package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
)

// 记谱坐标：列 a..i，行 1..10；第 1 行是红方底线（内部第 9 行），第 10 行是黑方底线（内部第 0 行）

func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string(rune('a'+s.Col)) + strconv.Itoa(Rows-s.Row)
}

// ParseSquare 把 "a1"、"e10" 这样的坐标转成 Square
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	col := int(s[0] - 'a')
	if s[0] < 'a' || col >= Cols {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	// 不接受 "a01" 之类带前导零的写法
	if s[1] == '0' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	rank, err := strconv.Atoi(s[1:])
	if err != nil || rank < 1 || rank > Rows {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{Row: Rows - rank, Col: col}, nil
}

// ParseMove 支持 "h3e3"、"h3 e3"、"h3-e3"
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "", "-", "", "\t", "").Replace(s)
	if s == "" {
		return Move{}, fmt.Errorf("%w: empty", ErrInvalidMove)
	}
	// 第二个坐标从第二个字母开始
	split := strings.IndexFunc(s[1:], func(r rune) bool { return r >= 'a' && r <= 'z' })
	if split < 0 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	split++
	from, err := ParseSquare(s[:split])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	to, err := ParseSquare(s[split:])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %v", ErrInvalidMove, err)
	}
	return Move{From: from, To: to}, nil
}
