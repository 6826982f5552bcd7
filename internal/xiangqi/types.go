package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "RED"
	case Black:
		return "BLACK"
	default:
		return "NONE"
	}
}

// Opposite 返回对方；NoSide 保持不变
func (s Side) Opposite() Side {
	return opposite(s)
}

type Kind int8

const (
	KindNone Kind = iota
	General       // 帅 / 将
	Advisor       // 仕 / 士
	Elephant      // 相 / 象
	Horse         // 马
	Chariot       // 车
	Cannon        // 炮
	Soldier       // 兵 / 卒
)

var kindNames = [...]string{
	KindNone: "none",
	General:  "general",
	Advisor:  "advisor",
	Elephant: "elephant",
	Horse:    "horse",
	Chariot:  "chariot",
	Cannon:   "cannon",
	Soldier:  "soldier",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Movement 决定走法规则的分派，见 CanReach
type Movement int8

const (
	Orthogonal       Movement = iota // 帅、车、炮
	DiagonalStep                     // 仕、相
	Leap                             // 马
	ForwardOnly                      // 未过河的兵
	ForwardOrLateral                 // 过河兵
)

func (m Movement) String() string {
	switch m {
	case Orthogonal:
		return "orthogonal"
	case DiagonalStep:
		return "diagonal-step"
	case Leap:
		return "leap"
	case ForwardOnly:
		return "forward-only"
	case ForwardOrLateral:
		return "forward-or-lateral"
	default:
		return "unknown"
	}
}

// Piece 是棋子描述。除兵的 Movement 过河后会变化外，其余字段创建后不变。
type Piece struct {
	Side        Side
	Kind        Kind
	Movement    Movement
	MaxDistance int
}

// NewPiece 按兵种给出初始走法类别和最大步数
func NewPiece(side Side, kind Kind) Piece {
	p := Piece{Side: side, Kind: kind}
	switch kind {
	case General:
		p.Movement, p.MaxDistance = Orthogonal, 1
	case Advisor:
		p.Movement, p.MaxDistance = DiagonalStep, 1
	case Elephant:
		p.Movement, p.MaxDistance = DiagonalStep, 2
	case Horse:
		p.Movement, p.MaxDistance = Leap, 3
	case Chariot, Cannon:
		p.Movement, p.MaxDistance = Orthogonal, Rows-1
	case Soldier:
		p.Movement, p.MaxDistance = ForwardOnly, 1
	}
	return p
}

// Letter 返回记谱字母，红方大写
func (p Piece) Letter() rune { return pieceToChar(p) }

// PieceID 是 Board 棋子仓库里的下标；0 表示空格
type PieceID int8

const NoPiece PieceID = 0

type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) OnBoard() bool { return onBoard(s.Row, s.Col) }

func (s Square) index() int { return indexOf(s.Row, s.Col) }

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}
