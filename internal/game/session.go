package game

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/xiangqi"
)

// Session 是一局棋：轮到谁走、双方是否被将军、对局结果。
// 所有方法都可以从多个 goroutine 调用，但落子本身是串行的。
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	board     *xiangqi.Board
	turn      xiangqi.Side
	state     State
	inCheck   [2]bool
	plies     int
	lastMove  *xiangqi.Move
	updatedAt time.Time
}

// NewSession 返回标准开局、红先的新对局
func NewSession() *Session {
	return newSession(xiangqi.NewBoard(), xiangqi.Red)
}

// NewSessionFromFEN 从局面串开局。若走子方已经无棋可走，对局直接结束。
func NewSessionFromFEN(fen string) (*Session, error) {
	b, side, err := xiangqi.DecodeBoard(fen)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}
	if !b.GeneralSquare(xiangqi.Red).OnBoard() || !b.GeneralSquare(xiangqi.Black).OnBoard() {
		return nil, fmt.Errorf("new session: %w: both generals required", xiangqi.ErrInvalidFEN)
	}
	if b.GeneralsFacing() {
		return nil, fmt.Errorf("new session: %w", xiangqi.ErrGeneralsFace)
	}
	if b.InCheck(side.Opposite()) {
		return nil, fmt.Errorf("new session: %w", ErrOpponentInCheck)
	}
	return newSession(b, side), nil
}

func newSession(b *xiangqi.Board, side xiangqi.Side) *Session {
	now := time.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		updatedAt: now,
		board:     b,
		turn:      side,
	}
	s.inCheck[xiangqi.Red] = b.InCheck(xiangqi.Red)
	s.inCheck[xiangqi.Black] = b.InCheck(xiangqi.Black)
	if !b.HasLegalMove(side) {
		s.state = wonBy(side.Opposite())
	}
	return s
}

// MakeMove 用记谱坐标走一步，例如 MakeMove("h3", "e3")。
// 非法输入、非法走法、对局已结束都返回 false。
func (s *Session) MakeMove(from, to string) bool {
	f, err := xiangqi.ParseSquare(from)
	if err != nil {
		return false
	}
	t, err := xiangqi.ParseSquare(to)
	if err != nil {
		return false
	}
	return s.Play(xiangqi.Move{From: f, To: t}) == nil
}

// PlayString 解析 "h3e3" 这类写法后落子
func (s *Session) PlayString(move string) error {
	m, err := xiangqi.ParseMove(move)
	if err != nil {
		return err
	}
	return s.Play(m)
}

// Play 让当前走子方走 m。被拒绝时棋盘保持原样。
func (s *Session) Play(m xiangqi.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Unfinished {
		return ErrGameOver
	}
	if _, err := s.board.Commit(s.turn, m); err != nil {
		return fmt.Errorf("%w %v: %w", ErrIllegalMove, m, err)
	}

	mover, opp := s.turn, s.turn.Opposite()
	s.inCheck[mover] = false
	s.inCheck[opp] = s.board.InCheck(opp)
	s.plies++
	s.lastMove = &m
	s.updatedAt = time.Now()

	// 轮到的一方无子可动即判负（将死或困毙）
	switch outcome := s.board.Evaluate(opp); outcome {
	case xiangqi.Checkmate, xiangqi.Stalemate:
		s.state = wonBy(mover)
		log.Printf("game %s: %v after %d plies (%v)", s.ID, s.state, s.plies, outcome)
	}
	s.turn = opp
	return nil
}

// IsInCheck 接受 xiangqi.Side
func (s *Session) IsInCheck(side xiangqi.Side) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if side != xiangqi.Red && side != xiangqi.Black {
		return false
	}
	return s.inCheck[side]
}

// IsInCheckName 接受 "red" / "black"
func (s *Session) IsInCheckName(player string) bool {
	switch strings.ToLower(strings.TrimSpace(player)) {
	case "red":
		return s.IsInCheck(xiangqi.Red)
	case "black":
		return s.IsInCheck(xiangqi.Black)
	}
	return false
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Turn() xiangqi.Side {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn
}

func (s *Session) Plies() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plies
}

func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// LastMove 返回最近一步；还没走过时 ok 为 false
func (s *Session) LastMove() (xiangqi.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastMove == nil {
		return xiangqi.Move{}, false
	}
	return *s.lastMove, true
}

// Board 返回棋盘副本，调用方随意修改不影响对局
func (s *Session) Board() *xiangqi.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

func (s *Session) FEN() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Encode(s.turn)
}

// LegalMoves 返回当前走子方的合法走法；对局结束后为空
func (s *Session) LegalMoves() []xiangqi.Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Unfinished {
		return nil
	}
	return s.board.LegalMoves(s.turn)
}
