package xiangqi

import "errors"

var (
	ErrOffBoard     = errors.New("square off board")
	ErrEmptySquare  = errors.New("no piece on origin square")
	ErrWrongSide    = errors.New("piece belongs to the other side")
	ErrIllegalPath  = errors.New("illegal path for piece")
	ErrGeneralsFace = errors.New("generals face each other on an open file")
	ErrSelfCheck    = errors.New("move leaves own general in check")

	ErrOccupied         = errors.New("square already occupied")
	ErrInvalidPiece     = errors.New("invalid piece")
	ErrTooManyPieces    = errors.New("too many pieces")
	ErrDuplicateGeneral = errors.New("side already has a general")

	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidMove   = errors.New("invalid move")
	ErrInvalidFEN    = errors.New("invalid FEN")
)
