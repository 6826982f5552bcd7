package xiangqi

import "testing"

func mustDecode(t *testing.T, fen string) (*Board, Side) {
	t.Helper()
	b, side, err := DecodeBoard(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return b, side
}

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	mv, err := ParseMove(s)
	if err != nil {
		t.Fatalf("parse move %q: %v", s, err)
	}
	return mv
}

func mv(fr, fc, tr, tc int) Move {
	return Move{From: Sq(fr, fc), To: Sq(tr, tc)}
}
