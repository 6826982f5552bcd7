package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"xiangqi/internal/config"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

func newTestModel(t *testing.T, fen string) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Color = false
	cfg.StartFEN = fen
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// enter 进入输入模式，输入一行并回车
func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m, _ = send(t, m, runes("i"))
	if m.m != modeInput {
		t.Fatalf("not in input mode")
	}
	m, _ = send(t, m, runes(line))
	return send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func lastLog(m Model) string {
	return m.logLines[len(m.logLines)-1]
}

func TestPlayMoveThroughInput(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = enter(t, m, "h3e3")

	if m.m != modeNormal {
		t.Fatalf("still in input mode after enter")
	}
	if got := m.session.Turn(); got != xiangqi.Black {
		t.Fatalf("turn=%v after red move", got)
	}
	if mv, ok := m.session.LastMove(); !ok || mv.String() != "h3e3" {
		t.Fatalf("last move %v %v", mv, ok)
	}
	if !strings.Contains(lastLog(m), "RED h3e3") {
		t.Fatalf("log %q", lastLog(m))
	}
}

func TestIllegalMoveKeepsPosition(t *testing.T) {
	m := newTestModel(t, "")
	before := m.session.FEN()

	m, _ = enter(t, m, "a1a9")
	if m.session.FEN() != before {
		t.Fatalf("board changed after illegal move")
	}
	if !strings.Contains(lastLog(m), "move failed") {
		t.Fatalf("log %q", lastLog(m))
	}

	m, _ = enter(t, m, "hello")
	if !strings.Contains(lastLog(m), "unknown command") {
		t.Fatalf("log %q", lastLog(m))
	}
}

func TestLoadAndCheckmate(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = enter(t, m, "load 3k5/9/9/9/9/r8/9/9/9/3BKB3 b")
	if m.session.Turn() != xiangqi.Black {
		t.Fatalf("load did not set black to move")
	}

	m, _ = enter(t, m, "a5 e5")
	if got := m.session.State(); got != game.BlackWon {
		t.Fatalf("state=%v", got)
	}
	if !strings.Contains(lastLog(m), "BLACK_WON") {
		t.Fatalf("log %q", lastLog(m))
	}
	if !strings.Contains(m.View(), "BLACK_WON") {
		t.Fatalf("view does not show result")
	}

	m, _ = enter(t, m, "load not-a-fen")
	if !strings.Contains(lastLog(m), "load failed") {
		t.Fatalf("log %q", lastLog(m))
	}
}

func TestNewAndFEN(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = enter(t, m, "b3e3")
	m, _ = enter(t, m, "new")
	if m.session.Plies() != 0 {
		t.Fatalf("new did not reset game")
	}

	m, _ = enter(t, m, "fen")
	if want := xiangqi.NewBoard().Encode(xiangqi.Red); lastLog(m) != want {
		t.Fatalf("fen %q want %q", lastLog(m), want)
	}
}

func TestListMoves(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = enter(t, m, "moves")
	if !strings.HasPrefix(lastLog(m), "44 moves:") {
		t.Fatalf("log %q", lastLog(m))
	}

	// 马 b1 只有两步
	m, _ = enter(t, m, "moves b1")
	if got := lastLog(m); got != "2 moves: b1a3 b1c3" {
		t.Fatalf("log %q", got)
	}

	m, _ = enter(t, m, "moves z9")
	if !strings.HasPrefix(lastLog(m), "moves:") {
		t.Fatalf("log %q", lastLog(m))
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, "")
	if _, cmd := send(t, m, runes("q")); cmd == nil {
		t.Fatalf("q did not quit")
	}
	if _, cmd := enter(t, m, "quit"); cmd == nil {
		t.Fatalf("quit command did not quit")
	}

	// 输入模式下 q 是普通字符
	m, _ = send(t, m, runes("i"))
	m, _ = send(t, m, runes("q"))
	if m.input.Value() != "q" {
		t.Fatalf("input=%q", m.input.Value())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.m != modeNormal {
		t.Fatalf("esc did not leave input mode")
	}
}

func TestBadStartFEN(t *testing.T) {
	cfg := config.Default()
	cfg.StartFEN = "9/9 w"
	if _, err := NewModel(cfg); err == nil {
		t.Fatalf("bad start fen accepted")
	}
}

func TestRenderBoard(t *testing.T) {
	b := xiangqi.NewBoard()
	out := RenderBoard(b, nil, false)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// 表头、上边框、10 行、河界、下边框
	if len(lines) != 14 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "10 | r  n  b  a  k  a  b  n  r |") {
		t.Fatalf("top rank %q", lines[2])
	}
	if !strings.HasPrefix(lines[12], " 1 | R  N  B  A  K  A  B  N  R |") {
		t.Fatalf("bottom rank %q", lines[12])
	}

	last := xiangqi.Move{From: xiangqi.Sq(9, 0), To: xiangqi.Sq(8, 0)}
	marked := RenderBoard(b, &last, false)
	if !strings.Contains(marked, " 1 |[R]") || !strings.Contains(marked, " 2 |[.]") {
		t.Fatalf("last move not marked:\n%s", marked)
	}
}

func TestGamesAndSwitch(t *testing.T) {
	m := newTestModel(t, "")
	first := m.session
	m, _ = enter(t, m, "h3e3")

	m, _ = enter(t, m, "new")
	if m.session == first || m.games.Len() != 2 {
		t.Fatalf("new did not register a second game (len=%d)", m.games.Len())
	}

	m, _ = enter(t, m, "games")
	var listed []string
	for _, ln := range m.logLines {
		if strings.Contains(ln, "to move") {
			listed = append(listed, ln)
		}
	}
	if len(listed) != 2 {
		t.Fatalf("games listed %d lines: %v", len(listed), listed)
	}

	m, _ = enter(t, m, "switch "+first.ID[:13])
	if m.session != first || m.session.Plies() != 1 {
		t.Fatalf("switch did not restore the first game")
	}
	if !strings.Contains(m.View(), shortID(first.ID)) {
		t.Fatalf("view does not show current game id")
	}

	m, _ = enter(t, m, "switch nope")
	if !strings.Contains(lastLog(m), "switch failed") || m.session != first {
		t.Fatalf("log %q", lastLog(m))
	}
}

func TestCloseGame(t *testing.T) {
	m := newTestModel(t, "")
	first := m.session
	m, _ = enter(t, m, "load 3k5/9/9/9/9/r8/9/9/9/3BKB3 b")
	loaded := m.session

	m, _ = enter(t, m, "close")
	if m.games.Len() != 1 || m.session != first {
		t.Fatalf("close current: len=%d current is first=%v", m.games.Len(), m.session == first)
	}
	if _, err := m.games.Get(loaded.ID); err == nil {
		t.Fatalf("closed game still registered")
	}

	// 关掉最后一局会自动开新局
	m, _ = enter(t, m, "close "+first.ID)
	if m.games.Len() != 1 || m.session == first {
		t.Fatalf("closing the last game left len=%d", m.games.Len())
	}
	if m.session.Plies() != 0 || m.session.Turn() != xiangqi.Red {
		t.Fatalf("replacement game is not a fresh opening")
	}
}

func TestLoadRejectsCapturableGeneral(t *testing.T) {
	m := newTestModel(t, "")
	m, _ = enter(t, m, "load n3k4/9/9/9/4R4/9/9/9/9/3K5 w")
	if !strings.Contains(lastLog(m), "load failed") || m.games.Len() != 1 {
		t.Fatalf("log %q len=%d", lastLog(m), m.games.Len())
	}
}
