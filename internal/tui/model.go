package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/config"
	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

const maxLogLines = 200

type Model struct {
	games    *game.Manager
	session  *game.Session
	startFEN string
	color    bool

	m        mode
	input    textinput.Model
	logLines []string

	width  int
	height int
}

// NewModel 按配置开一局；StartFEN 非法时返回错误
func NewModel(cfg config.Config) (Model, error) {
	ti := textinput.New()
	ti.Placeholder = "h3e3 / moves / new / load <fen> / games / switch <id>"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 60

	games := game.NewManager()
	s, err := newGame(games, cfg.StartFEN)
	if err != nil {
		return Model{}, err
	}
	return Model{
		games:    games,
		session:  s,
		startFEN: cfg.StartFEN,
		color:    cfg.Color,
		m:        modeNormal,
		input:    ti,
		logLines: []string{
			"ready (press i to input a move or command)",
		},
	}, nil
}

func newGame(games *game.Manager, fen string) (*game.Session, error) {
	if strings.TrimSpace(fen) == "" {
		return games.NewGame(), nil
	}
	return games.NewGameFromFEN(fen)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(80, max(30, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch m.m {
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				return m, tea.Quit
			case "i", "enter":
				m.m = modeInput
				m.input.SetValue("")
				return m, m.input.Focus()
			}
			return m, nil

		case modeInput:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.m = modeNormal
				m.input.Blur()
				return m, nil
			case "enter":
				line := strings.TrimSpace(m.input.Value())
				m.input.SetValue("")
				m.m = modeNormal
				m.input.Blur()
				if line == "" {
					return m, nil
				}
				if m.execCommand(line) {
					return m, tea.Quit
				}
				return m, nil
			}

			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// execCommand 执行一行输入，返回 true 表示退出
func (m *Model) execCommand(line string) bool {
	m.appendLog("> " + line)

	parts := strings.Fields(line)
	switch strings.ToLower(parts[0]) {
	case "quit", "exit":
		return true

	case "new":
		s, err := newGame(m.games, m.startFEN)
		if err != nil {
			m.appendLog(fmt.Sprintf("new failed: %v", err))
			return false
		}
		m.session = s
		m.appendLog("new game " + shortID(s.ID))

	case "load":
		if len(parts) < 2 {
			m.appendLog("usage: load <fen>")
			return false
		}
		s, err := m.games.NewGameFromFEN(strings.Join(parts[1:], " "))
		if err != nil {
			m.appendLog(fmt.Sprintf("load failed: %v", err))
			return false
		}
		m.session = s
		m.appendLog("position loaded as game " + shortID(s.ID))
		m.logResult()

	case "games":
		m.listGames()

	case "switch":
		if len(parts) < 2 {
			m.appendLog("usage: switch <id>")
			return false
		}
		s, err := m.games.Lookup(parts[1])
		if err != nil {
			m.appendLog(fmt.Sprintf("switch failed: %v", err))
			return false
		}
		m.session = s
		m.appendLog("switched to game " + shortID(s.ID))

	case "close":
		m.closeGame(parts[1:])

	case "fen":
		m.appendLog(m.session.FEN())

	case "moves":
		m.listMoves(parts[1:])

	default:
		m.playMove(line)
	}
	return false
}

func (m *Model) playMove(line string) {
	mv, err := xiangqi.ParseMove(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("unknown command or move: %v", err))
		return
	}
	mover := m.session.Turn()
	if err := m.session.Play(mv); err != nil {
		m.appendLog(fmt.Sprintf("move failed: %v", err))
		return
	}
	m.appendLog(fmt.Sprintf("%v %v", mover, mv))
	if opp := mover.Opposite(); m.session.IsInCheck(opp) {
		m.appendLog(fmt.Sprintf("%v in check", opp))
	}
	m.logResult()
}

func (m *Model) listMoves(args []string) {
	var moves []xiangqi.Move
	if len(args) == 0 {
		moves = m.session.LegalMoves()
	} else {
		from, err := xiangqi.ParseSquare(args[0])
		if err != nil {
			m.appendLog(fmt.Sprintf("moves: %v", err))
			return
		}
		if m.session.State() == game.Unfinished {
			moves = m.session.Board().LegalMovesFrom(m.session.Turn(), from)
		}
	}
	if len(moves) == 0 {
		m.appendLog("no legal moves")
		return
	}
	strs := make([]string, len(moves))
	for i, mv := range moves {
		strs[i] = mv.String()
	}
	m.appendLog(fmt.Sprintf("%d moves: %s", len(moves), strings.Join(strs, " ")))
}

func (m *Model) listGames() {
	ids := m.games.IDs()
	m.appendLog(fmt.Sprintf("%d games", m.games.Len()))
	for _, id := range ids {
		s, err := m.games.Get(id)
		if err != nil {
			continue
		}
		cur := " "
		if s == m.session {
			cur = "*"
		}
		m.appendLog(fmt.Sprintf("%s %s  %v  %v to move  %d plies  %s",
			cur, shortID(id), s.State(), s.Turn(), s.Plies(), s.UpdatedAt().Format("15:04:05")))
	}
}

// closeGame 关闭一局；关掉当前局时切到最近创建的另一局，没有就开新局
func (m *Model) closeGame(args []string) {
	target := m.session
	if len(args) > 0 {
		s, err := m.games.Lookup(args[0])
		if err != nil {
			m.appendLog(fmt.Sprintf("close failed: %v", err))
			return
		}
		target = s
	}
	if err := m.games.Remove(target.ID); err != nil {
		m.appendLog(fmt.Sprintf("close failed: %v", err))
		return
	}
	m.appendLog("closed game " + shortID(target.ID))
	if target != m.session {
		return
	}

	if ids := m.games.IDs(); len(ids) > 0 {
		if s, err := m.games.Get(ids[len(ids)-1]); err == nil {
			m.session = s
			m.appendLog("switched to game " + shortID(s.ID))
			return
		}
	}
	s, err := newGame(m.games, m.startFEN)
	if err != nil {
		s = m.games.NewGame()
	}
	m.session = s
	m.appendLog("new game " + shortID(s.ID))
}

func (m *Model) logResult() {
	if st := m.session.State(); st != game.Unfinished {
		m.appendLog(fmt.Sprintf("game over: %v", st))
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[len(m.logLines)-maxLogLines:]
	}
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	modeStr := "NORMAL"
	if m.m == modeInput {
		modeStr = "INPUT"
	}
	status := fmt.Sprintf("%v to move", m.session.Turn())
	if st := m.session.State(); st != game.Unfinished {
		status = st.String()
	} else if m.session.IsInCheck(m.session.Turn()) {
		status += " (check)"
	}
	header := titleStyle.Render(fmt.Sprintf("xiangqi  game %s (%d open)  [%s]  mode:%s",
		shortID(m.session.ID), m.games.Len(), status, modeStr))

	var last *xiangqi.Move
	if mv, ok := m.session.LastMove(); ok {
		last = &mv
	}
	boardBox := boxStyle.Render(RenderBoard(m.session.Board(), last, m.color))

	logHeight := max(5, m.height-20)
	logStart := max(0, len(m.logLines)-logHeight)
	logBody := strings.Join(m.logLines[logStart:], "\n")
	logBox := boxStyle.Width(max(20, m.width-2)).Height(logHeight).Render(logBody)

	var inputLine string
	if m.m == modeInput {
		inputLine = m.input.View()
	} else {
		inputLine = "press i to enter a move, q to quit"
	}
	inputBox := boxStyle.Width(max(20, m.width-2)).Render(inputLine)

	return header + "\n" + boardBox + "\n" + logBox + "\n" + inputBox + "\n"
}
