package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xiangqi/internal/xiangqi"
)

var (
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	riverStyle = lipgloss.NewStyle().Faint(true)
)

// RenderBoard 画出棋盘，黑方在上。最近一步的起点和终点用方括号标出。
// 行号按记谱法 10..1，列为 a..i。
func RenderBoard(b *xiangqi.Board, last *xiangqi.Move, color bool) string {
	var sb strings.Builder
	sb.WriteString("     a  b  c  d  e  f  g  h  i\n")
	sb.WriteString("   +---------------------------+\n")

	for r := 0; r < xiangqi.Rows; r++ {
		if r == xiangqi.RiverRow {
			line := "   |        ~~  river  ~~      |"
			if color {
				line = riverStyle.Render(line)
			}
			sb.WriteString(line + "\n")
		}
		rank := xiangqi.Rows - r
		if rank < 10 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(rank))
		sb.WriteString(" |")
		for c := 0; c < xiangqi.Cols; c++ {
			sq := xiangqi.Sq(r, c)
			marked := last != nil && (last.From == sq || last.To == sq)
			sb.WriteString(cell(b, sq, marked, color))
		}
		sb.WriteString("|\n")
	}

	sb.WriteString("   +---------------------------+\n")
	return sb.String()
}

// cell 固定 3 个字符宽
func cell(b *xiangqi.Board, sq xiangqi.Square, marked, color bool) string {
	pc, ok := b.Occupant(sq)
	s := "."
	if ok {
		s = string(pc.Letter())
		if color {
			if pc.Side == xiangqi.Red {
				s = redStyle.Render(s)
			} else {
				s = blackStyle.Render(s)
			}
		}
	}
	if marked {
		return "[" + s + "]"
	}
	return " " + s + " "
}
