package tui

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"xiangqi/internal/config"
)

func Run(cfg config.Config) error {
	// 全屏界面占用 stdout，日志只能写文件
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "xiangqi")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
