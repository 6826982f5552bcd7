package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const FileName = "xiangqi.json"

// Config 是命令行程序共用的配置，可以来自 JSON 文件和 XIANGQI_* 环境变量
type Config struct {
	// 开局局面，空表示标准开局
	StartFEN string `json:"start_fen"`
	// TUI 日志文件，空表示不写日志
	LogFile string `json:"log_file"`
	// 是否启用 lipgloss 彩色棋盘
	Color bool `json:"color"`

	// 分析/自对弈
	Workers    int   `json:"workers"`
	PerftDepth int   `json:"perft_depth"`
	Games      int   `json:"games"`
	MaxPlies   int   `json:"max_plies"`
	Seed       int64 `json:"seed"`
}

func Default() Config {
	return Config{
		Color:      true,
		Workers:    0,
		PerftDepth: 3,
		Games:      10,
		MaxPlies:   300,
		Seed:       1,
	}
}

// FindPath 从当前目录向上找 xiangqi.json
func FindPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found from %s", FileName, cwd)
}

// Load 读取 JSON 配置，文件里没写的字段保持默认值
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv 用 XIANGQI_* 环境变量覆盖 cfg
func FromEnv(cfg Config) Config {
	cfg.StartFEN = getenv("XIANGQI_FEN", cfg.StartFEN)
	cfg.LogFile = getenv("XIANGQI_LOG", cfg.LogFile)
	cfg.Color = getenb("XIANGQI_COLOR", cfg.Color)
	cfg.Workers = getenvInt("XIANGQI_WORKERS", cfg.Workers)
	cfg.PerftDepth = getenvInt("XIANGQI_PERFT_DEPTH", cfg.PerftDepth)
	cfg.Games = getenvInt("XIANGQI_GAMES", cfg.Games)
	cfg.MaxPlies = getenvInt("XIANGQI_MAX_PLIES", cfg.MaxPlies)
	if v := os.Getenv("XIANGQI_SEED"); v != "" {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			cfg.Seed = n
		}
	}
	return cfg
}

// Resolve 组合默认值、配置文件和环境变量。
// path 为空时向上查找 xiangqi.json，找不到就只用默认值。
func Resolve(path string) (Config, error) {
	if path == "" {
		found, err := FindPath()
		if err != nil {
			return FromEnv(Default()), nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return cfg, err
	}
	return FromEnv(cfg), nil
}

var (
	ErrWorkers    = errors.New("workers must be >= 0")
	ErrPerftDepth = errors.New("perft depth must be between 0 and 8")
	ErrGames      = errors.New("games must be >= 1")
	ErrMaxPlies   = errors.New("max plies must be >= 1")
)

func (c Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, ErrWorkers)
	}
	if c.PerftDepth < 0 || c.PerftDepth > 8 {
		errs = append(errs, ErrPerftDepth)
	}
	if c.Games < 1 {
		errs = append(errs, ErrGames)
	}
	if c.MaxPlies < 1 {
		errs = append(errs, ErrMaxPlies)
	}
	return errors.Join(errs...)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}
