package main

import (
	"flag"
	"log"
	"os"

	"xiangqi/internal/config"
	"xiangqi/internal/tui"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("XIANGQI_CONFIG"), "path to xiangqi.json (default: search upward from cwd)")
	fen := flag.String("fen", "", "start position, empty for the standard opening")
	logFile := flag.String("log", "", "write logs to this file")
	noColor := flag.Bool("no-color", false, "plain board without colors")
	flag.Parse()

	cfg, err := config.Resolve(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *fen != "" {
		cfg.StartFEN = *fen
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *noColor {
		cfg.Color = false
	}

	if err := tui.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
