package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"xiangqi/internal/config"
	"xiangqi/internal/engine"
	"xiangqi/internal/game"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("XIANGQI_CONFIG"), "path to xiangqi.json (default: search upward from cwd)")
	games := flag.Int("games", 0, "number of random games (0: use config)")
	maxPlies := flag.Int("maxplies", 0, "ply limit per game (0: use config)")
	seed := flag.Int64("seed", 0, "random seed (0: use config)")
	perft := flag.Bool("perft", false, "run the perft benchmark instead of random games")
	depth := flag.Int("depth", -1, "perft depth (-1: use config)")
	workers := flag.Int("workers", -1, "perft workers (-1: use config, 0: NumCPU)")
	flag.Parse()

	cfg, err := config.Resolve(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *maxPlies > 0 {
		cfg.MaxPlies = *maxPlies
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *depth >= 0 {
		cfg.PerftDepth = *depth
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *perft {
		if err := runBenchmark(ctx, cfg); err != nil {
			log.Fatalf("perft: %v", err)
		}
		return
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	results := map[game.State]int{}
	totalPlies := 0
	start := time.Now()

	for g := 0; g < cfg.Games; g++ {
		s, err := newGame(cfg.StartFEN)
		if err != nil {
			log.Fatalf("start position: %v", err)
		}
		state, plies, err := engine.PlayRandom(ctx, s, rng, cfg.MaxPlies)
		if err != nil {
			log.Printf("game %d stopped: %v", g+1, err)
			break
		}
		results[state]++
		totalPlies += plies
		fmt.Printf("Game %d: %v after %d plies, final %s\n", g+1, state, plies, s.FEN())
	}

	fmt.Printf("\n=== Results (%v) ===\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("RED_WON:    %d\n", results[game.RedWon])
	fmt.Printf("BLACK_WON:  %d\n", results[game.BlackWon])
	fmt.Printf("UNFINISHED: %d\n", results[game.Unfinished])
	fmt.Printf("Plies:      %d\n", totalPlies)
}

func newGame(fen string) (*game.Session, error) {
	if fen == "" {
		return game.NewSession(), nil
	}
	return game.NewSessionFromFEN(fen)
}
