package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"quoridor/agent"
	"quoridor/config"
	"quoridor/engine"
	"quoridor/game"
	"quoridor/record"
	"quoridor/render"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	players := flag.String("players", "", "Agent kinds of player 1 and 2, comma separated (random, pawn, manual)")
	games := flag.Int("games", 0, "Number of games to play")
	maxTurns := flag.Int("max-turns", 0, "Turn limit per game")
	seed := flag.Uint64("seed", 0, "Seed of the random agents")
	permissive := flag.Bool("permissive", false, "Skip the legal-set check when applying actions")
	metrics := flag.Bool("metrics", false, "Collect per-move metrics")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	outputDir := flag.String("output", "", "Directory for game records and snapshots")
	resume := flag.String("resume", "", "Snapshot to resume the first game from")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Flags set on the command line win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "players":
			cfg.Players = strings.Split(*players, ",")
		case "games":
			cfg.Games = *games
		case "max-turns":
			cfg.MaxTurns = *maxTurns
		case "seed":
			cfg.Seed = *seed
		case "permissive":
			cfg.Strict = !*permissive
		case "metrics":
			cfg.Metrics = *metrics
		case "log-level":
			cfg.LogLevel = *logLevel
		case "output":
			cfg.OutputDir = *outputDir
		case "resume":
			cfg.Resume = *resume
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid options")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

// run plays cfg.Games games and stores their records when an output
// directory is set.
func run(cfg config.Config, in io.Reader, out io.Writer) error {
	agents, err := buildAgents(cfg, in, out)
	if err != nil {
		return err
	}

	var resumed *record.Snapshot
	if cfg.Resume != "" {
		resumed, err = record.ReadSnapshot(cfg.Resume)
		if err != nil {
			return err
		}
		log.Info().Msgf("resuming game %s saved at %s", resumed.ID, resumed.SavedAt.Format(time.RFC3339))
	}

	var writer *record.Writer
	if cfg.OutputDir != "" {
		writer, err = record.NewWriter(cfg.OutputDir)
		if err != nil {
			return err
		}
	}

	gameRecords := []record.GameRecord{}
	moveRecords := []record.MoveRecord{}
	wins := map[game.Player]int{}

	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)

		options := []engine.Option{
			engine.WithStrict(cfg.Strict),
			engine.WithMaxTurns(cfg.MaxTurns),
		}
		if cfg.Metrics {
			options = append(options, engine.WithMetrics(game.EvaluatePathsAndWalls))
		}
		if i == 0 && resumed != nil {
			options = append(options, engine.WithState(&resumed.State), engine.WithID(resumed.ID))
		}
		e := engine.LocalEngine(agents, options...)

		gameMetric, moveMetrics, err := e.Run()
		if writer != nil {
			// The snapshot lets an interrupted or unfinished game be resumed
			if _, serr := writer.WriteSnapshot(e.ID, e.State); serr != nil {
				return serr
			}
		}
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		wins[gameMetric.Winner]++

		gameRecords = append(gameRecords, record.GameRecord{
			Game:       i + 1,
			Agent1:     cfg.Players[0],
			Agent2:     cfg.Players[1],
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, record.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		if hasManual(cfg) {
			if err := render.Text(out, e.State); err != nil {
				return err
			}
		}
		log.Info().Msgf("completed game %d with winner: %s", i+1, gameMetric.Winner)
	}

	log.Info().Msgf("player 1 won %d, player 2 won %d, %d unfinished", wins[game.Player1], wins[game.Player2], wins[game.NoPlayer])

	if writer == nil {
		return nil
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msg("stored move records")
	return nil
}

// buildAgents creates one agent per player. Two manual players share one
// reader, so they share one agent.
func buildAgents(cfg config.Config, in io.Reader, out io.Writer) ([]agent.Agent, error) {
	agents := make([]agent.Agent, len(cfg.Players))
	var manual agent.Agent
	for i, kind := range cfg.Players {
		kind = strings.TrimSpace(kind)
		if kind == agent.KindManual && manual != nil {
			agents[i] = manual
			continue
		}
		a, err := agent.New(kind, cfg.Seed+uint64(i), in, out)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		if kind == agent.KindManual {
			manual = a
		}
		agents[i] = a
	}
	return agents, nil
}

func hasManual(cfg config.Config) bool {
	for _, kind := range cfg.Players {
		if strings.TrimSpace(kind) == agent.KindManual {
			return true
		}
	}
	return false
}
