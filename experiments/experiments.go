package experiments

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"nim/engine"
	"nim/experiments/metrics"
	"nim/game"
	"nim/player"
	"nim/searcher"
)

var ErrTooFewAgents = errors.New("need at least two agents")

// DepthConfigs returns the random baseline followed by minimax agents of depth
// 1 through maxDepth.
func DepthConfigs(maxDepth, goroutines int) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{{ID: 0, Depth: 0, Goroutines: 1}}
	for depth := 1; depth <= maxDepth; depth++ {
		configs = append(configs, metrics.AgentConfig{ID: depth, Depth: depth, Goroutines: goroutines})
	}
	return configs
}

// RunDepthMatchups plays one game from start for every ordered pair of
// distinct agents, so each pairing is played with both starting agents.
func RunDepthMatchups(
	ctx context.Context, start game.GameState, configs []metrics.AgentConfig, seed uint64,
) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	if len(configs) < 2 {
		return nil, nil, ErrTooFewAgents
	}

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	count := 0

	log.Info().Msgf("starting depth matchups for %d agents from %s", len(configs), start)

	for _, config1 := range configs {
		for _, config2 := range configs {
			if config1.ID == config2.ID {
				continue
			}
			count++
			log.Info().Msgf("starting game %d between %s and %s...", count, config1.Name(), config2.Name())

			agents := [2]metrics.AgentConfig{config1, config2}
			players := [2]player.Player{
				newPlayer(config1, seed+uint64(count)),
				newPlayer(config2, seed+uint64(count)+1),
			}
			e, err := engine.New(start, players, 0, nil)
			if err != nil {
				return nil, nil, err
			}

			result, err := e.Run(ctx)
			if err != nil {
				return nil, nil, fmt.Errorf("game %d failed: %w", count, err)
			}

			lastMover := -1
			if result.LastMover >= 0 {
				lastMover = agents[result.LastMover].ID
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				LastMover:  lastMover,
				Turns:      result.Turns,
				FinalScore: result.State.Score(),
				Verdict:    result.Verdict,
				Duration:   result.FinishTime.Sub(result.StartTime),
			})
			for _, record := range result.Records {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:     count,
					Step:     record.Turn,
					Agent:    agents[record.Player].ID,
					Move:     record.Move.String(),
					Nodes:    record.Metrics.Nodes,
					Cutoffs:  record.Metrics.Cutoffs,
					Duration: record.Metrics.Duration,
				})
			}

			log.Info().Msgf("completed game %d with final score %d", count, result.State.Score())
		}
	}

	log.Info().Msgf("completed %d games", count)
	return gameRecords, moveRecords, nil
}

func newPlayer(config metrics.AgentConfig, seed uint64) player.Player {
	if config.Depth == 0 {
		return player.NewRandom(config.Name(), seed)
	}
	return player.NewComputer(config.Name(), searcher.NewMinimax(
		searcher.WithDepth(config.Depth),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	))
}

// Report writes the agent configs, game records and move records as CSV.
func Report(w *metrics.Writer, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	if err := w.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := w.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := w.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	return nil
}
