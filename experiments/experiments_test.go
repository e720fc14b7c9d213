package experiments

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"nim/experiments/metrics"
	"nim/game"
)

func TestDepthConfigs(t *testing.T) {
	configs := DepthConfigs(2, 4)

	require.Equal(t, []metrics.AgentConfig{
		{ID: 0, Depth: 0, Goroutines: 1},
		{ID: 1, Depth: 1, Goroutines: 4},
		{ID: 2, Depth: 2, Goroutines: 4},
	}, configs)
	require.Equal(t, "random", configs[0].Name())
	require.Equal(t, "minimax-d2", configs[2].Name())
}

func TestRunDepthMatchups(t *testing.T) {
	t.Run("plays both orders of every pairing", func(t *testing.T) {
		configs := []metrics.AgentConfig{
			{ID: 1, Depth: 1, Goroutines: 1},
			{ID: 2, Depth: 2, Goroutines: 2},
		}

		games, moves, err := RunDepthMatchups(context.Background(), game.NewGame(3, 3, game.Standard, 1), configs, 1)

		require.NoError(t, err)
		require.Len(t, games, 2)

		require.Equal(t, 1, games[0].Agent1)
		require.Equal(t, 2, games[0].Agent2)
		require.Equal(t, 2, games[0].Turns)
		require.Equal(t, 2, games[0].LastMover)
		require.Equal(t, 9, games[0].FinalScore)
		require.Equal(t, "Game over! You lose.", games[0].Verdict)

		require.Equal(t, 2, games[1].Agent1)
		require.Equal(t, 1, games[1].Agent2)
		require.Equal(t, 6, games[1].FinalScore)

		require.Len(t, moves, 4)
		require.Equal(t, []string{"1r", "2r", "1b", "2b"},
			[]string{moves[0].Move, moves[1].Move, moves[2].Move, moves[3].Move})
		require.Equal(t, []int{1, 2, 2, 1},
			[]int{moves[0].Agent, moves[1].Agent, moves[2].Agent, moves[3].Agent})
		for _, move := range moves {
			require.Positive(t, move.Nodes)
		}
	})

	t.Run("includes the random baseline", func(t *testing.T) {
		games, moves, err := RunDepthMatchups(context.Background(), game.NewGame(4, 4, game.Misere, 1), DepthConfigs(2, 1), 7)

		require.NoError(t, err)
		require.Len(t, games, 6)
		for _, g := range games {
			require.NotEqual(t, g.Agent1, g.Agent2)
			require.Positive(t, g.Turns)
			require.Equal(t, "Game over! You win.", g.Verdict)
		}
		for _, move := range moves {
			if move.Agent == 0 {
				require.Zero(t, move.Nodes, "The random baseline does not search")
			}
		}
	})

	t.Run("needs two agents", func(t *testing.T) {
		_, _, err := RunDepthMatchups(context.Background(), game.NewGame(3, 3, game.Standard, 1), DepthConfigs(0, 1), 1)

		require.ErrorIs(t, err, ErrTooFewAgents)
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := RunDepthMatchups(ctx, game.NewGame(3, 3, game.Standard, 1), DepthConfigs(1, 1), 1)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	w := metrics.NewWriter(&out)

	err := Report(w,
		[]metrics.AgentConfig{{ID: 1, Depth: 3, Goroutines: 2}},
		[]metrics.GameRecord{{ID: 1, Agent1: 1, Agent2: 0, LastMover: 1, Turns: 3, FinalScore: 21, Verdict: "Game over! You lose."}},
		[]metrics.MoveRecord{{Game: 1, Step: 1, Agent: 1, Move: "1r", Nodes: 40, Cutoffs: 5}},
	)

	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"id,name,depth,goroutines",
		"1,minimax-d3,3,2",
		"",
		"id,agent1,agent2,last_mover,turns,final_score,verdict,duration",
		"1,1,0,1,3,21,Game over! You lose.,0s",
		"",
		"game,step,agent,move,nodes,cutoffs,duration",
		"1,1,1,1r,40,5,0s",
		"",
	}, "\n"), out.String())
}
