package metrics

import (
	"fmt"
	"time"
)

// AgentConfig describes one computer player. Depth 0 is the random baseline.
type AgentConfig struct {
	ID         int
	Depth      int
	Goroutines int
}

func (c AgentConfig) Name() string {
	if c.Depth == 0 {
		return "random"
	}
	return fmt.Sprintf("minimax-d%d", c.Depth)
}

type GameRecord struct {
	ID         int
	Agent1     int // AgentConfig.ID, moves first
	Agent2     int // AgentConfig.ID
	LastMover  int // AgentConfig.ID of the player who emptied a pile, -1 if none
	Turns      int
	FinalScore int
	Verdict    string
	Duration   time.Duration
}

type MoveRecord struct {
	Game     int // GameRecord.ID
	Step     int
	Agent    int // AgentConfig.ID
	Move     string
	Nodes    int64
	Cutoffs  int64
	Duration time.Duration
}
