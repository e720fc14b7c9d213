package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Writer renders experiment results as CSV tables separated by blank lines.
type Writer struct {
	out     io.Writer
	written bool
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Name(),
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Goroutines),
		})
	}
	return w.writeTable("agent configs", []string{"id", "name", "depth", "goroutines"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.LastMover),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.FinalScore),
			record.Verdict,
			record.Duration.String(),
		})
	}
	header := []string{"id", "agent1", "agent2", "last_mover", "turns", "final_score", "verdict", "duration"}
	return w.writeTable("game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Agent),
			record.Move,
			strconv.FormatInt(record.Nodes, 10),
			strconv.FormatInt(record.Cutoffs, 10),
			record.Duration.String(),
		})
	}
	header := []string{"game", "step", "agent", "move", "nodes", "cutoffs", "duration"}
	return w.writeTable("move records", header, rows)
}

func (w *Writer) writeTable(name string, header []string, rows [][]string) error {
	if w.written {
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return fmt.Errorf("failed to separate %s: %w", name, err)
		}
	}
	w.written = true

	writer := csv.NewWriter(w.out)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
