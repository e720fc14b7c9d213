package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Depth     int
	Nodes     int64 // Positions visited, root children included
	Cutoffs   int64 // Times the remaining siblings were skipped
}

type MetricsCollector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime time.Time
	depth     int
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Depth:     m.depth,
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

var noMetrics MetricsCollector = noMetricsCollector{}

func (noMetricsCollector) Start(int)             {}
func (noMetricsCollector) AddNode()              {}
func (noMetricsCollector) AddCutoff()            {}
func (noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
