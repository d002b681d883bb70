package metrics

import (
	"sync/atomic"
	"time"
)

type AgentConfig struct {
	ID      int
	Depth   int
	Explore bool // run the exploratory recursion below each candidate move
}

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // positions expanded, root included
	Cutoffs  int // branches stopped by the depth bound
}

type MoveMetric struct {
	Step     int
	Player   int // Player index
	House    int
	Captured int // seeds banked by the move, sweeps included
	SearchMetric
}

type GameMetric struct {
	Match          string
	StartingPlayer int
	Winner         int // game.NoPlayer on a draw or an unfinished game
	Drawn          bool
	Scores         [2]int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.depth = depth
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
