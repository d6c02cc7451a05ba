package searcher

import "time"

// SearchMetric summarizes one minimax search.
type SearchMetric struct {
	Depth    int
	Nodes    int
	Leaves   int
	Cutoffs  int
	Duration time.Duration
}

// Collector gathers search statistics. The searcher is single-threaded, so a
// collector needs no synchronization.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	nodes     int
	leaves    int
	cutoffs   int
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	*c = collector{depth: depth, startTime: time.Now()}
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddLeaf() {
	c.leaves++
}

func (c *collector) AddCutoff() {
	c.cutoffs++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Nodes:    c.nodes,
		Leaves:   c.leaves,
		Cutoffs:  c.cutoffs,
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(depth int)        {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
