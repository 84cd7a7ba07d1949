package allocator

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationConfig owns the parameters a Collector drives the simulator
// with for every trial (spec §4.6, §6 "Configuration of the collector").
type SimulationConfig struct {
	NumSimulations int
	NumCourses     int
	MinSize        int
	MaxSize        int
	ChangeSize     int
	Seed           *int64 // nil means an unseeded, non-reproducible run
}

// Validate checks the invariants spec §6 places on collector configuration.
func (cfg SimulationConfig) Validate() error {
	if cfg.NumSimulations < 1 {
		return invalidInputf("numSimulations must be >= 1, got %d", cfg.NumSimulations)
	}
	if !(cfg.MinSize <= cfg.ChangeSize && cfg.ChangeSize <= cfg.MaxSize) {
		return invalidInputf("sizes must satisfy minSize <= changeSize <= maxSize, got %d/%d/%d",
			cfg.MinSize, cfg.ChangeSize, cfg.MaxSize)
	}
	return nil
}

// TrialStatistics tags one AllocationStatistics with the strategy and
// trial index that produced it.
type TrialStatistics struct {
	StrategyIdentifier string
	TrialIndex         int
	Statistics         AllocationStatistics
}

// CollectorResult is the full output of a Collector.Run: every trial plus
// the per-strategy averages across all its trials.
type CollectorResult struct {
	Trials   []TrialStatistics
	Averages map[string]AllocationStatistics
}

// Collector drives the simulator and allocator across many seeded trials
// for a registered set of strategies (spec §4.6).
type Collector struct {
	Rooms      []*Room
	Config     SimulationConfig
	Strategies []Strategy
}

// NewCollector builds a Collector over a fixed room list and simulation
// configuration. Strategies are registered afterward with Register.
func NewCollector(rooms []*Room, config SimulationConfig) *Collector {
	return &Collector{Rooms: rooms, Config: config}
}

// Register adds a strategy to the set the collector compares.
func (c *Collector) Register(s Strategy) {
	c.Strategies = append(c.Strategies, s)
}

// Run executes NumSimulations trials for every registered strategy,
// deriving a deterministic per-trial seed from the base seed, trial
// index, and strategy identifier (spec §4.6). It surfaces the first
// input-validation failure (bad config or bad room list) and otherwise
// never fails, since the allocator itself never aborts mid-run.
func (c *Collector) Run() (*CollectorResult, error) {
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	if err := validateRooms(c.Rooms); err != nil {
		return nil, err
	}

	var baseSeed int64
	if c.Config.Seed != nil {
		baseSeed = *c.Config.Seed
	} else {
		baseSeed = rand.Int63()
	}

	var trials []TrialStatistics
	sums := make(map[string]AllocationStatistics)
	counts := make(map[string]int)

	for i := 0; i < c.Config.NumSimulations; i++ {
		for _, strategy := range c.Strategies {
			id := strategy.Identifier()
			seed := deriveTrialSeed(baseSeed, i, id)
			rng := rand.New(rand.NewSource(seed))

			courses := SimulateCourses(c.Config.NumCourses, c.Config.MinSize, c.Config.MaxSize, c.Config.ChangeSize, strategy, rng)

			result, err := Allocate(c.Rooms, courses)
			if err != nil {
				return nil, err
			}
			stats := ComputeStatistics(id, result, c.Rooms, courses)

			trials = append(trials, TrialStatistics{StrategyIdentifier: id, TrialIndex: i, Statistics: stats})
			sums[id] = addStatistics(sums[id], stats)
			counts[id]++
		}
	}

	averages := make(map[string]AllocationStatistics, len(sums))
	for id, sum := range sums {
		averages[id] = averageStatistics(id, sum, counts[id])
	}

	return &CollectorResult{Trials: trials, Averages: averages}, nil
}

// deriveTrialSeed hashes the base seed, trial index, and strategy
// identifier into a single int64, so every (seed, i, strategy) triple
// maps to the same reproducible trial seed (spec §4.6, §7 determinism).
func deriveTrialSeed(base int64, i int, identifier string) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%d:%s", base, i, identifier)
	return int64(h.Sum64())
}

func addStatistics(sum AllocationStatistics, s AllocationStatistics) AllocationStatistics {
	sum.SatisfactionRate += s.SatisfactionRate
	sum.FirstChoiceRate += s.FirstChoiceRate
	sum.HighRankRate += s.HighRankRate
	sum.AverageChoice += s.AverageChoice
	sum.UnallocatedRate += s.UnallocatedRate
	sum.NumSteps += s.NumSteps
	return sum
}

func averageStatistics(strategyName string, sum AllocationStatistics, n int) AllocationStatistics {
	if n == 0 {
		return AllocationStatistics{StrategyName: strategyName}
	}
	return AllocationStatistics{
		StrategyName:     strategyName,
		SatisfactionRate: sum.SatisfactionRate / float64(n),
		FirstChoiceRate:  sum.FirstChoiceRate / float64(n),
		HighRankRate:     sum.HighRankRate / float64(n),
		AverageChoice:    sum.AverageChoice / float64(n),
		UnallocatedRate:  sum.UnallocatedRate / float64(n),
		NumSteps:         sum.NumSteps / n,
	}
}
