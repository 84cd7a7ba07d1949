package runs

import (
	"time"

	"RoomAllocator/internal/allocator"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RunRecord is one persisted allocator.Allocate invocation.
type RunRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	RequestedBy string             `bson:"requested_by"`
	RoomNames   []string           `bson:"room_names"`
	CourseNames []string           `bson:"course_names"`
	Export      allocator.Export   `bson:"export"`
	Unplaceable []string           `bson:"unplaceable"`
}

// TrialRecord is one collector trial, tagged with the strategy and trial
// index that produced it (spec §4.6).
type TrialRecord struct {
	StrategyIdentifier string                          `bson:"strategy_identifier"`
	TrialIndex         int                             `bson:"trial_index"`
	Statistics         allocator.AllocationStatistics `bson:"statistics"`
}

// SimulationRecord is one persisted allocator.Collector invocation,
// grouping every trial plus the per-strategy averages.
type SimulationRecord struct {
	ID         primitive.ObjectID                        `bson:"_id,omitempty"`
	CreatedAt  time.Time                                  `bson:"created_at"`
	Config     allocator.SimulationConfig                 `bson:"config"`
	Strategies []StrategyRequest                          `bson:"strategies"`
	Trials     []TrialRecord                              `bson:"trials"`
	Averages   map[string]allocator.AllocationStatistics  `bson:"averages"`
}

// StrategyRequest names and sizes one strategy to register with the
// collector for a simulation request (spec §6 "Configuration of the
// collector").
type StrategyRequest struct {
	Kind  string `json:"kind"` // "uniform_random", "size_based", "smart_random", "satisfaction_weighted"
	K     int    `json:"k"`
	Slack int    `json:"slack"` // only used by size_based
}

// AllocationRequest is the body of POST /api/allocations.
type AllocationRequest struct {
	RoomNames   []string `json:"roomNames"`
	CourseNames []string `json:"courseNames"`
}

// SimulationRequest is the body of POST /api/simulations.
type SimulationRequest struct {
	NumSimulations int               `json:"numSimulations"`
	NumCourses     int               `json:"numCourses"`
	MinSize        int               `json:"minSize"`
	MaxSize        int               `json:"maxSize"`
	ChangeSize     int               `json:"changeSize"`
	Seed           *int64            `json:"seed"`
	Strategies     []StrategyRequest `json:"strategies"`
}
