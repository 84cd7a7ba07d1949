package allocator

// AllocationStatistics summarizes one completed allocation run (spec
// §4.5, §6 "statistics record").
type AllocationStatistics struct {
	StrategyName    string
	SatisfactionRate float64
	FirstChoiceRate  float64
	HighRankRate     float64
	AverageChoice    float64
	UnallocatedRate  float64
	NumSteps         int
}

// highRankThreshold is the 1-indexed rank at or above which a placement
// counts toward HighRankRate (spec §4.5: "rank >= 4").
const highRankThreshold = 4

// ComputeStatistics derives AllocationStatistics from a completed Result
// against the courses that were run through the allocator (their
// Preferences must be the final lists the matcher actually saw) and the
// rooms it ran against.
func ComputeStatistics(strategyName string, result *Result, rooms []*Room, courses []*Course) AllocationStatistics {
	roomType := make(map[string]RoomType, len(rooms))
	for _, r := range rooms {
		roomType[r.Name] = r.Type
	}

	total := len(courses)
	if total == 0 {
		return AllocationStatistics{StrategyName: strategyName, NumSteps: len(result.Steps)}
	}

	placed := 0
	firstChoice := 0
	highRank := 0
	rankSum := 0

	for _, c := range courses {
		roomName, ok := result.Assignments[c.Name]
		if !ok {
			continue
		}
		placed++
		rank := placementRank(roomType[roomName], c.Preferences)
		if rank == 1 {
			firstChoice++
		}
		if rank >= highRankThreshold {
			highRank++
		}
		rankSum += rank
	}

	stats := AllocationStatistics{
		StrategyName:     strategyName,
		SatisfactionRate: float64(placed) / float64(total),
		FirstChoiceRate:  float64(firstChoice) / float64(total),
		HighRankRate:     float64(highRank) / float64(total),
		UnallocatedRate:  float64(total-placed) / float64(total),
		NumSteps:         len(result.Steps),
	}
	if placed > 0 {
		stats.AverageChoice = float64(rankSum) / float64(placed)
	}
	return stats
}

// placementRank returns the 1-indexed position of t within prefs, or 0 if
// absent (which should not happen for a course the matcher actually
// placed, since it only installs courses into types drawn from prefs).
func placementRank(t RoomType, prefs []RoomType) int {
	for i, p := range prefs {
		if p == t {
			return i + 1
		}
	}
	return 0
}
