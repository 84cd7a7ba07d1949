package allocator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Strategy generates a duplicate-free, length-capped preference list for a
// course. Implementations must be deterministic given the same rng state
// (spec §4.2) — the rng is always an explicit parameter, never a hidden
// field, so seeded reproducibility is a property of the call site.
type Strategy interface {
	// Identifier is of the form "<name>_<k>", used to tag statistics.
	Identifier() string
	GeneratePreferences(course *Course, rng *rand.Rand) []RoomType
}

// shuffledTypes returns a fresh, rng-shuffled copy of types.
func shuffledTypes(types []RoomType, rng *rand.Rand) []RoomType {
	out := make([]RoomType, len(types))
	copy(out, types)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func capList(types []RoomType, k int) []RoomType {
	if k < len(types) {
		return types[:k]
	}
	return types
}

// UniformRandomStrategy shuffles all room types and takes the first k,
// ignoring course size entirely.
type UniformRandomStrategy struct {
	K int
}

func NewUniformRandomStrategy(k int) *UniformRandomStrategy {
	return &UniformRandomStrategy{K: k}
}

func (s *UniformRandomStrategy) Identifier() string {
	return fmt.Sprintf("uniform_random_%d", s.K)
}

func (s *UniformRandomStrategy) GeneratePreferences(_ *Course, rng *rand.Rand) []RoomType {
	return capList(shuffledTypes(allRoomTypes, rng), s.K)
}

// SizeBasedStrategy sorts types by |median(type) - (cohortSize + slack)|
// ascending and takes the first k. Ties break by enumeration order.
type SizeBasedStrategy struct {
	K     int
	Slack int

	medianByType map[RoomType]int
}

// NewSizeBasedStrategy precomputes the median capacity per room type.
// Slack defaults to 10 when <= 0 is given.
func NewSizeBasedStrategy(rooms []*Room, k int, slack int) *SizeBasedStrategy {
	if slack <= 0 {
		slack = 10
	}
	return &SizeBasedStrategy{K: k, Slack: slack, medianByType: medianCapacityByType(rooms)}
}

func (s *SizeBasedStrategy) Identifier() string {
	return fmt.Sprintf("size_based_%d", s.K)
}

func (s *SizeBasedStrategy) GeneratePreferences(course *Course, _ *rand.Rand) []RoomType {
	target := course.CohortSize + s.Slack
	types := AllRoomTypes()
	sort.SliceStable(types, func(i, j int) bool {
		di := distanceFromTarget(s.medianByType[types[i]], target)
		dj := distanceFromTarget(s.medianByType[types[j]], target)
		if di != dj {
			return di < dj
		}
		return roomTypeOrder(types[i]) < roomTypeOrder(types[j])
	})
	return capList(types, s.K)
}

func distanceFromTarget(median, target int) int {
	d := median - target
	if d < 0 {
		d = -d
	}
	return d
}

// SmartRandomStrategy filters types to those whose max room capacity can
// hold the course, shuffles the survivors, and takes the first k. If no
// type survives the filter it falls back to an unfiltered shuffle.
type SmartRandomStrategy struct {
	K int

	maxByType map[RoomType]int
}

func NewSmartRandomStrategy(rooms []*Room, k int) *SmartRandomStrategy {
	return &SmartRandomStrategy{K: k, maxByType: maxCapacityByType(rooms)}
}

func (s *SmartRandomStrategy) Identifier() string {
	return fmt.Sprintf("smart_random_%d", s.K)
}

func (s *SmartRandomStrategy) GeneratePreferences(course *Course, rng *rand.Rand) []RoomType {
	filtered := filterByMaxCapacity(s.maxByType, course.CohortSize)
	if len(filtered) == 0 {
		return capList(shuffledTypes(allRoomTypes, rng), s.K)
	}
	return capList(shuffledTypes(filtered, rng), s.K)
}

// satisfactionScore is a fixed, survey-derived desirability score per room
// type, independent of any course. Values are illustrative constants, not
// derived from live data.
var satisfactionScore = map[RoomType]float64{
	LectureHall:    0.60,
	Classroom:      0.50,
	Laboratory:     0.80,
	SeminarRoom:    0.55,
	ComputerLab:    0.75,
	Auditorium:     0.90,
	StudioRoom:     0.65,
	Workshop:       0.70,
	ConferenceRoom: 0.45,
	TutorialRoom:   0.50,
}

const satisfactionTemperature = 2.0

// SatisfactionWeightedStrategy filters types by max capacity, converts
// fixed survey scores into a softmax weighting, and samples without
// replacement proportionally to remaining weight until k items or the
// pool is exhausted.
type SatisfactionWeightedStrategy struct {
	K int

	maxByType map[RoomType]int
}

func NewSatisfactionWeightedStrategy(rooms []*Room, k int) *SatisfactionWeightedStrategy {
	return &SatisfactionWeightedStrategy{K: k, maxByType: maxCapacityByType(rooms)}
}

func (s *SatisfactionWeightedStrategy) Identifier() string {
	return fmt.Sprintf("satisfaction_weighted_%d", s.K)
}

func (s *SatisfactionWeightedStrategy) GeneratePreferences(course *Course, rng *rand.Rand) []RoomType {
	filtered := filterByMaxCapacity(s.maxByType, course.CohortSize)
	if len(filtered) == 0 {
		return nil
	}

	weights := make(map[RoomType]float64, len(filtered))
	maxExp := math.Inf(-1)
	for _, t := range filtered {
		e := satisfactionScore[t] * satisfactionTemperature
		if e > maxExp {
			maxExp = e
		}
	}
	for _, t := range filtered {
		weights[t] = math.Exp(satisfactionScore[t]*satisfactionTemperature - maxExp)
	}

	remaining := make([]RoomType, len(filtered))
	copy(remaining, filtered)

	out := make([]RoomType, 0, s.K)
	for len(out) < s.K && len(remaining) > 0 {
		total := 0.0
		for _, t := range remaining {
			total += weights[t]
		}
		pick := rng.Float64() * total
		idx := 0
		cum := 0.0
		for i, t := range remaining {
			cum += weights[t]
			if pick < cum {
				idx = i
				break
			}
			idx = i
		}
		out = append(out, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}
	return out
}

func medianCapacityByType(rooms []*Room) map[RoomType]int {
	byType := make(map[RoomType][]int)
	for _, r := range rooms {
		byType[r.Type] = append(byType[r.Type], r.Capacity)
	}
	out := make(map[RoomType]int, len(byType))
	for t, caps := range byType {
		sort.Ints(caps)
		out[t] = median(caps)
	}
	return out
}

func median(sorted []int) int {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func maxCapacityByType(rooms []*Room) map[RoomType]int {
	out := make(map[RoomType]int)
	for _, r := range rooms {
		if r.Capacity > out[r.Type] {
			out[r.Type] = r.Capacity
		}
	}
	return out
}

func filterByMaxCapacity(maxByType map[RoomType]int, cohortSize int) []RoomType {
	var out []RoomType
	for _, t := range allRoomTypes {
		if m, ok := maxByType[t]; ok && m >= cohortSize {
			out = append(out, t)
		}
	}
	return out
}
