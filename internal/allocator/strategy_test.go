package allocator

import (
	"math/rand"
	"testing"
)

func TestSizeBasedStrategy_PrefersCorrectlySizedType(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 80, Type: LectureHall}, // median(LectureHall) = 80
		{Name: "R2", Capacity: 30, Type: Classroom},    // median(Classroom) = 30
	}
	// k covers all ten types: types with no rooms rank at median 0, which
	// (|0-35|=35) sorts them ahead of LectureHall (|80-35|=45).
	strategy := NewSizeBasedStrategy(rooms, 10, 10)
	course := &Course{Name: "C1", CohortSize: 25}

	prefs := strategy.GeneratePreferences(course, nil)

	posClassroom, posLecture := indexOf(prefs, Classroom), indexOf(prefs, LectureHall)
	if posClassroom == -1 || posLecture == -1 {
		t.Fatalf("expected both types present, got %v", prefs)
	}
	if posClassroom >= posLecture {
		t.Fatalf("expected Classroom before LectureHall, got %v", prefs)
	}
}

func TestUniformRandomStrategy_CapsAtK(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	strategy := NewUniformRandomStrategy(4)
	prefs := strategy.GeneratePreferences(&Course{Name: "C1", CohortSize: 10}, rng)
	if len(prefs) != 4 {
		t.Fatalf("expected 4 preferences, got %d", len(prefs))
	}
	assertNoDuplicates(t, prefs)
}

func TestSmartRandomStrategy_FiltersByMaxCapacity(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 20, Type: LectureHall},
		{Name: "R2", Capacity: 100, Type: Auditorium},
	}
	strategy := NewSmartRandomStrategy(rooms, 5)
	rng := rand.New(rand.NewSource(2))

	prefs := strategy.GeneratePreferences(&Course{Name: "C1", CohortSize: 50}, rng)
	if indexOf(prefs, LectureHall) != -1 {
		t.Fatalf("expected LectureHall (max capacity 20) filtered out for a 50-seat course, got %v", prefs)
	}
}

func TestSmartRandomStrategy_FallsBackWhenNothingFits(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 10, Type: LectureHall}}
	strategy := NewSmartRandomStrategy(rooms, 3)
	rng := rand.New(rand.NewSource(3))

	prefs := strategy.GeneratePreferences(&Course{Name: "C1", CohortSize: 500}, rng)
	if len(prefs) != 3 {
		t.Fatalf("expected fallback to unfiltered shuffle of size 3, got %d", len(prefs))
	}
}

func TestSatisfactionWeightedStrategy_OnlyIncludesFittingTypes(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 20, Type: LectureHall},
		{Name: "R2", Capacity: 100, Type: Auditorium},
		{Name: "R3", Capacity: 100, Type: Laboratory},
	}
	strategy := NewSatisfactionWeightedStrategy(rooms, 5)
	rng := rand.New(rand.NewSource(4))

	prefs := strategy.GeneratePreferences(&Course{Name: "C1", CohortSize: 50}, rng)
	assertNoDuplicates(t, prefs)
	if indexOf(prefs, LectureHall) != -1 {
		t.Fatalf("expected LectureHall (max capacity 20) filtered out for a 50-seat course, got %v", prefs)
	}
}

func TestSatisfactionWeightedStrategy_EmptyWhenNothingFits(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 10, Type: LectureHall}}
	strategy := NewSatisfactionWeightedStrategy(rooms, 3)
	rng := rand.New(rand.NewSource(5))

	prefs := strategy.GeneratePreferences(&Course{Name: "C1", CohortSize: 500}, rng)
	if len(prefs) != 0 {
		t.Fatalf("expected no preferences when nothing fits, got %v", prefs)
	}
}

func indexOf(prefs []RoomType, t RoomType) int {
	for i, p := range prefs {
		if p == t {
			return i
		}
	}
	return -1
}

func assertNoDuplicates(t *testing.T, prefs []RoomType) {
	t.Helper()
	seen := make(map[RoomType]bool)
	for _, p := range prefs {
		if seen[p] {
			t.Fatalf("duplicate preference %s in %v", p, prefs)
		}
		seen[p] = true
	}
}
