package allocator

import "testing"

func TestComputeStatistics(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 50, Type: LectureHall},
		{Name: "R2", Capacity: 60, Type: Classroom},
	}
	courses := []*Course{
		{Name: "C1", CohortSize: 40, Preferences: []RoomType{LectureHall, Classroom}},
		{Name: "C2", CohortSize: 45, Preferences: []RoomType{LectureHall, Classroom}},
		{Name: "C3", CohortSize: 999, Preferences: []RoomType{LectureHall}},
	}

	result, err := Allocate(rooms, courses)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}

	stats := ComputeStatistics("uniform_random_2", result, rooms, courses)

	if stats.SatisfactionRate != 2.0/3.0 {
		t.Fatalf("expected satisfactionRate 2/3, got %v", stats.SatisfactionRate)
	}
	if stats.UnallocatedRate != 1.0/3.0 {
		t.Fatalf("expected unallocatedRate 1/3, got %v", stats.UnallocatedRate)
	}
	if stats.NumSteps != len(result.Steps) {
		t.Fatalf("expected numSteps %d, got %d", len(result.Steps), stats.NumSteps)
	}
	if stats.StrategyName != "uniform_random_2" {
		t.Fatalf("expected strategy name to be preserved, got %q", stats.StrategyName)
	}
}

func TestComputeStatistics_NoCourses(t *testing.T) {
	stats := ComputeStatistics("x", &Result{}, nil, nil)
	if stats.SatisfactionRate != 0 || stats.UnallocatedRate != 0 {
		t.Fatalf("expected zero-value rates for an empty course list, got %+v", stats)
	}
}
