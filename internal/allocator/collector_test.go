package allocator

import (
	"reflect"
	"testing"
)

func buildCollector(rooms []*Room, seed int64) *Collector {
	s := seed
	c := NewCollector(rooms, SimulationConfig{
		NumSimulations: 3,
		NumCourses:     20,
		MinSize:        10,
		MaxSize:        60,
		ChangeSize:     35,
		Seed:           &s,
	})
	c.Register(NewSmartRandomStrategy(rooms, 5))
	c.Register(NewSizeBasedStrategy(rooms, 5, 10))
	return c
}

func TestCollector_Determinism(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 40, Type: LectureHall},
		{Name: "R2", Capacity: 60, Type: Classroom},
		{Name: "R3", Capacity: 90, Type: Auditorium},
		{Name: "R4", Capacity: 30, Type: SeminarRoom},
	}

	result1, err := buildCollector(rooms, 215815).Run()
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	result2, err := buildCollector(rooms, 215815).Run()
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if !reflect.DeepEqual(result1, result2) {
		t.Fatalf("expected byte-identical statistics records across runs with the same seed")
	}
}

func TestCollector_AveragesAcrossTrials(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 40, Type: LectureHall},
		{Name: "R2", Capacity: 60, Type: Classroom},
	}
	c := buildCollector(rooms, 7)
	result, err := c.Run()
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	for _, strategy := range c.Strategies {
		id := strategy.Identifier()
		var trials []TrialStatistics
		for _, tr := range result.Trials {
			if tr.StrategyIdentifier == id {
				trials = append(trials, tr)
			}
		}
		if len(trials) != c.Config.NumSimulations {
			t.Fatalf("expected %d trials for %s, got %d", c.Config.NumSimulations, id, len(trials))
		}

		var sum float64
		for _, tr := range trials {
			sum += tr.Statistics.SatisfactionRate
		}
		want := sum / float64(len(trials))
		got := result.Averages[id].SatisfactionRate
		if diff := want - got; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("average satisfactionRate for %s: want %v, got %v", id, want, got)
		}
	}
}

func TestCollector_RejectsBadConfig(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 40, Type: LectureHall}}
	c := NewCollector(rooms, SimulationConfig{NumSimulations: 0, MinSize: 1, MaxSize: 1, ChangeSize: 1})
	if _, err := c.Run(); err == nil {
		t.Fatalf("expected error for numSimulations < 1")
	}
}
