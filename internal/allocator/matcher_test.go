package allocator

import (
	"math/rand"
	"testing"
)

func TestAllocate_TrivialFit(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 40, Type: LectureHall}}
	courses := []*Course{{Name: "C1", CohortSize: 30, Preferences: []RoomType{LectureHall}}}

	result, err := Allocate(rooms, courses)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if result.Assignments["C1"] != "R1" {
		t.Fatalf("expected C1 -> R1, got %v", result.Assignments)
	}
	if len(result.Unplaceable) != 0 {
		t.Fatalf("expected no unplaceable courses, got %v", result.Unplaceable)
	}
	if len(result.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(result.Steps))
	}
}

func TestAllocate_Displacement(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 50, Type: LectureHall}}
	courses := []*Course{
		{Name: "C1", CohortSize: 40, Preferences: []RoomType{LectureHall}},
		{Name: "C2", CohortSize: 45, Preferences: []RoomType{LectureHall}},
	}

	result, err := Allocate(rooms, courses)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if result.Assignments["C2"] != "R1" {
		t.Fatalf("expected C2 -> R1, got %v", result.Assignments)
	}
	if _, ok := result.Assignments["C1"]; ok {
		t.Fatalf("expected C1 unplaced, got assignment %v", result.Assignments["C1"])
	}
	if len(result.Unplaceable) != 1 || result.Unplaceable[0] != "C1" {
		t.Fatalf("expected unplaceable=[C1], got %v", result.Unplaceable)
	}
}

func TestAllocate_SecondaryChoice(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 50, Type: LectureHall},
		{Name: "R2", Capacity: 60, Type: Classroom},
	}
	courses := []*Course{
		{Name: "C1", CohortSize: 40, Preferences: []RoomType{LectureHall, Classroom}},
		{Name: "C2", CohortSize: 45, Preferences: []RoomType{LectureHall, Classroom}},
	}

	result, err := Allocate(rooms, courses)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if result.Assignments["C1"] != "R2" || result.Assignments["C2"] != "R1" {
		t.Fatalf("expected {C1->R2, C2->R1}, got %v", result.Assignments)
	}
	if len(result.Unplaceable) != 0 {
		t.Fatalf("expected no unplaceable courses, got %v", result.Unplaceable)
	}
}

func TestAllocate_Overspill(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 30, Type: LectureHall}}
	courses := []*Course{{Name: "C1", CohortSize: 50, Preferences: []RoomType{LectureHall}}}

	result, err := Allocate(rooms, courses)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if len(result.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %v", result.Assignments)
	}
	if len(result.Unplaceable) != 1 || result.Unplaceable[0] != "C1" {
		t.Fatalf("expected unplaceable=[C1], got %v", result.Unplaceable)
	}
}

func TestAllocate_EmptyPreferencesIsUnplaceableNotError(t *testing.T) {
	rooms := []*Room{{Name: "R1", Capacity: 30, Type: LectureHall}}
	courses := []*Course{{Name: "C1", CohortSize: 10, Preferences: nil}}

	result, err := Allocate(rooms, courses)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	if len(result.Unplaceable) != 1 || result.Unplaceable[0] != "C1" {
		t.Fatalf("expected unplaceable=[C1], got %v", result.Unplaceable)
	}
}

func TestAllocate_ValidationErrors(t *testing.T) {
	goodRoom := &Room{Name: "R1", Capacity: 30, Type: LectureHall}
	goodCourse := &Course{Name: "C1", CohortSize: 10, Preferences: []RoomType{LectureHall}}

	cases := []struct {
		name    string
		rooms   []*Room
		courses []*Course
	}{
		{"empty room list", nil, []*Course{goodCourse}},
		{"zero capacity", []*Room{{Name: "R1", Capacity: 0, Type: LectureHall}}, []*Course{goodCourse}},
		{"negative cohort", []*Room{goodRoom}, []*Course{{Name: "C1", CohortSize: -5}}},
		{"duplicate room name", []*Room{goodRoom, {Name: "R1", Capacity: 10, Type: Classroom}}, []*Course{goodCourse}},
		{"duplicate course name", []*Room{goodRoom}, []*Course{goodCourse, {Name: "C1", CohortSize: 5}}},
		{"unknown room type", []*Room{{Name: "R1", Capacity: 30, Type: "mystery"}}, []*Course{goodCourse}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Allocate(tc.rooms, tc.courses); err == nil {
				t.Fatalf("expected a validation error")
			}
		})
	}
}

func TestAllocate_Determinism(t *testing.T) {
	rooms := []*Room{
		{Name: "R1", Capacity: 50, Type: LectureHall},
		{Name: "R2", Capacity: 60, Type: Classroom},
		{Name: "R3", Capacity: 40, Type: LectureHall},
	}
	strategy := NewUniformRandomStrategy(3)
	rng1 := rand.New(rand.NewSource(42))
	courses1 := SimulateCourses(20, 10, 50, 30, strategy, rng1)

	rng2 := rand.New(rand.NewSource(42))
	courses2 := SimulateCourses(20, 10, 50, 30, strategy, rng2)

	result1, err := Allocate(rooms, courses1)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}
	result2, err := Allocate(rooms, courses2)
	if err != nil {
		t.Fatalf("Allocate returned error: %v", err)
	}

	if len(result1.Assignments) != len(result2.Assignments) {
		t.Fatalf("assignment counts differ: %d vs %d", len(result1.Assignments), len(result2.Assignments))
	}
	for course, room := range result1.Assignments {
		if result2.Assignments[course] != room {
			t.Fatalf("assignment for %s differs: %s vs %s", course, room, result2.Assignments[course])
		}
	}
	if len(result1.Steps) != len(result2.Steps) {
		t.Fatalf("step trace lengths differ: %d vs %d", len(result1.Steps), len(result2.Steps))
	}
}

// TestAllocate_Invariants runs the allocator over a range of randomized
// inputs and checks the universal properties from spec §8.
func TestAllocate_Invariants(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rooms := randomRooms(rng, 6)
		strategy := NewSmartRandomStrategy(rooms, 4)
		courses := SimulateCourses(15, 10, 60, 35, strategy, rng)

		result, err := Allocate(rooms, courses)
		if err != nil {
			t.Fatalf("seed %d: Allocate returned error: %v", seed, err)
		}

		roomByName := make(map[string]*Room, len(rooms))
		for _, r := range rooms {
			roomByName[r.Name] = r
		}
		courseByName := make(map[string]*Course, len(courses))
		for _, c := range courses {
			courseByName[c.Name] = c
		}

		seenRooms := make(map[string]bool)
		seenCourses := make(map[string]bool)
		for course, roomName := range result.Assignments {
			if seenRooms[roomName] {
				t.Fatalf("seed %d: room %s used twice", seed, roomName)
			}
			seenRooms[roomName] = true
			if seenCourses[course] {
				t.Fatalf("seed %d: course %s placed twice", seed, course)
			}
			seenCourses[course] = true

			room := roomByName[roomName]
			c := courseByName[course]
			if room.Capacity < c.CohortSize {
				t.Fatalf("seed %d: %s (%d) does not fit in %s (%d)", seed, course, c.CohortSize, roomName, room.Capacity)
			}
			if placementRank(room.Type, c.Preferences) == 0 {
				t.Fatalf("seed %d: %s placed in a type %s not in its preferences %v", seed, course, room.Type, c.Preferences)
			}
		}

		if len(result.Assignments)+len(result.Unplaceable) != len(courses) {
			t.Fatalf("seed %d: placed(%d)+unplaceable(%d) != total(%d)",
				seed, len(result.Assignments), len(result.Unplaceable), len(courses))
		}
	}
}

func randomRooms(rng *rand.Rand, n int) []*Room {
	rooms := make([]*Room, 0, n)
	types := AllRoomTypes()
	for i := 0; i < n; i++ {
		rooms = append(rooms, &Room{
			Name:     shortRoomName(i),
			Capacity: 20 + rng.Intn(80),
			Type:     types[rng.Intn(len(types))],
		})
	}
	return rooms
}

func shortRoomName(i int) string {
	return "R" + string(rune('A'+i))
}
