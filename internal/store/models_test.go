package store

import (
	"testing"

	"RoomAllocator/internal/allocator"
)

func TestRoomRecordRoundTrip(t *testing.T) {
	room := &allocator.Room{Name: "R1", Capacity: 40, Type: allocator.LectureHall}
	record := roomRecordFrom(room)
	back := record.ToRoom()
	if *back != *room {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, room)
	}
}

func TestCourseRecordRoundTrip(t *testing.T) {
	course := &allocator.Course{
		Name:            "C1",
		CohortSize:      30,
		Preferences:     []allocator.RoomType{allocator.LectureHall, allocator.Classroom},
		DurationMinutes: 90,
		ProfessorID:     "P1",
	}
	record := courseRecordFrom(course)
	back := record.ToCourse()
	if back.Name != course.Name || back.CohortSize != course.CohortSize ||
		back.DurationMinutes != course.DurationMinutes || back.ProfessorID != course.ProfessorID {
		t.Fatalf("round trip mismatch: got %+v, want %+v", back, course)
	}
	if len(back.Preferences) != len(course.Preferences) {
		t.Fatalf("preference round trip mismatch: got %v, want %v", back.Preferences, course.Preferences)
	}
}
