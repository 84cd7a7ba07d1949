// Package allocator implements the type-based deferred-acceptance matcher
// that assigns courses to rooms, along with the preference strategies and
// statistics that surround it. The package is pure computation: no I/O,
// no persistence, no network calls. Callers own the Room and Course slices
// and re-run Allocate/Collector.Run as often as they like.
package allocator

// RoomType is one of a closed set of ten interchangeable room categories.
// Preference is expressed over types, not over individual rooms.
type RoomType string

const (
	LectureHall   RoomType = "lecture_hall"
	Classroom     RoomType = "classroom"
	Laboratory    RoomType = "laboratory"
	SeminarRoom   RoomType = "seminar_room"
	ComputerLab   RoomType = "computer_lab"
	Auditorium    RoomType = "auditorium"
	StudioRoom    RoomType = "studio_room"
	Workshop      RoomType = "workshop"
	ConferenceRoom RoomType = "conference_room"
	TutorialRoom  RoomType = "tutorial_room"
)

// allRoomTypes fixes the enumeration order used to break ties in the
// size-based strategy (spec §4.2) and anywhere else order matters.
var allRoomTypes = []RoomType{
	LectureHall, Classroom, Laboratory, SeminarRoom, ComputerLab,
	Auditorium, StudioRoom, Workshop, ConferenceRoom, TutorialRoom,
}

// AllRoomTypes returns the ten room types in their fixed enumeration order.
func AllRoomTypes() []RoomType {
	out := make([]RoomType, len(allRoomTypes))
	copy(out, allRoomTypes)
	return out
}

// IsValidRoomType reports whether t is one of the ten known tags.
func IsValidRoomType(t RoomType) bool {
	for _, known := range allRoomTypes {
		if known == t {
			return true
		}
	}
	return false
}

// roomTypeOrder returns t's index in the fixed enumeration, or -1.
func roomTypeOrder(t RoomType) int {
	for i, known := range allRoomTypes {
		if known == t {
			return i
		}
	}
	return -1
}
