package allocator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel every input-validation failure wraps, so
// callers (loaders, HTTP handlers) can distinguish "bad input" (400) from
// everything else with a single errors.Is check.
var ErrInvalidInput = errors.New("invalid input")

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateRooms(rooms []*Room) error {
	if len(rooms) == 0 {
		return invalidInputf("room list must not be empty")
	}
	seen := make(map[string]bool, len(rooms))
	for _, r := range rooms {
		if r.Capacity <= 0 {
			return invalidInputf("room %q has non-positive capacity %d", r.Name, r.Capacity)
		}
		if !IsValidRoomType(r.Type) {
			return invalidInputf("room %q has unknown type %q", r.Name, r.Type)
		}
		if seen[r.Name] {
			return invalidInputf("duplicate room name %q", r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

func validateCourses(courses []*Course) error {
	seen := make(map[string]bool, len(courses))
	for _, c := range courses {
		if c.CohortSize <= 0 {
			return invalidInputf("course %q has non-positive cohort size %d", c.Name, c.CohortSize)
		}
		if seen[c.Name] {
			return invalidInputf("duplicate course name %q", c.Name)
		}
		seen[c.Name] = true
		prefSeen := make(map[RoomType]bool, len(c.Preferences))
		for _, t := range c.Preferences {
			if !IsValidRoomType(t) {
				return invalidInputf("course %q has unknown preferred type %q", c.Name, t)
			}
			if prefSeen[t] {
				return invalidInputf("course %q has duplicate preference %q", c.Name, t)
			}
			prefSeen[t] = true
		}
	}
	return nil
}
