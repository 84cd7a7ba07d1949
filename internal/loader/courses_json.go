package loader

import (
	"encoding/json"
	"io"
	"strings"

	"RoomAllocator/internal/allocator"
)

type courseRecord struct {
	Name            string   `json:"name"`
	CohortSize      int      `json:"cohortSize"`
	DurationMinutes int      `json:"durationMinutes"`
	ProfessorID     string   `json:"professorId"`
	Preferences     []string `json:"preferences"`
}

// LoadCoursesJSON decodes a JSON array of course records. Preferences is
// optional; an absent or empty list means the course has no ranked room
// types and the allocator will never place it, matching spec §4.2's
// behavior for empty preference lists.
func LoadCoursesJSON(r io.Reader) ([]*allocator.Course, error) {
	var records []courseRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, parseErrorf("reading course JSON: %v", err)
	}
	if len(records) == 0 {
		return nil, parseErrorf("course list is empty")
	}

	seen := make(map[string]bool, len(records))
	courses := make([]*allocator.Course, 0, len(records))
	for _, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, parseErrorf("course record missing name")
		}
		if seen[name] {
			return nil, parseErrorf("duplicate course name %q", name)
		}
		seen[name] = true

		prefs := make([]allocator.RoomType, 0, len(rec.Preferences))
		for _, p := range rec.Preferences {
			t := allocator.RoomType(strings.TrimSpace(p))
			if !allocator.IsValidRoomType(t) {
				return nil, parseErrorf("course %q has unknown preferred type %q", name, p)
			}
			prefs = append(prefs, t)
		}

		courses = append(courses, &allocator.Course{
			Name:            name,
			CohortSize:      rec.CohortSize,
			Preferences:     prefs,
			DurationMinutes: rec.DurationMinutes,
			ProfessorID:     rec.ProfessorID,
		})
	}

	return courses, nil
}
