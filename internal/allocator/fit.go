package allocator

import "math"

// unfit is the +∞ sentinel fit score for a room that cannot hold a course.
const unfit = math.MaxInt

// fit scores how well course fits room. Lower is better; unfit means the
// course cannot physically fit. Ties are broken by the caller using the
// course name (see matcher.go), not by this function.
func fit(room *Room, course *Course) int {
	if room.Capacity < course.CohortSize {
		return unfit
	}
	return room.Capacity - course.CohortSize
}
