package allocator

// Course is an immutable identity: a cohort of a given size with an
// ordered, duplicate-free list of room-type preferences. DurationMinutes
// and ProfessorID are carried for round-tripping through loaders and
// storage but are never read by the matcher core.
//
// choiceCursor and assignedRoom are NOT fields on Course: the allocator
// keeps that per-run mutable state in its own tables keyed by Course.Name,
// so a Course value can be safely reused, copied, or run through several
// allocations concurrently as long as each run gets its own Allocate call.
type Course struct {
	Name            string
	CohortSize      int
	Preferences     []RoomType
	DurationMinutes int
	ProfessorID     string
}
