package store

import "RoomAllocator/internal/allocator"

// RoomRecord is the durable representation of a Room uploaded through
// POST /api/rooms. Name is unique across the rooms collection.
type RoomRecord struct {
	Name     string              `bson:"name"`
	Capacity int                 `bson:"capacity"`
	Type     allocator.RoomType `bson:"type"`
}

func (r *RoomRecord) ToRoom() *allocator.Room {
	return &allocator.Room{Name: r.Name, Capacity: r.Capacity, Type: r.Type}
}

func roomRecordFrom(r *allocator.Room) *RoomRecord {
	return &RoomRecord{Name: r.Name, Capacity: r.Capacity, Type: r.Type}
}

// CourseRecord is the durable representation of a Course uploaded through
// POST /api/courses. Name is unique across the courses collection.
type CourseRecord struct {
	Name            string               `bson:"name"`
	CohortSize      int                  `bson:"cohort_size"`
	Preferences     []allocator.RoomType `bson:"preferences"`
	DurationMinutes int                  `bson:"duration_minutes"`
	ProfessorID     string               `bson:"professor_id"`
}

func (c *CourseRecord) ToCourse() *allocator.Course {
	return &allocator.Course{
		Name:            c.Name,
		CohortSize:      c.CohortSize,
		Preferences:     c.Preferences,
		DurationMinutes: c.DurationMinutes,
		ProfessorID:     c.ProfessorID,
	}
}

func courseRecordFrom(c *allocator.Course) *CourseRecord {
	return &CourseRecord{
		Name:            c.Name,
		CohortSize:      c.CohortSize,
		Preferences:     c.Preferences,
		DurationMinutes: c.DurationMinutes,
		ProfessorID:     c.ProfessorID,
	}
}
