package allocator

import "sort"

// RoomExport is one room's row in the canonical export (spec §4.4, §6).
type RoomExport struct {
	Name     string
	Capacity int
	Type     RoomType
	Course   *CourseExport // nil when the room is empty
}

// CourseExport is the minimal course shape carried in export records.
type CourseExport struct {
	Name string
	Size int
}

// Export is the canonical allocator output format used by both the
// statistics layer and downstream rendering.
type Export struct {
	Rooms              []RoomExport
	UnallocatedCourses []CourseExport
}

// BuildExport turns a Result back into the canonical export shape,
// looking up capacities/types/sizes from the original rooms and courses.
func (res *Result) BuildExport(rooms []*Room, courses []*Course) Export {
	courseByName := make(map[string]*Course, len(courses))
	for _, c := range courses {
		courseByName[c.Name] = c
	}

	occupantOf := invertAssignments(res.Assignments)

	roomExports := make([]RoomExport, 0, len(rooms))
	for _, r := range rooms {
		re := RoomExport{Name: r.Name, Capacity: r.Capacity, Type: r.Type}
		if cname, ok := occupantOf[r.Name]; ok {
			if c, ok := courseByName[cname]; ok {
				re.Course = &CourseExport{Name: c.Name, Size: c.CohortSize}
			}
		}
		roomExports = append(roomExports, re)
	}
	sort.Slice(roomExports, func(i, j int) bool { return roomExports[i].Name < roomExports[j].Name })

	unallocated := make([]CourseExport, 0, len(res.Unplaceable))
	for _, cname := range res.Unplaceable {
		if c, ok := courseByName[cname]; ok {
			unallocated = append(unallocated, CourseExport{Name: c.Name, Size: c.CohortSize})
		}
	}

	return Export{Rooms: roomExports, UnallocatedCourses: unallocated}
}

// res.Assignments maps course -> room; invert for room -> course lookups.
func invertAssignments(assignments map[string]string) map[string]string {
	out := make(map[string]string, len(assignments))
	for course, room := range assignments {
		out[room] = course
	}
	return out
}
