package allocator

import "sort"

// StepEvent records one room filling during the acceptance phase of a
// round: a course installed into a room, either into an empty room
// ("assigned") or into a room that had an occupant vacated earlier in the
// same round's acceptance pass ("displaced").
type StepEvent struct {
	Kind   string // "assigned" or "displaced"
	Course string
	Room   string
}

const (
	eventAssigned  = "assigned"
	eventDisplaced = "displaced"
)

// Result is the outcome of one Allocate call: the course->room assignment
// map, the courses that exhausted their preference list unplaced, and the
// ordered trace of acceptance-phase events.
type Result struct {
	Assignments map[string]string // course name -> room name
	Unplaceable []string          // course names, sorted by name
	Steps       []StepEvent
}

// Allocate runs the round-based many-to-one deferred-acceptance matcher
// described in spec §4.4 to completion. It validates rooms and courses at
// entry (ErrInvalidInput on failure) and never fails after that: every
// course ends up either assigned or in Unplaceable.
func Allocate(rooms []*Room, courses []*Course) (*Result, error) {
	if err := validateRooms(rooms); err != nil {
		return nil, err
	}
	if err := validateCourses(courses); err != nil {
		return nil, err
	}

	roomsByType := groupRoomsByType(rooms)
	courseByName := make(map[string]*Course, len(courses))
	for _, c := range courses {
		courseByName[c.Name] = c
	}

	cursor := make(map[string]int, len(courses))
	occupant := make(map[string]string)    // room name -> course name
	assignedRoom := make(map[string]string) // course name -> room name

	unmatched := make([]string, 0, len(courses))
	for _, c := range courses {
		unmatched = append(unmatched, c.Name)
	}

	var unplaceable []string
	var steps []StepEvent

	for len(unmatched) > 0 {
		proposals := make(map[RoomType][]string)
		for _, cname := range unmatched {
			c := courseByName[cname]
			if cursor[cname] >= len(c.Preferences) {
				unplaceable = append(unplaceable, cname)
				continue
			}
			t := c.Preferences[cursor[cname]]
			proposals[t] = append(proposals[t], cname)
			cursor[cname]++
		}

		types := make([]RoomType, 0, len(proposals))
		for t := range proposals {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

		var displaced []string
		for _, t := range types {
			displaced = append(displaced, processTypeProposals(
				t, proposals[t], roomsByType[t], courseByName,
				occupant, assignedRoom, &steps,
			)...)
		}

		sort.Strings(displaced)
		unmatched = displaced
	}

	sort.Strings(unplaceable)

	return &Result{
		Assignments: assignedRoom,
		Unplaceable: unplaceable,
		Steps:       steps,
	}, nil
}

// processTypeProposals runs one type's acceptance phase: it forms the
// candidate pool (proposers plus the rooms-of-type's current occupants,
// vacating those rooms), fills rooms ascending by capacity with the
// best-fitting remaining candidate, and returns the candidates that were
// not re-installed — these go back to the unmatched pool for next round.
func processTypeProposals(
	t RoomType,
	proposers []string,
	rooms []*Room,
	courseByName map[string]*Course,
	occupant map[string]string,
	assignedRoom map[string]string,
	steps *[]StepEvent,
) []string {
	candidates := make(map[string]bool, len(proposers))
	for _, p := range proposers {
		candidates[p] = true
	}

	hadOccupant := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		if occ, ok := occupant[room.Name]; ok {
			candidates[occ] = true
			hadOccupant[room.Name] = true
			delete(occupant, room.Name)
			delete(assignedRoom, occ)
		}
	}

	for _, room := range rooms {
		if len(candidates) == 0 {
			break
		}
		best, bestFit := selectBestCandidate(room, candidates, courseByName)
		if bestFit == unfit {
			continue
		}
		occupant[room.Name] = best
		assignedRoom[best] = room.Name
		delete(candidates, best)

		kind := eventAssigned
		if hadOccupant[room.Name] {
			kind = eventDisplaced
		}
		*steps = append(*steps, StepEvent{Kind: kind, Course: best, Room: room.Name})
	}

	remaining := make([]string, 0, len(candidates))
	for c := range candidates {
		remaining = append(remaining, c)
	}
	return remaining
}

// selectBestCandidate picks the candidate minimizing fit(room, candidate),
// breaking ties by lexicographically smallest course name (spec §9).
func selectBestCandidate(room *Room, candidates map[string]bool, courseByName map[string]*Course) (string, int) {
	best := ""
	bestFit := unfit
	for name := range candidates {
		f := fit(room, courseByName[name])
		if f < bestFit || (f == bestFit && (best == "" || name < best)) {
			best, bestFit = name, f
		}
	}
	return best, bestFit
}

// groupRoomsByType buckets rooms by type, each bucket sorted ascending by
// capacity (ties broken by name for a deterministic processing order).
func groupRoomsByType(rooms []*Room) map[RoomType][]*Room {
	byType := make(map[RoomType][]*Room)
	for _, r := range rooms {
		byType[r.Type] = append(byType[r.Type], r)
	}
	for _, group := range byType {
		sort.Slice(group, func(i, j int) bool {
			if group[i].Capacity != group[j].Capacity {
				return group[i].Capacity < group[j].Capacity
			}
			return group[i].Name < group[j].Name
		})
	}
	return byType
}
