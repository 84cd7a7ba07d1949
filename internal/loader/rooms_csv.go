package loader

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"RoomAllocator/internal/allocator"
)

// LoadRoomsCSV parses a ';'-separated room table with header
// "name;capacity;type" into Room values. Duplicate names and unknown type
// tags are rejected here, before the rows ever reach allocator.Allocate.
func LoadRoomsCSV(r io.Reader) ([]*allocator.Room, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, parseErrorf("reading room CSV: %v", err)
	}
	if len(rows) == 0 {
		return nil, parseErrorf("room CSV is empty")
	}

	header := rows[0]
	if len(header) != 3 || strings.ToLower(header[0]) != "name" ||
		strings.ToLower(header[1]) != "capacity" || strings.ToLower(header[2]) != "type" {
		return nil, parseErrorf("room CSV header must be \"name;capacity;type\", got %v", header)
	}

	seen := make(map[string]bool, len(rows)-1)
	rooms := make([]*allocator.Room, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lineNum := i + 2
		if len(row) != 3 {
			return nil, parseErrorf("line %d: expected 3 fields, got %d", lineNum, len(row))
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, parseErrorf("line %d: room name must not be empty", lineNum)
		}
		if seen[name] {
			return nil, parseErrorf("line %d: duplicate room name %q", lineNum, name)
		}
		seen[name] = true

		capacity, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, parseErrorf("line %d: invalid capacity %q", lineNum, row[1])
		}

		roomType := allocator.RoomType(strings.TrimSpace(row[2]))
		if !allocator.IsValidRoomType(roomType) {
			return nil, parseErrorf("line %d: unknown room type %q", lineNum, row[2])
		}

		rooms = append(rooms, &allocator.Room{Name: name, Capacity: capacity, Type: roomType})
	}

	return rooms, nil
}
