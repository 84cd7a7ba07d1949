package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadRoomsCSV_Success(t *testing.T) {
	input := "name;capacity;type\nR1;40;lecture_hall\nR2;30;classroom\n"
	rooms, err := LoadRoomsCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].Name != "R1" || rooms[0].Capacity != 40 || rooms[0].Type != "lecture_hall" {
		t.Fatalf("unexpected first room: %+v", rooms[0])
	}
}

func TestLoadRoomsCSV_BadHeader(t *testing.T) {
	input := "room;cap;kind\nR1;40;lecture_hall\n"
	_, err := LoadRoomsCSV(strings.NewReader(input))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestLoadRoomsCSV_DuplicateName(t *testing.T) {
	input := "name;capacity;type\nR1;40;lecture_hall\nR1;20;classroom\n"
	_, err := LoadRoomsCSV(strings.NewReader(input))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for duplicate name, got %v", err)
	}
}

func TestLoadRoomsCSV_UnknownType(t *testing.T) {
	input := "name;capacity;type\nR1;40;ballroom\n"
	_, err := LoadRoomsCSV(strings.NewReader(input))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for unknown type, got %v", err)
	}
}

func TestLoadRoomsCSV_BadCapacity(t *testing.T) {
	input := "name;capacity;type\nR1;abc;lecture_hall\n"
	_, err := LoadRoomsCSV(strings.NewReader(input))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for bad capacity, got %v", err)
	}
}

func TestLoadRoomsCSV_Empty(t *testing.T) {
	_, err := LoadRoomsCSV(strings.NewReader(""))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse for empty input, got %v", err)
	}
}
