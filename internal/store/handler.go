package store

import (
	"net/http"

	"RoomAllocator/internal/loader"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	rooms   *RoomRepository
	courses *CourseRepository
}

func NewHandler(rooms *RoomRepository, courses *CourseRepository) *Handler {
	return &Handler{rooms: rooms, courses: courses}
}

// UploadRooms accepts a ';'-separated CSV body and upserts the parsed
// rooms into the rooms collection.
func (h *Handler) UploadRooms(c echo.Context) error {
	rooms, err := loader.LoadRoomsCSV(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.rooms.UpsertAll(c.Request().Context(), rooms); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"count": len(rooms)})
}

// UploadCourses accepts a JSON array body and upserts the parsed courses
// into the courses collection.
func (h *Handler) UploadCourses(c echo.Context) error {
	courses, err := loader.LoadCoursesJSON(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	if err := h.courses.UpsertAll(c.Request().Context(), courses); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"count": len(courses)})
}
