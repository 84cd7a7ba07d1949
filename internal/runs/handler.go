package runs

import (
	"errors"
	"net/http"

	"RoomAllocator/internal/allocator"
	"RoomAllocator/internal/auth"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RunHandler struct {
	service *RunService
}

func NewRunHandler(service *RunService) *RunHandler {
	return &RunHandler{service: service}
}

func (h *RunHandler) CreateRun(c echo.Context) error {
	var req AllocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	requestedBy := ""
	if claims, ok := c.Get("user").(*auth.JWTClaims); ok && claims != nil {
		requestedBy = claims.Username
	}

	run, err := h.service.Execute(c.Request().Context(), requestedBy, req)
	if err != nil {
		if errors.Is(err, allocator.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, run)
}

func (h *RunHandler) GetRun(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	run, err := h.service.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if run == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "run not found"})
	}
	return c.JSON(http.StatusOK, run)
}

type SimulationHandler struct {
	service *SimulationService
}

func NewSimulationHandler(service *SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

func (h *SimulationHandler) CreateSimulation(c echo.Context) error {
	var req SimulationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	sim, err := h.service.Execute(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, allocator.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, sim)
}

func (h *SimulationHandler) GetSimulation(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	sim, err := h.service.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if sim == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "simulation not found"})
	}
	return c.JSON(http.StatusOK, sim)
}
