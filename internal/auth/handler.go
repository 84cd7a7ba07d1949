package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type OperatorHandler struct {
	service *OperatorService
}

func NewOperatorHandler(service *OperatorService) *OperatorHandler {
	return &OperatorHandler{service: service}
}

func (h *OperatorHandler) Login(c echo.Context) error {
	var cred Credential
	if err := c.Bind(&cred); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
	}

	token, err := h.service.Authenticate(c.Request().Context(), cred)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
