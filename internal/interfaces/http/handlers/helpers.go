package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fractalyx/internal/interfaces/http/middleware"
	"fractalyx/internal/shared/errors"
)

// parseIDParam parses a numeric path parameter.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// parseUintQuery parses a required numeric query parameter.
func parseUintQuery(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.NewValidationError(name + " query parameter is required")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid " + name + " query parameter")
	}
	return uint(id), nil
}

// currentCustomerID reads the authenticated customer from the request context.
func currentCustomerID(c *gin.Context) (uint, bool) {
	return middleware.CustomerID(c)
}
