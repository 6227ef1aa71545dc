package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"saigonbistro/internal/shared/errors"
)

// ParseUintParam parses and validates a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// entityName is used in error messages (e.g., "ticket").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID: %s", entityName, raw),
		)
	}

	return uint(value), nil
}
