package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"admin-panel-client/gateway"
	"admin-panel-client/models"
)

// statusForErr maps a gateway failure onto the panel's own response status.
// A transport failure (no response from the backend) surfaces as 502.
func statusForErr(err error) int {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status == 0 {
			return http.StatusBadGateway
		}
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, err error, code string) {
	c.JSON(statusForErr(err), models.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid " + name,
			Details: name + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, defaultValue int) int {
	valueStr := c.Query(name)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
