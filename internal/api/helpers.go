package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// errInvalidParam describes a malformed query parameter.
func errInvalidParam(name string) error {
	return fmt.Errorf("invalid value for %q", name)
}

// pageParams bounds one endpoint's pagination inputs.
type pageParams struct {
	defaultSize int
	maxSize     int
}

// parsePagination reads the 1-based page and page_size query parameters,
// clamping them to the endpoint's bounds.
func parsePagination(c *gin.Context, bounds pageParams) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(bounds.defaultSize)))
	if err != nil || pageSize < 1 {
		pageSize = bounds.defaultSize
	}
	if pageSize > bounds.maxSize {
		pageSize = bounds.maxSize
	}

	return page, pageSize
}

// parseOptionalInt reads an optional non-negative integer query parameter.
// The bool reports whether the parameter was set and valid.
func parseOptionalInt(c *gin.Context, name string) (int, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false, errInvalidParam(name)
	}
	return value, true, nil
}

// respondError sends a JSON error response.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondNotFound sends a 404 with resource not found message.
func respondNotFound(c *gin.Context, resource string) {
	respondError(c, http.StatusNotFound, resource+" not found")
}

// respondBadRequest sends a 400 with message.
func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, message)
}

// respondInternalError sends a 500 with message.
func respondInternalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, message)
}
