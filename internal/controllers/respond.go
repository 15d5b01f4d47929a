package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/griffin1995/gift-sync/internal/errs"
)

// respondError maps classified errors to their status codes and wraps
// everything else as an internal error carrying the original description.
// Classified errors pass through unmodified; the catch-all never reclassifies
// them.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, errs.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Internal server error",
			"detail": err.Error(),
		})
	}
}

// bindError reports a request body that failed schema validation
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

// parseLimit reads the limit query parameter. Values above max are a
// validation error, never clamped. Returns false when a response was written.
func parseLimit(c *gin.Context, def, max int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	if limit > max {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "limit must be at most " + strconv.Itoa(max),
		})
		return 0, false
	}

	return limit, true
}

// parseBoolQuery reads an optional boolean query parameter
func parseBoolQuery(c *gin.Context, key string, def bool) (bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": key + " must be a boolean"})
		return false, false
	}

	return value, true
}
