package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"modcms/internal/shared/errors"
	"modcms/internal/shared/query"
)

// ParsePagination reads page and page_size from the query string. Invalid
// numbers fall back to zero and are normalized by the caller.
func ParsePagination(c *gin.Context) query.PageFilter {
	return query.PageFilter{
		Page:     parseQueryInt(c, "page"),
		PageSize: parseQueryInt(c, "page_size"),
	}
}

func parseQueryInt(c *gin.Context, key string) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return 0
}

// ParseFilters collects filter[<column>]=value query parameters.
func ParseFilters(c *gin.Context) map[string]any {
	raw := c.QueryMap("filter")
	filters := make(map[string]any, len(raw))
	for k, v := range raw {
		filters[k] = v
	}
	return filters
}

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, name, entity string) (uint, error) {
	raw := strings.TrimSpace(c.Param(name))
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.NewValidationError("invalid "+entity+" id", raw)
	}
	return uint(n), nil
}

// ParseBoolQuery parses a boolean query parameter with a default.
func ParseBoolQuery(c *gin.Context, key string, def bool) bool {
	val := c.Query(key)
	if val == "" {
		return def
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}
	return b
}
