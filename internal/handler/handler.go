package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lendhub/service-lending/internal/domain/pagination"
)

// parsePagination reads from/size query parameters and converts them to a
// zero-based page plus a limit. Invalid values fall back to the defaults
// rather than failing the request.
func parsePagination(c *gin.Context) (page, limit int) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		from = 0
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return pagination.PageFromOffset(from, size), size
}
