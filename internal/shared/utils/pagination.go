package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexus-desk/nexus/internal/shared/constants"
)

// Pagination is a normalized page request: Page starts at 1 and PageSize is
// capped at constants.MaxPageSize.
type Pagination struct {
	Page     int
	PageSize int
}

func NewPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	pageSize = min(pageSize, constants.MaxPageSize)
	// keep (page-1)*pageSize representable
	return Pagination{Page: min(page, math.MaxInt/pageSize), PageSize: pageSize}
}

// ParsePagination reads page and page_size from the query string. Values
// that are missing or not positive integers fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	return NewPagination(queryInt(c, "page"), queryInt(c, "page_size"))
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// Bounds returns the slice indices of the page within total items. Pages
// past the end, and malformed pages, yield an empty range.
func (p Pagination) Bounds(total int) (start, end int) {
	if p.Page < 1 || p.PageSize < 1 || p.Page-1 > total/p.PageSize {
		return total, total
	}
	start = (p.Page - 1) * p.PageSize
	return start, start + min(p.PageSize, total-start)
}

// Page cuts the requested page out of items.
func Page[T any](items []T, p Pagination) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}

// TotalPages never reports fewer than one page.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
