package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/coursehub/internal/app/models/dto"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 50
	DefaultPage    = 1
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on a 1-based page index.
func CalculateOffsetLimit(page, perPage int) (offset uint64, limit int) {
	if perPage <= 0 || perPage > MaxPerPage {
		limit = DefaultPerPage
	} else {
		limit = perPage
	}

	if page < 1 {
		page = DefaultPage
	}

	offset = uint64((page - 1) * limit)
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page is the 1-based page number.
func NewPaginationInfo(total int64, page, perPage int) dto.PaginationInfo {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = DefaultPage
	}

	pages := 0
	if total > 0 {
		pages = int(math.Ceil(float64(total) / float64(perPage)))
	} else if page == 1 {
		pages = 1
	}

	return dto.PaginationInfo{
		Page:    page,
		Pages:   pages,
		PerPage: perPage,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, perPage int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	perPageStr := c.DefaultQuery("per_page", strconv.Itoa(DefaultPerPage))
	perPage, err = strconv.Atoi(perPageStr)
	if err != nil || perPage <= 0 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	return page, perPage
}
