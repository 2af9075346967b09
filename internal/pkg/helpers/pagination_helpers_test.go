package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	// Out-of-range values fall back to defaults
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPerPage, limit)

	_, limit = CalculateOffsetLimit(1, MaxPerPage+1)
	assert.Equal(t, DefaultPerPage, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		info := NewPaginationInfo(45, 2, 10)
		assert.Equal(t, 2, info.Page)
		assert.Equal(t, 5, info.Pages)
		assert.Equal(t, int64(45), info.Total)
		assert.True(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		info := NewPaginationInfo(45, 5, 10)
		assert.False(t, info.HasNext)
		assert.True(t, info.HasPrev)
	})

	t.Run("empty result", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		assert.Equal(t, 1, info.Pages)
		assert.False(t, info.HasNext)
		assert.False(t, info.HasPrev)
	})
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/courses"+query, nil)
		return c
	}

	page, perPage := ParsePaginationParams(newContext("?page=3&per_page=25"))
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, perPage)

	page, perPage = ParsePaginationParams(newContext(""))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPerPage, perPage)

	// per_page is capped
	_, perPage = ParsePaginationParams(newContext("?per_page=500"))
	assert.Equal(t, DefaultPerPage, perPage)

	// Garbage values fall back to defaults
	page, perPage = ParsePaginationParams(newContext("?page=abc&per_page=-1"))
	assert.Equal(t, DefaultPage, page)
	assert.Equal(t, DefaultPerPage, perPage)
}
