package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/coursehub/internal/app/models/dto"
)

func TestApplyCatalogFilterKeepsPublishedPredicate(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		sql, args, err := applyCatalogFilter(courseSelect(), &dto.CourseFilterRequest{}, false).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "c.is_published")
		assert.Equal(t, []interface{}{true}, args)
	})

	t.Run("creator filter alone does not drop it", func(t *testing.T) {
		filter := &dto.CourseFilterRequest{CreatorUUID: "abc-123"}
		sql, args, err := applyCatalogFilter(courseSelect(), filter, false).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "c.is_published")
		assert.Contains(t, sql, "u.uuid")
		assert.Equal(t, []interface{}{true, "abc-123"}, args)
	})

	t.Run("drafts allowed only when requested", func(t *testing.T) {
		filter := &dto.CourseFilterRequest{CreatorUUID: "abc-123"}
		sql, args, err := applyCatalogFilter(courseSelect(), filter, true).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, sql, "c.is_published")
		assert.Contains(t, sql, "u.uuid")
		assert.Equal(t, []interface{}{"abc-123"}, args)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		filter := &dto.CourseFilterRequest{
			CreatorUUID: "abc-123",
			Category:    "go",
			Level:       "beginner",
			Featured:    true,
		}
		sql, _, err := applyCatalogFilter(courseSelect(), filter, false).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "c.is_published")
		assert.Contains(t, sql, "c.category")
		assert.Contains(t, sql, "c.level")
		assert.Contains(t, sql, "c.is_featured")
	})

	t.Run("search matches title or description", func(t *testing.T) {
		filter := &dto.CourseFilterRequest{Search: "sql"}
		sql, args, err := applyCatalogFilter(courseSelect(), filter, false).ToSql()
		require.NoError(t, err)
		assert.Contains(t, sql, "c.title ILIKE")
		assert.Contains(t, sql, "c.description ILIKE")
		assert.Contains(t, args, "%sql%")
	})
}
