package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/coursehub/internal/app/models"
)

func ptrInt64(v int64) *int64 {
	return &v
}

func TestBuildCommentTree(t *testing.T) {
	// Input is in ascending creation order, as GetByCourseID produces it.
	all := []models.Comment{
		{ID: 1, Content: "first"},
		{ID: 2, Content: "first reply", ParentID: ptrInt64(1)},
		{ID: 3, Content: "second"},
		{ID: 4, Content: "second reply", ParentID: ptrInt64(1)},
		{ID: 5, Content: "orphan reply", ParentID: ptrInt64(99)},
	}

	tree := buildCommentTree(all)

	require.Len(t, tree, 2)
	assert.Equal(t, "second", tree[0].Content)
	assert.Equal(t, "first", tree[1].Content)

	require.Len(t, tree[1].Replies, 2)
	assert.Equal(t, "first reply", tree[1].Replies[0].Content)
	assert.Equal(t, "second reply", tree[1].Replies[1].Content)

	assert.Empty(t, tree[0].Replies)
}

func TestBuildCommentTreeEmpty(t *testing.T) {
	assert.Empty(t, buildCommentTree(nil))
}
