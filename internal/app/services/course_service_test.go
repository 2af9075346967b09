package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emre/coursehub/internal/app/models"
)

func TestCanListDrafts(t *testing.T) {
	creator := &models.User{ID: 1, UUID: "creator-uuid", Role: models.RoleTeacher}
	other := &models.User{ID: 2, UUID: "other-uuid", Role: models.RoleTeacher}
	student := &models.User{ID: 3, UUID: "student-uuid", Role: models.RoleStudent}
	admin := &models.User{ID: 4, UUID: "admin-uuid", Role: models.RoleAdmin}

	t.Run("anonymous catalog never includes drafts", func(t *testing.T) {
		assert.False(t, canListDrafts(nil, ""))
		assert.False(t, canListDrafts(nil, "creator-uuid"))
	})

	t.Run("unscoped listing never includes drafts", func(t *testing.T) {
		assert.False(t, canListDrafts(creator, ""))
		assert.False(t, canListDrafts(admin, ""))
	})

	t.Run("only the creator sees their own drafts", func(t *testing.T) {
		assert.True(t, canListDrafts(creator, "creator-uuid"))
		assert.False(t, canListDrafts(other, "creator-uuid"))
		assert.False(t, canListDrafts(student, "creator-uuid"))
	})

	t.Run("admins see any creator's drafts", func(t *testing.T) {
		assert.True(t, canListDrafts(admin, "creator-uuid"))
	})
}
