package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emre/coursehub/internal/app/models"
)

func TestCanCreateCourses(t *testing.T) {
	assert.False(t, CanCreateCourses(models.RoleStudent))
	assert.True(t, CanCreateCourses(models.RoleTeacher))
	assert.True(t, CanCreateCourses(models.RoleAdmin))
}

func TestCanManageCourse(t *testing.T) {
	creator := &models.User{ID: 1, Role: models.RoleTeacher}
	admin := &models.User{ID: 2, Role: models.RoleAdmin}
	student := &models.User{ID: 3, Role: models.RoleStudent}
	otherTeacher := &models.User{ID: 4, Role: models.RoleTeacher}
	course := &models.Course{ID: 10, CreatorID: 1}

	assert.True(t, CanManageCourse(creator, course))
	assert.True(t, CanManageCourse(admin, course))
	assert.False(t, CanManageCourse(student, course))
	assert.False(t, CanManageCourse(otherTeacher, course))
	assert.False(t, CanManageCourse(nil, course))
	assert.False(t, CanManageCourse(creator, nil))
}

func TestCanViewLessonContent(t *testing.T) {
	creator := &models.User{ID: 1, Role: models.RoleTeacher}
	admin := &models.User{ID: 2, Role: models.RoleAdmin}
	student := &models.User{ID: 3, Role: models.RoleStudent}
	course := &models.Course{ID: 10, CreatorID: 1}

	freeLesson := &models.Lesson{CourseID: 10, IsFree: true}
	paidLesson := &models.Lesson{CourseID: 10, IsFree: false}

	t.Run("free lesson is open to everyone", func(t *testing.T) {
		assert.True(t, CanViewLessonContent(nil, course, freeLesson, false))
		assert.True(t, CanViewLessonContent(student, course, freeLesson, false))
	})

	t.Run("anonymous cannot view paid lesson", func(t *testing.T) {
		assert.False(t, CanViewLessonContent(nil, course, paidLesson, false))
	})

	t.Run("creator and admin always view", func(t *testing.T) {
		assert.True(t, CanViewLessonContent(creator, course, paidLesson, false))
		assert.True(t, CanViewLessonContent(admin, course, paidLesson, false))
	})

	t.Run("student needs an enrollment", func(t *testing.T) {
		assert.False(t, CanViewLessonContent(student, course, paidLesson, false))
		assert.True(t, CanViewLessonContent(student, course, paidLesson, true))
	})
}
