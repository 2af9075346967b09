package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(uniqueViolation("users_email_key")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("creating user: %w", uniqueViolation("users_email_key"))))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := uniqueViolation("enrollments_user_id_course_id_key")

	assert.True(t, IsDuplicateConstraintError(err, "enrollments_user_id_course_id_key"))
	assert.False(t, IsDuplicateConstraintError(err, "users_email_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "users_email_key"))
}

func TestIsCheckViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23514", ConstraintName: "ratings_value_check"}

	assert.True(t, IsCheckViolation(err, "ratings_value_check"))
	assert.False(t, IsCheckViolation(err, "courses_price_check"))
	assert.False(t, IsCheckViolation(uniqueViolation("ratings_value_check"), "ratings_value_check"))
}
