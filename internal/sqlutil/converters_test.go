package sqlutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}

	assert.True(t, IsUniqueViolation(uniqueErr, "users_username_key"))
	assert.True(t, IsUniqueViolation(uniqueErr, ""))
	assert.False(t, IsUniqueViolation(uniqueErr, "users_email_key"))
	assert.False(t, IsUniqueViolation(errors.New("plain error"), ""))
	assert.False(t, IsUniqueViolation(nil, ""))

	// Wrapped errors still match.
	wrapped := fmt.Errorf("failed to insert: %w", uniqueErr)
	assert.True(t, IsUniqueViolation(wrapped, "users_username_key"))
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsSerializationFailure(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsSerializationFailure(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("plain error")))
	assert.False(t, IsSerializationFailure(nil))
}

func TestNullConverters(t *testing.T) {
	assert.Nil(t, FromSqlString(ToSqlString(nil)))
	s := "KC"
	assert.Equal(t, &s, FromSqlString(ToSqlString(&s)))

	assert.Nil(t, FromSqlInt32(ToSqlInt32(nil)))
	n := 15
	assert.Equal(t, &n, FromSqlInt32(ToSqlInt32(&n)))

	assert.Nil(t, FromSqlTime(ToSqlTime(nil)))
}
