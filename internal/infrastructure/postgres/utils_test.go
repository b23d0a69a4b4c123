package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión rechazada")))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, isUUID("3f1c2b0e-8d9a-4c55-9e1f-0a1b2c3d4e5f"))
	assert.False(t, isUUID("65f0c1d2e3a4b5c6d7e8f901"), "ObjectID heredado no es UUID")
	assert.False(t, isUUID(""))
}

func TestLockClause(t *testing.T) {
	assert.Equal(t, " FOR UPDATE", lockClause(true))
	assert.Empty(t, lockClause(false))
}
