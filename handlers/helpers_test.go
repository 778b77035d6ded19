package handlers

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsIdentity(t *testing.T) {
	id := uuid.New()

	userID, role, err := claimsIdentity(jwt.MapClaims{"user_id": id.String(), "role": "teacher"})
	require.NoError(t, err)
	assert.Equal(t, id, userID)
	assert.Equal(t, "teacher", role)

	// A signed token can still be missing or mangling the identity claims.
	_, _, err = claimsIdentity(jwt.MapClaims{"role": "teacher"})
	assert.Error(t, err, "no user_id")

	_, _, err = claimsIdentity(jwt.MapClaims{"user_id": 42, "role": "teacher"})
	assert.Error(t, err, "non-string user_id")

	_, _, err = claimsIdentity(jwt.MapClaims{"user_id": "not-a-uuid"})
	assert.Error(t, err, "malformed user_id")

	userID, role, err = claimsIdentity(jwt.MapClaims{"user_id": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, userID)
	assert.Empty(t, role)
}
