package repository

import (
	"context"
	"testing"

	"github.com/AarazooSingh1506/autism-detction-system/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserHashesPassword(t *testing.T) {
	setupTestDB(t)

	user, err := CreateUser(context.Background(), "carer1", "Sup3r-Secret!", models.RoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, "Sup3r-Secret!", user.Password)
	assert.True(t, user.CheckPassword("Sup3r-Secret!"))
	assert.False(t, user.CheckPassword("wrong"))
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	_, err := CreateUser(ctx, "carer1", "Sup3r-Secret!", models.RoleUser)
	require.NoError(t, err)

	_, err = CreateUser(ctx, "carer1", "0ther-Secret!", models.RoleUser)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, EnsureAdmin(ctx, "admin", "Adm1n-Secret!"))
	require.NoError(t, EnsureAdmin(ctx, "admin", "Adm1n-Secret!"))

	admin, err := GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	count, err := CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
