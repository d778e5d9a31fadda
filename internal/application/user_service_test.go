package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/pkg/helpers"
)

func newUserFixture() *UserService {
	return NewUserService(newFakeUserRepo(), nil, nil, nil, nil, "", nil)
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc := newUserFixture()

	u, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", "")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.NotEqual(t, "password123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "password123"))
}

func TestRegister_AdminRoleKept(t *testing.T) {
	svc := newUserFixture()

	u, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", entity.RoleAdmin)

	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestRegister_UnknownRoleDowngraded(t *testing.T) {
	svc := newUserFixture()

	u, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", "superuser")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)
}

func TestAuthenticate(t *testing.T) {
	svc := newUserFixture()
	_, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", "")
	require.NoError(t, err)

	u, err := svc.Authenticate(context.Background(), "a@example.com", "password123", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := newUserFixture()
	_, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "a@example.com", "nope", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := newUserFixture()

	_, err := svc.Authenticate(context.Background(), "ghost@example.com", "password123", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_RoleMismatch(t *testing.T) {
	svc := newUserFixture()
	_, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", "")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), "a@example.com", "password123", entity.RoleAdmin)
	assert.ErrorIs(t, err, ErrRoleMismatch)
}

func TestUpdateProfile(t *testing.T) {
	svc := newUserFixture()
	u, err := svc.Register(context.Background(), "a@example.com", "alice", "password123", "")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Username: "alice2"})
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "a@example.com", updated.Email)
}
