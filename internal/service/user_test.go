package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/events"
)

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, events.UserRegistered, mock.Anything).Return(nil)
	deps.Events = pub
	svc := NewUserService(deps)

	msg, err := svc.Register(ctx, dto.UserRequest{Username: "nimal", Email: "nimal@example.com", Password: "pw", Location: "Kandy"})
	require.NoError(t, err)
	assert.Equal(t, "User added successfully with ID: USER1", msg)

	users, err := deps.DB.Users.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEqual(t, "pw", users[0].Password, "password is stored hashed")
	assert.Empty(t, users[0].Status)
	pub.AssertExpectations(t)
}

func TestUserService_RegisterConjunctiveConflict(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	svc := NewUserService(deps)
	seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")

	_, err := svc.Register(ctx, dto.UserRequest{Username: "nimal", Email: "nimal@example.com", Password: "pw"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = svc.Register(ctx, dto.UserRequest{Username: "nimal", Email: "other@example.com", Password: "pw"})
	assert.NoError(t, err, "username-only collision is accepted")

	_, err = svc.Register(ctx, dto.UserRequest{Username: "kamal", Email: "nimal@example.com", Password: "pw"})
	assert.NoError(t, err, "email-only collision is accepted")

	n, err := deps.DB.Users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestUserService_RegisterRequiresFields(t *testing.T) {
	_, err := NewUserService(newTestDeps(t)).Register(context.Background(), dto.UserRequest{Username: "nimal"})

	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "email")
}

func TestUserService_PublishFailureDoesNotFail(t *testing.T) {
	deps := newTestDeps(t)
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("nats down"))
	deps.Events = pub

	_, err := NewUserService(deps).Register(context.Background(), dto.UserRequest{Username: "a", Email: "a@x", Password: "pw"})
	assert.NoError(t, err)
}

func TestUserService_ByCredentials(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	svc := NewUserService(deps)
	seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")

	users, err := svc.ByCredentials(ctx, dto.Credentials{Username: "nimal", Password: "secret"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Kandy", users[0].Location)

	_, err = svc.ByCredentials(ctx, dto.Credentials{Username: "nimal", Password: "wrong"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "No users found with the provided credentials", apperr.MessageOf(err))
}

func TestUserService_ByUsername(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	svc := NewUserService(deps)
	seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")

	users, err := svc.ByUsername(ctx, "nimal")
	require.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = svc.ByUsername(ctx, "ghost")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserService_Status(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	svc := NewUserService(deps)
	user := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	id := user.ID.Hex()

	_, err := svc.SetStatus(ctx, id, "  ")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	msg, err := svc.SetStatus(ctx, id, "Suspended")
	require.NoError(t, err)
	assert.Equal(t, "Status updated successfully for User ID: "+id, msg)

	status, err := svc.Status(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Suspended", status)

	_, err = svc.SetStatus(ctx, "64b7f0c2e13a5b0001a1b2c3", "Active")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, err = svc.Status(ctx, "USER1")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestUserService_Points(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	svc := NewUserService(deps)
	user := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	id := user.ID.Hex()

	_, err := svc.SetPoints(ctx, id, -1)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	_, err = svc.SetPoints(ctx, id, 42.5)
	require.NoError(t, err)
	points, err := svc.Points(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 42.5, points)

	_, err = svc.SetPoints(ctx, id, 0)
	require.NoError(t, err, "zero is allowed")

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = svc.SetPoints(ctx, id, bad)
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err), bad)
	}
	points, err = svc.Points(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, points)

	_, err = svc.SetPoints(ctx, "64b7f0c2e13a5b0001a1b2c3", 3)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
