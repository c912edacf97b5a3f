package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
	"waste-management-api-server/internal/events"
	"waste-management-api-server/internal/models"
)

func TestBinService_Create(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	owner := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	svc := NewBinService(deps)

	msg, err := svc.Create(ctx, dto.BinRequest{UserID: owner.UserID, BinType: "Organic", Capacity: "20L"})
	require.NoError(t, err)
	assert.Equal(t, "Bin added successfully with ID: BIN1", msg)

	bins, err := svc.ListByUser(ctx, owner.UserID)
	require.NoError(t, err)
	require.Len(t, bins, 1)
	assert.Equal(t, "BIN1", bins[0].BinID)
	assert.Equal(t, "Kandy", bins[0].Location)
	assert.Equal(t, models.BinStatusEmpty, bins[0].Status)
}

func TestBinService_CreateAllocatesAfterExisting(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	owner := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	for _, id := range []string{"BIN1", "BIN2", "BIN3"} {
		require.NoError(t, deps.DB.Bins.Insert(ctx, &models.Bin{BinID: id, UserID: owner.UserID}))
	}

	msg, err := NewBinService(deps).Create(ctx, dto.BinRequest{UserID: owner.UserID})
	require.NoError(t, err)
	assert.Equal(t, "Bin added successfully with ID: BIN4", msg)
}

func TestBinService_CreateUnknownUser(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)

	_, err := NewBinService(deps).Create(ctx, dto.BinRequest{UserID: "USER9"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	n, err := deps.DB.Bins.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = NewBinService(deps).Create(ctx, dto.BinRequest{})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestBinService_SetStatus(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	owner := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, events.BinCreated, mock.Anything).Return(nil).Once()
	pub.On("Publish", mock.Anything, events.BinStatusUpdated, mock.Anything).Return(nil).Once()
	deps.Events = pub
	svc := NewBinService(deps)

	_, err := svc.Create(ctx, dto.BinRequest{UserID: owner.UserID})
	require.NoError(t, err)
	bins, err := svc.ListByUser(ctx, owner.UserID)
	require.NoError(t, err)
	id := bins[0].ID

	msg, err := svc.SetStatus(ctx, id, "FULL")
	require.NoError(t, err)
	assert.Equal(t, "Bin status updated successfully for ID: "+id, msg)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "FULL", got.Status)

	// Same value again: accepted, nothing written or published.
	_, err = svc.SetStatus(ctx, id, "FULL")
	require.NoError(t, err)
	got, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "FULL", got.Status)

	pub.AssertExpectations(t)
}

func TestBinService_SetStatusAcceptsEmpty(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps(t)
	owner := seedUser(t, deps, "nimal", "nimal@example.com", "Kandy")
	svc := NewBinService(deps)

	_, err := svc.Create(ctx, dto.BinRequest{UserID: owner.UserID})
	require.NoError(t, err)
	bins, err := svc.ListByUser(ctx, owner.UserID)
	require.NoError(t, err)
	id := bins[0].ID

	for _, status := range []string{"", "   "} {
		_, err = svc.SetStatus(ctx, id, status)
		require.NoError(t, err)
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestBinService_SetStatusMissingBin(t *testing.T) {
	_, err := NewBinService(newTestDeps(t)).SetStatus(context.Background(), "64b7f0c2e13a5b0001a1b2c3", "FULL")

	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Bin not found with ID: 64b7f0c2e13a5b0001a1b2c3", apperr.MessageOf(err))
}

func TestBinService_GetUnknownOrMalformedID(t *testing.T) {
	svc := NewBinService(newTestDeps(t))

	for _, id := range []string{"64b7f0c2e13a5b0001a1b2c3", "BIN1"} {
		_, err := svc.Get(context.Background(), id)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), id)
	}
}
