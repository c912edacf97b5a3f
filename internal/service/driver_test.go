package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-api-server/internal/apperr"
	"waste-management-api-server/internal/dto"
)

func TestDriverService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewDriverService(newTestDeps(t))

	msg, err := svc.Add(ctx, dto.Driver{DriverID: "D1", DriverName: "Sunil"})
	require.NoError(t, err)
	assert.Equal(t, "Driver added successfully", msg)

	_, err = svc.Add(ctx, dto.Driver{DriverID: "D1", DriverName: "Other"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = svc.Update(ctx, "D1", dto.Driver{DriverName: "Sunil P", Available: true})
	require.NoError(t, err)

	got, found, err := svc.Get(ctx, "D1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, dto.Driver{DriverID: "D1", DriverName: "Sunil P", Available: true}, got)

	_, err = svc.Delete(ctx, "D1")
	require.NoError(t, err)
	_, found, err = svc.Get(ctx, "D1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDriverService_Missing(t *testing.T) {
	ctx := context.Background()
	svc := NewDriverService(newTestDeps(t))

	_, err := svc.Update(ctx, "D9", dto.Driver{DriverName: "x"})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	_, err = svc.Delete(ctx, "D9")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDriverService_DeleteAll(t *testing.T) {
	ctx := context.Background()
	svc := NewDriverService(newTestDeps(t))
	for _, id := range []string{"D1", "D2"} {
		_, err := svc.Add(ctx, dto.Driver{DriverID: id})
		require.NoError(t, err)
	}

	_, err := svc.DeleteAll(ctx)
	require.NoError(t, err)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
