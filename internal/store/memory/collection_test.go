package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waste-management-api-server/internal/models"
	"waste-management-api-server/internal/store"
)

func TestCollection_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	bins := NewCollection[models.Bin]("binId")

	bin := &models.Bin{BinID: "BIN1", UserID: "USER1", Status: models.BinStatusEmpty}
	require.NoError(t, bins.Insert(ctx, bin))
	require.False(t, bin.ID.IsZero(), "insert assigns a document id")

	got, found, err := bins.FindByID(ctx, bin.ID.Hex())
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "BIN1", got.BinID)

	// Returned documents are copies.
	got.Status = "FULL"
	again, _, err := bins.FindByID(ctx, bin.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.BinStatusEmpty, again.Status)

	byUser, err := bins.FindBy(ctx, "userId", "USER1")
	require.NoError(t, err)
	assert.Len(t, byUser, 1)
}

func TestCollection_FindByIDMisses(t *testing.T) {
	ctx := context.Background()
	bins := NewCollection[models.Bin]()

	_, found, err := bins.FindByID(ctx, "not-an-object-id")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = bins.FindByID(ctx, "64b7f0c2e13a5b0001a1b2c3")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCollection_UniqueField(t *testing.T) {
	ctx := context.Background()
	schedules := NewCollection[models.Schedule]("scheduleId")

	require.NoError(t, schedules.Insert(ctx, &models.Schedule{ScheduleID: "S1"}))
	err := schedules.Insert(ctx, &models.Schedule{ScheduleID: "S1"})
	assert.ErrorIs(t, err, store.ErrDuplicate)

	n, err := schedules.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCollection_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	drivers := NewCollection[models.Driver]("driverId")

	d := &models.Driver{DriverID: "D1", DriverName: "Kamal"}
	require.NoError(t, drivers.Insert(ctx, d))

	d.Available = true
	require.NoError(t, drivers.Save(ctx, d))

	all, err := drivers.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Available)
}

func TestCollection_FindByTime(t *testing.T) {
	ctx := context.Background()
	records := NewCollection[models.CollectionRecord]()
	when := time.Date(2024, time.March, 3, 9, 0, 0, 0, time.UTC)

	require.NoError(t, records.Insert(ctx, &models.CollectionRecord{BinID: "BIN1", CollectionDate: when}))

	got, err := records.FindBy(ctx, "collectionDate", when)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, when.Equal(got[0].CollectionDate))
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	drivers := NewCollection[models.Driver]()

	first := &models.Driver{DriverID: "D1"}
	require.NoError(t, drivers.Insert(ctx, first))
	require.NoError(t, drivers.Insert(ctx, &models.Driver{DriverID: "D2"}))
	require.NoError(t, drivers.Insert(ctx, &models.Driver{DriverID: "D3"}))

	require.NoError(t, drivers.DeleteOne(ctx, first))
	all, err := drivers.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "D2", all[0].DriverID, "insertion order is kept")

	n, err := drivers.DeleteAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	count, err := drivers.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSequencer_SeedsOnce(t *testing.T) {
	ctx := context.Background()
	seq := NewSequencer()
	seeds := 0
	seed := func(context.Context) (int64, error) {
		seeds++
		return 4, nil
	}

	first, err := seq.Next(ctx, "BIN", seed)
	require.NoError(t, err)
	second, err := seq.Next(ctx, "BIN", seed)
	require.NoError(t, err)

	assert.EqualValues(t, 5, first)
	assert.EqualValues(t, 6, second)
	assert.Equal(t, 1, seeds)
}
