package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/fleetops/fleetops-backend-go/internal/database"
	"github.com/fleetops/fleetops-backend-go/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func seedVehicle(t *testing.T, db *sql.DB, plate string) *models.Vehicle {
	t.Helper()
	v := &models.Vehicle{PlateNumber: plate, Model: "FH16"}
	require.NoError(t, NewVehicleRepository(db).Create(context.Background(), v))
	return v
}

func seedDriver(t *testing.T, db *sql.DB, name string) *models.Driver {
	t.Helper()
	d := &models.Driver{Name: name}
	require.NoError(t, NewDriverRepository(db).Create(context.Background(), d))
	return d
}

func seedOperation(t *testing.T, db *sql.DB, number string) *models.Operation {
	t.Helper()
	v := seedVehicle(t, db, "PLATE-"+number)
	d := seedDriver(t, db, "Driver "+number)
	op := &models.Operation{OperationNumber: number, VehicleID: v.ID, DriverID: d.ID}
	require.NoError(t, NewOperationRepository(db).Create(context.Background(), op))
	return op
}

func TestVehicleRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	v := &models.Vehicle{PlateNumber: "ABC-123", Model: "Actros"}
	require.NoError(t, repo.Create(ctx, v))
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, models.VehicleStatusActive, v.Status)

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ABC-123", got.PlateNumber)

	got.Model = "Actros L"
	require.NoError(t, repo.Update(ctx, got))
	updated, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Actros L", updated.Model)

	require.NoError(t, repo.Delete(ctx, v.ID))
	gone, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, repo.Update(ctx, v), sql.ErrNoRows)
	assert.ErrorIs(t, repo.Delete(ctx, v.ID), sql.ErrNoRows)
}

func TestVehicleRepository_ListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)
	ctx := context.Background()

	for _, plate := range []string{"AAA-1", "BBB-2", "CCC-3"} {
		require.NoError(t, repo.Create(ctx, &models.Vehicle{PlateNumber: plate}))
	}

	page1, total, err := repo.List(ctx, models.PageFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page1, 2)
	assert.Equal(t, "AAA-1", page1[0].PlateNumber)

	page2, _, err := repo.List(ctx, models.PageFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "CCC-3", page2[0].PlateNumber)
}

func TestOperationRepository_GetByIDJoins(t *testing.T) {
	db := newTestDB(t)
	repo := NewOperationRepository(db)
	ctx := context.Background()

	op := seedOperation(t, db, "OP-001")

	got, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "OP-001", got.OperationNumber)
	assert.Equal(t, models.OperationStatusPlanned, got.Status)
	require.NotNil(t, got.Vehicle)
	assert.Equal(t, "PLATE-OP-001", got.Vehicle.PlateNumber)
	require.NotNil(t, got.Driver)
	assert.Equal(t, "Driver OP-001", got.Driver.Name)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestOperationRepository_StartAndComplete(t *testing.T) {
	db := newTestDB(t)
	repo := NewOperationRepository(db)
	ctx := context.Background()

	op := seedOperation(t, db, "OP-002")

	require.NoError(t, repo.Start(ctx, op.ID, 1700000000000))
	started, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationStatusInProgress, started.Status)
	require.NotNil(t, started.ActualStartTime)
	assert.Equal(t, int64(1700000000000), *started.ActualStartTime)
	assert.Nil(t, started.ActualEndTime)

	require.NoError(t, repo.Complete(ctx, op.ID, 1700000360000, 12.4))
	done, err := repo.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OperationStatusCompleted, done.Status)
	require.NotNil(t, done.ActualEndTime)
	assert.Equal(t, 12.4, done.TotalDistanceKm)

	assert.ErrorIs(t, repo.Start(ctx, "nope", 1), sql.ErrNoRows)
	assert.ErrorIs(t, repo.Complete(ctx, "nope", 1, 0), sql.ErrNoRows)
}

func TestOperationRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewOperationRepository(db)
	ctx := context.Background()

	a := seedOperation(t, db, "OP-A")
	seedOperation(t, db, "OP-B")
	require.NoError(t, repo.Start(ctx, a.ID, 1700000000000))

	inProgress, total, err := repo.List(ctx, models.OperationFilter{Status: models.OperationStatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "OP-A", inProgress[0].OperationNumber)

	byVehicle, _, err := repo.List(ctx, models.OperationFilter{VehicleID: a.VehicleID})
	require.NoError(t, err)
	require.Len(t, byVehicle, 1)
	assert.Equal(t, a.ID, byVehicle[0].ID)

	all, total, err := repo.List(ctx, models.OperationFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)
}

func TestInspectionRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	op := seedOperation(t, db, "OP-003")

	passed := true
	failed := false
	startedAt := int64(1700000001000)
	rec := &models.InspectionRecord{
		OperationID:    op.ID,
		InspectionType: models.InspectionTypePreTrip,
		StartedAt:      &startedAt,
		Results: []models.InspectionItemResult{
			{CheckName: "brakes", IsPassed: &passed},
			{CheckName: "tire pressure", ResultValue: "34 psi"},
			{CheckName: "lights", IsPassed: &failed},
		},
	}
	require.NoError(t, repo.Create(ctx, rec))
	assert.NotEmpty(t, rec.ID)

	list, err := repo.ListByOperation(ctx, op.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, models.InspectionStatusInProgress, got.Status)
	require.NotNil(t, got.StartedAt)
	assert.Equal(t, startedAt, *got.StartedAt)

	require.Len(t, got.Results, 3)
	assert.Equal(t, "brakes", got.Results[0].CheckName)
	require.NotNil(t, got.Results[0].IsPassed)
	assert.True(t, *got.Results[0].IsPassed)
	assert.Nil(t, got.Results[1].IsPassed)
	assert.Equal(t, "34 psi", got.Results[1].ResultValue)
	require.NotNil(t, got.Results[2].IsPassed)
	assert.False(t, *got.Results[2].IsPassed)

	empty, err := repo.ListByOperation(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestActivityRepository_SequenceAppend(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	op := seedOperation(t, db, "OP-004")

	first := &models.Activity{OperationID: op.ID, ActivityType: models.ActivityTypeLoading}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, 1, first.SequenceNumber)
	assert.Equal(t, "0", first.Quantity)

	second := &models.Activity{OperationID: op.ID, ActivityType: models.ActivityTypeUnloading, Quantity: "12.5"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 2, second.SequenceNumber)

	pinned := &models.Activity{OperationID: op.ID, ActivityType: models.ActivityTypeWaiting, SequenceNumber: 7}
	require.NoError(t, repo.Create(ctx, pinned))
	assert.Equal(t, 7, pinned.SequenceNumber)

	next := &models.Activity{OperationID: op.ID, ActivityType: models.ActivityTypeBreak}
	require.NoError(t, repo.Create(ctx, next))
	assert.Equal(t, 8, next.SequenceNumber)
}

func TestActivityRepository_ListByOperationFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	op := seedOperation(t, db, "OP-005")

	loc := &models.Location{Name: "Depot", Latitude: 35.68, Longitude: 139.76}
	require.NoError(t, NewLocationRepository(db).Create(ctx, loc))
	item := &models.Item{Name: "Gravel", Unit: "t"}
	require.NoError(t, NewItemRepository(db).Create(ctx, item))

	t1 := int64(1700000000000)
	t2 := int64(1700000600000)
	planned := int64(1700001200000)

	require.NoError(t, repo.Create(ctx, &models.Activity{
		OperationID: op.ID, ActivityType: models.ActivityTypeLoading,
		ActualStartTime: &t1, LocationID: &loc.ID, ItemID: &item.ID, Quantity: "3.5",
	}))
	require.NoError(t, repo.Create(ctx, &models.Activity{
		OperationID: op.ID, ActivityType: models.ActivityTypeUnloading,
		ActualStartTime: &t2,
	}))
	// Never started: date filters must fall back to the planned time
	require.NoError(t, repo.Create(ctx, &models.Activity{
		OperationID: op.ID, ActivityType: models.ActivityTypeWaiting,
		PlannedTime: &planned,
	}))

	all, err := repo.ListByOperation(ctx, op.ID, models.TimelineFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Joined rows ride along
	require.NotNil(t, all[0].Location)
	assert.Equal(t, "Depot", all[0].Location.Name)
	require.NotNil(t, all[0].Item)
	assert.Equal(t, "Gravel", all[0].Item.Name)
	assert.Nil(t, all[1].Location)
	assert.Nil(t, all[1].Item)

	byType, err := repo.ListByOperation(ctx, op.ID, models.TimelineFilter{ActivityType: models.ActivityTypeLoading})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, models.ActivityTypeLoading, byType[0].ActivityType)

	byRange, err := repo.ListByOperation(ctx, op.ID, models.TimelineFilter{StartDate: t2, EndDate: planned})
	require.NoError(t, err)
	require.Len(t, byRange, 2)
	assert.Equal(t, models.ActivityTypeUnloading, byRange[0].ActivityType)
	assert.Equal(t, models.ActivityTypeWaiting, byRange[1].ActivityType)

	byLocation, err := repo.ListByOperation(ctx, op.ID, models.TimelineFilter{LocationID: loc.ID})
	require.NoError(t, err)
	require.Len(t, byLocation, 1)

	byItem, err := repo.ListByOperation(ctx, op.ID, models.TimelineFilter{ItemID: item.ID})
	require.NoError(t, err)
	require.Len(t, byItem, 1)
}

func TestGpsLogRepository_BatchInsertAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewGpsLogRepository(db)
	ctx := context.Background()

	op := seedOperation(t, db, "OP-006")

	speed := 42.0
	logs := []models.GpsLog{
		{Latitude: 3, Longitude: 3, RecordedAt: 1700000030000, SpeedKmh: &speed},
		{Latitude: 1, Longitude: 1, RecordedAt: 1700000010000},
		{Latitude: 2, Longitude: 2, RecordedAt: 1700000020000},
	}
	require.NoError(t, repo.InsertBatch(ctx, op.ID, logs))
	require.NoError(t, repo.InsertBatch(ctx, op.ID, nil))

	got, err := repo.ListByOperation(ctx, op.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0].Latitude)
	assert.Equal(t, 2.0, got[1].Latitude)
	assert.Equal(t, 3.0, got[2].Latitude)
	require.NotNil(t, got[2].SpeedKmh)
	assert.Equal(t, 42.0, *got[2].SpeedKmh)
	assert.Nil(t, got[0].SpeedKmh)

	count, err := repo.CountByOperation(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
