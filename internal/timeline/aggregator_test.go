package timeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

const t0 = int64(1700000000000) // arbitrary base instant, Unix ms

func ptrInt64(v int64) *int64       { return &v }
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }

type fakeStores struct {
	op          *models.Operation
	opErr       error
	inspections []models.InspectionRecord
	inspErr     error
	activities  []models.Activity
	actErr      error
	gps         []models.GpsLog
	gpsErr      error

	gotFilter models.TimelineFilter
}

func (f *fakeStores) GetByID(ctx context.Context, id string) (*models.Operation, error) {
	return f.op, f.opErr
}

func (f *fakeStores) ListByOperation(ctx context.Context, operationID string) ([]models.InspectionRecord, error) {
	return f.inspections, f.inspErr
}

type fakeActivityStore struct{ f *fakeStores }

func (s fakeActivityStore) ListByOperation(ctx context.Context, operationID string, filter models.TimelineFilter) ([]models.Activity, error) {
	s.f.gotFilter = filter
	return s.f.activities, s.f.actErr
}

type fakeGpsStore struct{ f *fakeStores }

func (s fakeGpsStore) ListByOperation(ctx context.Context, operationID string) ([]models.GpsLog, error) {
	return s.f.gps, s.f.gpsErr
}

func newTestAggregator(f *fakeStores) *Aggregator {
	a := NewAggregator(f, f, fakeActivityStore{f}, fakeGpsStore{f})
	a.now = func() int64 { return t0 + 999 }
	return a
}

func baseOperation() *models.Operation {
	return &models.Operation{
		ID:              "op-1",
		OperationNumber: "OP-2024-001",
		Status:          models.OperationStatusCompleted,
		VehicleID:       "veh-1",
		DriverID:        "drv-1",
	}
}

func TestBuild_FullNarrative(t *testing.T) {
	// Scenario: start, pre-inspection, loading, post-inspection, end
	op := baseOperation()
	op.ActualStartTime = ptrInt64(t0)
	op.ActualEndTime = ptrInt64(t0 + 4)

	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{
				ID:             "insp-pre",
				OperationID:    "op-1",
				InspectionType: models.InspectionTypePreTrip,
				StartedAt:      ptrInt64(t0 + 1),
				CreatedAt:      t0,
				Results: []models.InspectionItemResult{
					{IsPassed: ptrBool(true)},
					{IsPassed: ptrBool(true)},
					{IsPassed: ptrBool(false)},
				},
			},
			{
				ID:             "insp-post",
				OperationID:    "op-1",
				InspectionType: models.InspectionTypePostTrip,
				StartedAt:      ptrInt64(t0 + 3),
				CreatedAt:      t0,
				Results: []models.InspectionItemResult{
					{IsPassed: ptrBool(true)},
					{IsPassed: ptrBool(true)},
					{IsPassed: ptrBool(true)},
				},
			},
		},
		activities: []models.Activity{
			{
				ID:              "act-1",
				OperationID:     "op-1",
				SequenceNumber:  1,
				ActivityType:    models.ActivityTypeLoading,
				ActualStartTime: ptrInt64(t0 + 2),
				Quantity:        "12.5",
			},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.Len(t, result.Data, 5)
	assert.Equal(t, 5, result.Total)

	types := make([]string, 0, 5)
	for i, e := range result.Data {
		assert.Equal(t, i+1, e.SequenceNumber)
		types = append(types, e.EventType)
	}
	assert.Equal(t, []string{
		models.EventTypeTripStart,
		models.EventTypePreInspection,
		models.ActivityTypeLoading,
		models.EventTypePostInspection,
		models.EventTypeTripEnd,
	}, types)

	assert.Equal(t, t0, *result.Data[0].Timestamp)
	assert.Nil(t, result.Data[0].GpsLocation, "trip boundaries carry no coordinates")

	pre := result.Data[1]
	require.NotNil(t, pre.InspectionSummary)
	assert.Equal(t, models.InspectionSummary{Total: 3, Passed: 2, Failed: 1}, *pre.InspectionSummary)

	loading := result.Data[2]
	require.NotNil(t, loading.Quantity)
	assert.Equal(t, 12.5, *loading.Quantity)

	post := result.Data[3]
	assert.Equal(t, models.InspectionSummary{Total: 3, Passed: 3, Failed: 0}, *post.InspectionSummary)

	assert.Equal(t, t0+4, *result.Data[4].Timestamp)

	assert.Equal(t, "op-1", result.Operation.ID)
	assert.Equal(t, "OP-2024-001", result.Operation.OperationNumber)
}

func TestBuild_BoundariesOnly(t *testing.T) {
	op := baseOperation()
	op.ActualStartTime = ptrInt64(t0)
	op.ActualEndTime = ptrInt64(t0 + 100)

	result, err := newTestAggregator(&fakeStores{op: op}).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, models.EventTypeTripStart, result.Data[0].EventType)
	assert.Equal(t, models.EventTypeTripEnd, result.Data[1].EventType)
	assert.Equal(t, 1, result.Data[0].SequenceNumber)
	assert.Equal(t, 2, result.Data[1].SequenceNumber)

	assert.NotNil(t, result.RouteGpsLogs)
	assert.Empty(t, result.RouteGpsLogs)
}

func TestBuild_OperationNotFound(t *testing.T) {
	result, err := newTestAggregator(&fakeStores{op: nil}).Build(context.Background(), "missing", models.TimelineFilter{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrOperationNotFound)
}

func TestBuild_FetchFailureAbortsWhole(t *testing.T) {
	op := baseOperation()
	f := &fakeStores{op: op, gpsErr: errors.New("connection reset")}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrOperationNotFound)
}

func TestBuild_NoRecordedTimes(t *testing.T) {
	// Neither boundary recorded, no inspections, no activities: empty
	// timeline is a valid answer, not an error
	result, err := newTestAggregator(&fakeStores{op: baseOperation()}).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Total)
}

func TestBuild_UnresolvedTimestampsFloorToFront(t *testing.T) {
	op := baseOperation()
	op.ActualStartTime = ptrInt64(t0)

	f := &fakeStores{
		op: op,
		activities: []models.Activity{
			// No actual or planned time: must floor to the very front,
			// ahead of the dated trip start
			{ID: "act-undated", SequenceNumber: 2, ActivityType: models.ActivityTypeWaiting, Quantity: "0"},
			{ID: "act-dated", SequenceNumber: 1, ActivityType: models.ActivityTypeLoading, ActualStartTime: ptrInt64(t0 + 10), Quantity: "0"},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.Len(t, result.Data, 3)
	assert.Equal(t, "act-undated", result.Data[0].ID)
	assert.Nil(t, result.Data[0].Timestamp)
	assert.Equal(t, models.EventTypeTripStart, result.Data[1].EventType)
	assert.Equal(t, "act-dated", result.Data[2].ID)

	// Sequence numbers are reassigned after the sort
	for i, e := range result.Data {
		assert.Equal(t, i+1, e.SequenceNumber)
	}
}

func TestBuild_TieBreakKeepsFixedOrder(t *testing.T) {
	// Every event lands on the same instant; the append order must win:
	// TRIP_START, PRE, activities by original sequence, POST, TRIP_END
	op := baseOperation()
	op.ActualStartTime = ptrInt64(t0)
	op.ActualEndTime = ptrInt64(t0)

	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{ID: "post-1", InspectionType: models.InspectionTypePostTrip, StartedAt: ptrInt64(t0), CreatedAt: t0},
			{ID: "pre-1", InspectionType: models.InspectionTypePreTrip, StartedAt: ptrInt64(t0), CreatedAt: t0},
		},
		activities: []models.Activity{
			{ID: "act-b", SequenceNumber: 2, ActivityType: models.ActivityTypeUnloading, ActualStartTime: ptrInt64(t0), Quantity: "0"},
			{ID: "act-a", SequenceNumber: 1, ActivityType: models.ActivityTypeLoading, ActualStartTime: ptrInt64(t0), Quantity: "0"},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Data))
	for _, e := range result.Data {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"op-1-start", "pre-1", "act-a", "act-b", "post-1", "op-1-end"}, ids)
}

func TestBuild_InspectionTimestampFallsBackToCreatedAt(t *testing.T) {
	op := baseOperation()
	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{ID: "insp-1", InspectionType: models.InspectionTypePreTrip, CreatedAt: t0 + 7},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	require.NotNil(t, result.Data[0].Timestamp)
	assert.Equal(t, t0+7, *result.Data[0].Timestamp)
}

func TestBuild_InspectionSummaryExcludesUndefinedOutcomes(t *testing.T) {
	op := baseOperation()
	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{
				ID:             "insp-1",
				InspectionType: models.InspectionTypePreTrip,
				CreatedAt:      t0,
				Results: []models.InspectionItemResult{
					{IsPassed: ptrBool(true)},
					{IsPassed: nil, ResultValue: "34 psi"},
					{IsPassed: ptrBool(false)},
					{IsPassed: nil},
				},
			},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	s := result.Data[0].InspectionSummary
	require.NotNil(t, s)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 1, s.Failed)
	assert.LessOrEqual(t, s.Passed+s.Failed, s.Total)
}

func TestBuild_InspectionGpsOnlyFromOwnCoordinates(t *testing.T) {
	op := baseOperation()
	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{ID: "with-gps", InspectionType: models.InspectionTypePreTrip, CreatedAt: t0,
				Latitude: ptrFloat64(35.68), Longitude: ptrFloat64(139.76)},
			{ID: "lat-only", InspectionType: models.InspectionTypePostTrip, CreatedAt: t0 + 1,
				Latitude: ptrFloat64(35.68)},
		},
		gps: []models.GpsLog{
			{Latitude: 1, Longitude: 2, RecordedAt: t0},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.NotNil(t, result.Data[0].GpsLocation)
	assert.Equal(t, 35.68, result.Data[0].GpsLocation.Latitude)
	// One coordinate is not enough, and nearby GPS rows are never borrowed
	assert.Nil(t, result.Data[1].GpsLocation)
}

func TestBuild_ActivityGpsCaptureTimeFallbackChain(t *testing.T) {
	op := baseOperation()
	lat, lon := ptrFloat64(-6.2), ptrFloat64(106.8)

	f := &fakeStores{
		op: op,
		activities: []models.Activity{
			{ID: "a1", SequenceNumber: 1, ActivityType: models.ActivityTypeLoading,
				Latitude: lat, Longitude: lon,
				GpsRecordedAt: ptrInt64(t0 + 1), ActualStartTime: ptrInt64(t0 + 2), Quantity: "1"},
			{ID: "a2", SequenceNumber: 2, ActivityType: models.ActivityTypeLoading,
				Latitude: lat, Longitude: lon,
				ActualStartTime: ptrInt64(t0 + 2), Quantity: "1"},
			{ID: "a3", SequenceNumber: 3, ActivityType: models.ActivityTypeLoading,
				Latitude: lat, Longitude: lon,
				PlannedTime: ptrInt64(t0 + 3), Quantity: "1"},
			{ID: "a4", SequenceNumber: 4, ActivityType: models.ActivityTypeLoading,
				Latitude: lat, Longitude: lon, Quantity: "1"},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	byID := map[string]models.TimelineEvent{}
	for _, e := range result.Data {
		byID[e.ID] = e
	}

	assert.Equal(t, t0+1, byID["a1"].GpsLocation.RecordedAt)
	assert.Equal(t, t0+2, byID["a2"].GpsLocation.RecordedAt)
	assert.Equal(t, t0+3, byID["a3"].GpsLocation.RecordedAt)
	// Final fallback: aggregation time, never zero
	assert.Equal(t, t0+999, byID["a4"].GpsLocation.RecordedAt)
}

func TestBuild_QuantityCoercion(t *testing.T) {
	op := baseOperation()
	f := &fakeStores{
		op: op,
		activities: []models.Activity{
			{ID: "a1", SequenceNumber: 1, ActivityType: models.ActivityTypeLoading, ActualStartTime: ptrInt64(t0), Quantity: " 42.75 "},
			{ID: "a2", SequenceNumber: 2, ActivityType: models.ActivityTypeLoading, ActualStartTime: ptrInt64(t0 + 1), Quantity: "not-a-number"},
			{ID: "a3", SequenceNumber: 3, ActivityType: models.ActivityTypeLoading, ActualStartTime: ptrInt64(t0 + 2)},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	byID := map[string]models.TimelineEvent{}
	for _, e := range result.Data {
		byID[e.ID] = e
	}
	assert.Equal(t, 42.75, *byID["a1"].Quantity)
	assert.Equal(t, 0.0, *byID["a2"].Quantity)
	assert.Equal(t, 0.0, *byID["a3"].Quantity)
}

func TestBuild_MissingJoinedRowsDegradeToNil(t *testing.T) {
	// A recorded foreign key whose row has been deleted: the event still
	// goes out, with the sub-object nil
	op := baseOperation()
	locID := "loc-gone"
	f := &fakeStores{
		op: op,
		activities: []models.Activity{
			{ID: "a1", SequenceNumber: 1, ActivityType: models.ActivityTypeUnloading,
				ActualStartTime: ptrInt64(t0), LocationID: &locID, Location: nil, Quantity: "0"},
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Nil(t, result.Data[0].Location)
	assert.Nil(t, result.Data[0].Item)
}

func TestBuild_RouteTrackOrderedAndComplete(t *testing.T) {
	op := baseOperation()
	f := &fakeStores{
		op: op,
		gps: []models.GpsLog{
			{ID: 1, Latitude: 3, Longitude: 3, RecordedAt: t0 + 30, SpeedKmh: ptrFloat64(41)},
			{ID: 2, Latitude: 1, Longitude: 1, RecordedAt: t0 + 10},
			{ID: 3, Latitude: 2, Longitude: 2, RecordedAt: t0 + 20},
			{ID: 4, Latitude: 2.5, Longitude: 2.5, RecordedAt: t0 + 20}, // duplicate instant, source order kept
		},
	}

	result, err := newTestAggregator(f).Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	require.Len(t, result.RouteGpsLogs, 4)
	assert.Equal(t, 1.0, result.RouteGpsLogs[0].Latitude)
	assert.Equal(t, 2.0, result.RouteGpsLogs[1].Latitude)
	assert.Equal(t, 2.5, result.RouteGpsLogs[2].Latitude)
	assert.Equal(t, 3.0, result.RouteGpsLogs[3].Latitude)
	require.NotNil(t, result.RouteGpsLogs[3].SpeedKmh)
	assert.Equal(t, 41.0, *result.RouteGpsLogs[3].SpeedKmh)

	// Route entries never appear as events
	assert.Empty(t, result.Data)
}

func TestBuild_Idempotent(t *testing.T) {
	op := baseOperation()
	op.ActualStartTime = ptrInt64(t0)
	op.ActualEndTime = ptrInt64(t0 + 4)
	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{ID: "pre", InspectionType: models.InspectionTypePreTrip, StartedAt: ptrInt64(t0 + 1), CreatedAt: t0},
		},
		activities: []models.Activity{
			{ID: "a1", SequenceNumber: 1, ActivityType: models.ActivityTypeRefueling, ActualStartTime: ptrInt64(t0 + 2), Quantity: "30"},
		},
		gps: []models.GpsLog{{Latitude: 1, Longitude: 1, RecordedAt: t0}},
	}

	agg := newTestAggregator(f)
	first, err := agg.Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)
	second, err := agg.Build(context.Background(), "op-1", models.TimelineFilter{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_FilterReachesActivitySourceOnly(t *testing.T) {
	// The filter is handed to the activity store; boundaries and
	// inspections remain in the timeline regardless
	op := baseOperation()
	op.ActualStartTime = ptrInt64(t0)
	f := &fakeStores{
		op: op,
		inspections: []models.InspectionRecord{
			{ID: "pre", InspectionType: models.InspectionTypePreTrip, CreatedAt: t0 + 1},
		},
	}

	filter := models.TimelineFilter{ActivityType: models.ActivityTypeLoading, LocationID: "loc-1"}
	result, err := newTestAggregator(f).Build(context.Background(), "op-1", filter)
	require.NoError(t, err)

	assert.Equal(t, filter, f.gotFilter)
	require.Len(t, result.Data, 2)
	assert.Equal(t, models.EventTypeTripStart, result.Data[0].EventType)
	assert.Equal(t, models.EventTypePreInspection, result.Data[1].EventType)
}
