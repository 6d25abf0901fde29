package timeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// Aggregator reconstructs the chronological narrative of one operation
// from four independently shaped sources: trip boundaries, inspections,
// activities and the GPS breadcrumb log. Each Build call is a stateless
// read pass over its own snapshot; nothing is persisted or cached.
type Aggregator struct {
	operations  OperationStore
	inspections InspectionStore
	activities  ActivityStore
	gpsLogs     GpsLogStore

	// now supplies the final GPS capture-time fallback; injectable for
	// deterministic tests. Unix milliseconds.
	now func() int64
}

// NewAggregator creates an aggregator over the given stores
func NewAggregator(operations OperationStore, inspections InspectionStore, activities ActivityStore, gpsLogs GpsLogStore) *Aggregator {
	return &Aggregator{
		operations:  operations,
		inspections: inspections,
		activities:  activities,
		gpsLogs:     gpsLogs,
		now:         func() int64 { return time.Now().UnixMilli() },
	}
}

// Build fetches the four sources concurrently, normalizes them into one
// event list, merges and re-sequences it, and assembles the response.
// Returns ErrOperationNotFound when the operation id does not resolve;
// any other failure aborts the whole build with no partial payload.
func (a *Aggregator) Build(ctx context.Context, operationID string, filter models.TimelineFilter) (*models.OperationTimeline, error) {
	var (
		op          *models.Operation
		inspections []models.InspectionRecord
		activities  []models.Activity
		gpsRows     []models.GpsLog
	)

	// The four reads carry no ordering dependency; a failed one cancels
	// the rest through the group context.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		op, err = a.operations.GetByID(gctx, operationID)
		if err != nil {
			return fmt.Errorf("fetch operation: %w", err)
		}
		if op == nil {
			return ErrOperationNotFound
		}
		return nil
	})
	g.Go(func() error {
		var err error
		inspections, err = a.inspections.ListByOperation(gctx, operationID)
		if err != nil {
			return fmt.Errorf("fetch inspections: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		activities, err = a.activities.ListByOperation(gctx, operationID, filter)
		if err != nil {
			return fmt.Errorf("fetch activities: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		gpsRows, err = a.gpsLogs.ListByOperation(gctx, operationID)
		if err != nil {
			return fmt.Errorf("fetch gps logs: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if err != ErrOperationNotFound {
			log.Printf("timeline: aggregation failed for operation %s (inspections=%d activities=%d gps=%d): %v",
				operationID, len(inspections), len(activities), len(gpsRows), err)
		}
		return nil, err
	}

	events := normalize(op, inspections, activities, a.now())
	if unresolved := sortAndNumber(events); unresolved > 0 {
		log.Printf("timeline: operation %s has %d events with no resolvable timestamp, floored to front", operationID, unresolved)
	}

	return &models.OperationTimeline{
		Data:         events,
		Total:        len(events),
		Operation:    summarize(op),
		RouteGpsLogs: routeFromLogs(gpsRows),
	}, nil
}

// summarize projects the operation row into the response header
func summarize(op *models.Operation) models.OperationSummary {
	return models.OperationSummary{
		ID:              op.ID,
		OperationNumber: op.OperationNumber,
		Status:          op.Status,
		Vehicle:         op.Vehicle,
		Driver:          op.Driver,
		ActualStartTime: op.ActualStartTime,
		ActualEndTime:   op.ActualEndTime,
		TotalDistanceKm: op.TotalDistanceKm,
		Notes:           op.Notes,
	}
}
