package timeline

import (
	"context"
	"errors"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// ErrOperationNotFound is returned when the requested operation id does
// not resolve. It is surfaced immediately and never produces a partial
// payload.
var ErrOperationNotFound = errors.New("operation not found")

// OperationStore reads one operation header. Implementations return
// (nil, nil) when the id does not exist.
type OperationStore interface {
	GetByID(ctx context.Context, id string) (*models.Operation, error)
}

// InspectionStore reads the inspections of an operation with their nested
// item results, in source order.
type InspectionStore interface {
	ListByOperation(ctx context.Context, operationID string) ([]models.InspectionRecord, error)
}

// ActivityStore reads the activities of an operation with location/item
// rows joined. The filter narrows the activity set only.
type ActivityStore interface {
	ListByOperation(ctx context.Context, operationID string, filter models.TimelineFilter) ([]models.Activity, error)
}

// GpsLogStore reads the full GPS breadcrumb log of an operation.
type GpsLogStore interface {
	ListByOperation(ctx context.Context, operationID string) ([]models.GpsLog, error)
}
