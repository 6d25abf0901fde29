package service

import (
	"context"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/spatial"
	"github.com/fleetops/fleetops-backend-go/internal/timeline"
)

// TimelineService exposes the operation timeline aggregation
type TimelineService struct {
	aggregator *timeline.Aggregator
}

// NewTimelineService creates a new timeline service
func NewTimelineService(aggregator *timeline.Aggregator) *TimelineService {
	return &TimelineService{aggregator: aggregator}
}

// GetOperationTimeline builds the merged timeline and route track for one
// operation. When the stored total distance is zero and breadcrumbs
// exist, the distance is derived from the route track for display; the
// derived value is never persisted.
func (s *TimelineService) GetOperationTimeline(ctx context.Context, operationID string, filter models.TimelineFilter) (*models.OperationTimeline, error) {
	result, err := s.aggregator.Build(ctx, operationID, filter)
	if err != nil {
		return nil, err
	}

	if result.Operation.TotalDistanceKm == 0 && len(result.RouteGpsLogs) > 1 {
		result.Operation.TotalDistanceKm = RouteLengthKm(result.RouteGpsLogs)
	}

	return result, nil
}

// RouteLengthKm sums the great-circle segment lengths of a route track
func RouteLengthKm(route []models.RoutePoint) float64 {
	points := make([][2]float64, len(route))
	for i, p := range route {
		points[i] = [2]float64{p.Latitude, p.Longitude}
	}
	return spatial.PathLengthMeters(points) / 1000
}
