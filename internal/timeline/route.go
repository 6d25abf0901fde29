package timeline

import (
	"sort"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// routeFromLogs projects raw GPS rows into the route track: ordered by
// recording time ascending, duplicates preserved in source order, never
// tagged as events. Independent of the merge engine.
func routeFromLogs(logs []models.GpsLog) []models.RoutePoint {
	points := make([]models.RoutePoint, 0, len(logs))
	for _, g := range logs {
		points = append(points, models.RoutePoint{
			Latitude:   g.Latitude,
			Longitude:  g.Longitude,
			SpeedKmh:   g.SpeedKmh,
			RecordedAt: g.RecordedAt,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].RecordedAt < points[j].RecordedAt
	})

	return points
}
