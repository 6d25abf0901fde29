package timeline

import (
	"math"
	"sort"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// sortAndNumber stably sorts events ascending by timestamp and reassigns
// contiguous sequence numbers 1..N, discarding whatever the sources had.
// Events with no resolvable timestamp sort as the earliest possible
// instant and float to the front; the returned count makes that policy
// observable to the caller. Ties keep the normalizer's append order.
func sortAndNumber(events []models.TimelineEvent) int {
	unresolved := 0
	for i := range events {
		if events[i].Timestamp == nil {
			unresolved++
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return sortKey(events[i]) < sortKey(events[j])
	})

	for i := range events {
		events[i].SequenceNumber = i + 1
	}

	return unresolved
}

// sortKey resolves an event's sort instant, flooring missing timestamps
func sortKey(e models.TimelineEvent) int64 {
	if e.Timestamp == nil {
		return math.MinInt64
	}
	return *e.Timestamp
}
