package timeline

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fleetops/fleetops-backend-go/internal/models"
)

// normalize converts the fetched rows into timeline events in the fixed
// append order: TRIP_START, pre-trip inspections (source order),
// activities (original sequence-number order), post-trip inspections,
// TRIP_END. The append order is what breaks timestamp ties after the
// stable sort.
func normalize(op *models.Operation, inspections []models.InspectionRecord, activities []models.Activity, now int64) []models.TimelineEvent {
	events := make([]models.TimelineEvent, 0, 2+len(inspections)+len(activities))

	if e := tripBoundaryEvent(op, models.EventTypeTripStart, op.ActualStartTime); e != nil {
		events = append(events, *e)
	}

	for _, rec := range inspections {
		if rec.InspectionType == models.InspectionTypePreTrip {
			events = append(events, eventFromInspection(rec))
		}
	}

	ordered := make([]models.Activity, len(activities))
	copy(ordered, activities)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SequenceNumber < ordered[j].SequenceNumber
	})
	for _, act := range ordered {
		events = append(events, eventFromActivity(act, now))
	}

	for _, rec := range inspections {
		if rec.InspectionType != models.InspectionTypePreTrip {
			events = append(events, eventFromInspection(rec))
		}
	}

	if e := tripBoundaryEvent(op, models.EventTypeTripEnd, op.ActualEndTime); e != nil {
		events = append(events, *e)
	}

	return events
}

// tripBoundaryEvent maps an operation timestamp to a TRIP_START/TRIP_END
// event, or nil when the timestamp has not been recorded. The operation
// row carries no coordinates, so GpsLocation stays nil.
func tripBoundaryEvent(op *models.Operation, eventType string, ts *int64) *models.TimelineEvent {
	if ts == nil {
		return nil
	}
	suffix := "-start"
	if eventType == models.EventTypeTripEnd {
		suffix = "-end"
	}
	return &models.TimelineEvent{
		ID:        op.ID + suffix,
		EventType: eventType,
		Timestamp: ts,
		Notes:     op.Notes,
	}
}

// eventFromInspection maps one inspection record to a timeline event.
// The timestamp falls back from startedAt to createdAt, so inspection
// events always resolve. Coordinates come only from the record itself.
func eventFromInspection(rec models.InspectionRecord) models.TimelineEvent {
	eventType := models.EventTypePostInspection
	if rec.InspectionType == models.InspectionTypePreTrip {
		eventType = models.EventTypePreInspection
	}

	ts := rec.CreatedAt
	if rec.StartedAt != nil {
		ts = *rec.StartedAt
	}

	e := models.TimelineEvent{
		ID:                rec.ID,
		EventType:         eventType,
		Timestamp:         &ts,
		InspectionSummary: summarizeResults(rec.Results),
	}

	if rec.Latitude != nil && rec.Longitude != nil {
		e.GpsLocation = &models.GpsPoint{
			Latitude:   *rec.Latitude,
			Longitude:  *rec.Longitude,
			RecordedAt: ts,
		}
	}

	return e
}

// summarizeResults counts pass/fail outcomes. Results with no recorded
// outcome are excluded from both counts but included in Total.
func summarizeResults(results []models.InspectionItemResult) *models.InspectionSummary {
	s := &models.InspectionSummary{Total: len(results)}
	for _, res := range results {
		if res.IsPassed == nil {
			continue
		}
		if *res.IsPassed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// eventFromActivity maps one activity to a timeline event. The event
// timestamp falls back from actualStartTime to plannedTime and may stay
// nil; the GPS capture time has one more fallback (now) so it is never
// missing when coordinates exist.
func eventFromActivity(a models.Activity, now int64) models.TimelineEvent {
	var ts *int64
	switch {
	case a.ActualStartTime != nil:
		ts = a.ActualStartTime
	case a.PlannedTime != nil:
		ts = a.PlannedTime
	}

	qty := parseQuantity(a.Quantity)
	e := models.TimelineEvent{
		ID:        a.ID,
		EventType: a.ActivityType,
		Timestamp: ts,
		Location:  a.Location,
		Item:      a.Item,
		Quantity:  &qty,
		Notes:     a.Notes,
	}

	if a.Latitude != nil && a.Longitude != nil {
		recordedAt := now
		switch {
		case a.GpsRecordedAt != nil:
			recordedAt = *a.GpsRecordedAt
		case a.ActualStartTime != nil:
			recordedAt = *a.ActualStartTime
		case a.PlannedTime != nil:
			recordedAt = *a.PlannedTime
		}
		e.GpsLocation = &models.GpsPoint{
			Latitude:   *a.Latitude,
			Longitude:  *a.Longitude,
			RecordedAt: recordedAt,
		}
	}

	return e
}

// parseQuantity coerces the TEXT quantity column to a number, defaulting
// to 0 when absent or non-numeric
func parseQuantity(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
