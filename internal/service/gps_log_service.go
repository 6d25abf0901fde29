package service

import (
	"context"
	"fmt"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/repository"
)

// GpsLogService handles business logic for GPS breadcrumb logs
type GpsLogService struct {
	gpsRepo *repository.GpsLogRepository
}

// NewGpsLogService creates a new GPS log service
func NewGpsLogService(gpsRepo *repository.GpsLogRepository) *GpsLogService {
	return &GpsLogService{gpsRepo: gpsRepo}
}

// ListByOperation retrieves the GPS logs of an operation in recording order
func (s *GpsLogService) ListByOperation(ctx context.Context, operationID string) ([]models.GpsLog, error) {
	return s.gpsRepo.ListByOperation(ctx, operationID)
}

// Ingest stores a batch of GPS logs for an operation
func (s *GpsLogService) Ingest(ctx context.Context, operationID string, logs []models.GpsLog) error {
	for _, g := range logs {
		if g.RecordedAt <= 0 {
			return fmt.Errorf("gps log missing recordedAt")
		}
	}
	return s.gpsRepo.InsertBatch(ctx, operationID, logs)
}
