package service

import (
	"context"
	"fmt"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/repository"
)

// InspectionService handles business logic for inspection records
type InspectionService struct {
	inspectionRepo *repository.InspectionRepository
}

// NewInspectionService creates a new inspection service
func NewInspectionService(inspectionRepo *repository.InspectionRepository) *InspectionService {
	return &InspectionService{inspectionRepo: inspectionRepo}
}

// ListByOperation retrieves the inspections of an operation with results
func (s *InspectionService) ListByOperation(ctx context.Context, operationID string) ([]models.InspectionRecord, error) {
	return s.inspectionRepo.ListByOperation(ctx, operationID)
}

// Create records an inspection with its checklist results
func (s *InspectionService) Create(ctx context.Context, rec *models.InspectionRecord) error {
	if rec.InspectionType != models.InspectionTypePreTrip && rec.InspectionType != models.InspectionTypePostTrip {
		return fmt.Errorf("invalid inspection type: %s", rec.InspectionType)
	}
	return s.inspectionRepo.Create(ctx, rec)
}
