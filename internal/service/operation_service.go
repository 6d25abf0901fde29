package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/repository"
)

// OperationService handles business logic for operations
type OperationService struct {
	operationRepo *repository.OperationRepository
	gpsRepo       *repository.GpsLogRepository
}

// NewOperationService creates a new operation service
func NewOperationService(operationRepo *repository.OperationRepository, gpsRepo *repository.GpsLogRepository) *OperationService {
	return &OperationService{
		operationRepo: operationRepo,
		gpsRepo:       gpsRepo,
	}
}

// List retrieves operations with filtering and pagination
func (s *OperationService) List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, int64, error) {
	return s.operationRepo.List(ctx, filter)
}

// GetByID retrieves a single operation with vehicle and driver joined
func (s *OperationService) GetByID(ctx context.Context, id string) (*models.Operation, error) {
	return s.operationRepo.GetByID(ctx, id)
}

// Create registers a new planned operation
func (s *OperationService) Create(ctx context.Context, op *models.Operation) error {
	if op.OperationNumber == "" {
		return fmt.Errorf("operation number is required")
	}
	return s.operationRepo.Create(ctx, op)
}

// Update modifies an operation's editable fields
func (s *OperationService) Update(ctx context.Context, op *models.Operation) error {
	return s.operationRepo.Update(ctx, op)
}

// Delete removes an operation
func (s *OperationService) Delete(ctx context.Context, id string) error {
	return s.operationRepo.Delete(ctx, id)
}

// Start stamps the actual start time with the current instant
func (s *OperationService) Start(ctx context.Context, id string) error {
	return s.operationRepo.Start(ctx, id, time.Now().UnixMilli())
}

// Complete stamps the actual end time and stores the distance travelled,
// computed from the operation's GPS breadcrumbs
func (s *OperationService) Complete(ctx context.Context, id string) error {
	logs, err := s.gpsRepo.ListByOperation(ctx, id)
	if err != nil {
		return err
	}

	var distanceKm float64
	if len(logs) > 1 {
		points := make([]models.RoutePoint, len(logs))
		for i, g := range logs {
			points[i] = models.RoutePoint{Latitude: g.Latitude, Longitude: g.Longitude, RecordedAt: g.RecordedAt}
		}
		distanceKm = RouteLengthKm(points)
	}

	return s.operationRepo.Complete(ctx, id, time.Now().UnixMilli(), distanceKm)
}
