package service

import (
	"context"
	"fmt"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/repository"
)

// ActivityService handles business logic for work activities
type ActivityService struct {
	activityRepo *repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListByOperation retrieves the activities of an operation
func (s *ActivityService) ListByOperation(ctx context.Context, operationID string, filter models.TimelineFilter) ([]models.Activity, error) {
	return s.activityRepo.ListByOperation(ctx, operationID, filter)
}

// GetByID retrieves a single activity
func (s *ActivityService) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	return s.activityRepo.GetByID(ctx, id)
}

// Create records a new activity for an operation
func (s *ActivityService) Create(ctx context.Context, a *models.Activity) error {
	if !models.IsValidActivityType(a.ActivityType) {
		return fmt.Errorf("invalid activity type: %s", a.ActivityType)
	}
	return s.activityRepo.Create(ctx, a)
}

// Update modifies an existing activity
func (s *ActivityService) Update(ctx context.Context, a *models.Activity) error {
	if !models.IsValidActivityType(a.ActivityType) {
		return fmt.Errorf("invalid activity type: %s", a.ActivityType)
	}
	return s.activityRepo.Update(ctx, a)
}
