package service

import (
	"context"

	"github.com/fleetops/fleetops-backend-go/internal/models"
	"github.com/fleetops/fleetops-backend-go/internal/repository"
)

// VehicleService handles business logic for vehicles
type VehicleService struct {
	repo *repository.VehicleRepository
}

// NewVehicleService creates a new vehicle service
func NewVehicleService(repo *repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

func (s *VehicleService) List(ctx context.Context, filter models.PageFilter) ([]models.Vehicle, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *VehicleService) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *VehicleService) Create(ctx context.Context, v *models.Vehicle) error {
	return s.repo.Create(ctx, v)
}

func (s *VehicleService) Update(ctx context.Context, v *models.Vehicle) error {
	return s.repo.Update(ctx, v)
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DriverService handles business logic for drivers
type DriverService struct {
	repo *repository.DriverRepository
}

// NewDriverService creates a new driver service
func NewDriverService(repo *repository.DriverRepository) *DriverService {
	return &DriverService{repo: repo}
}

func (s *DriverService) List(ctx context.Context, filter models.PageFilter) ([]models.Driver, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *DriverService) GetByID(ctx context.Context, id string) (*models.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *DriverService) Create(ctx context.Context, d *models.Driver) error {
	return s.repo.Create(ctx, d)
}

func (s *DriverService) Update(ctx context.Context, d *models.Driver) error {
	return s.repo.Update(ctx, d)
}

func (s *DriverService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// LocationService handles business logic for locations
type LocationService struct {
	repo *repository.LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(repo *repository.LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) List(ctx context.Context, filter models.PageFilter) ([]models.Location, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *LocationService) GetByID(ctx context.Context, id string) (*models.Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) Create(ctx context.Context, l *models.Location) error {
	return s.repo.Create(ctx, l)
}

func (s *LocationService) Update(ctx context.Context, l *models.Location) error {
	return s.repo.Update(ctx, l)
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ItemService handles business logic for cargo items
type ItemService struct {
	repo *repository.ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo *repository.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List(ctx context.Context, filter models.PageFilter) ([]models.Item, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *ItemService) GetByID(ctx context.Context, id string) (*models.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ItemService) Create(ctx context.Context, it *models.Item) error {
	return s.repo.Create(ctx, it)
}

func (s *ItemService) Update(ctx context.Context, it *models.Item) error {
	return s.repo.Update(ctx, it)
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
