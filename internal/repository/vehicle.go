package repository

import (
	"context"
	"errors"

	"motorpool/internal/models"

	"gorm.io/gorm"
)

// VehicleRepository defines the interface for vehicle data operations.
// The license plate is the natural external key; id stays internal.
type VehicleRepository interface {
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error)
	List(ctx context.Context) ([]models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Save(ctx context.Context, vehicle *models.Vehicle) error
}

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Vehicle", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "license_plate = ?", plate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Vehicle", plate)
		}
		return nil, models.NewInternalError(err)
	}
	return &vehicle, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("A vehicle with this license plate already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *vehicleRepository) Save(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(vehicle).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
