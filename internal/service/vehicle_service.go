// Package service implements the business rules of the fleet: the vehicle
// maintenance lifecycle and the reservation conflict engine. Services hold
// no state beyond their store collaborators; every operation is a single
// read-modify-write against the backing store.
package service

import (
	"context"
	"strings"

	"motorpool/internal/models"
	"motorpool/internal/observability"
	"motorpool/internal/repository"
	"motorpool/internal/validation"
)

// VehicleService owns a vehicle's operational state: odometer reading,
// maintenance threshold, and availability. Crossing the mileage threshold
// forces the vehicle out of service; a manual override can put it back
// until the next mileage update or maintenance record.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService returns a new VehicleService.
func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// CreateVehicleInput carries the already-parsed fields for vehicle creation.
// Status is optional and defaults to available; a vehicle past its threshold
// is forced into maintenance regardless.
type CreateVehicleInput struct {
	Brand                  string
	Model                  string
	Year                   int
	LicensePlate           string
	Color                  string
	Mileage                int
	Status                 models.VehicleStatus
	TransmissionType       models.TransmissionType
	FuelType               models.FuelType
	Passengers             int
	NextMaintenance        int
	LastMaintenanceMileage int
}

// CreateVehicle registers a vehicle. A vehicle that is already past its
// maintenance threshold at creation enters service as "maintenance", not
// "available".
func (s *VehicleService) CreateVehicle(ctx context.Context, input CreateVehicleInput) (*models.Vehicle, error) {
	plate := validation.NormalizePlate(input.LicensePlate)
	if err := validation.ValidatePlate(plate); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if strings.TrimSpace(input.Brand) == "" {
		return nil, models.NewValidationError("brand is required")
	}
	if strings.TrimSpace(input.Model) == "" {
		return nil, models.NewValidationError("model is required")
	}
	if strings.TrimSpace(input.Color) == "" {
		return nil, models.NewValidationError("color is required")
	}
	if err := validation.ValidateYear(input.Year); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassengers(input.Passengers); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	switch input.TransmissionType {
	case models.TransmissionManual, models.TransmissionAutomatic:
	default:
		return nil, models.NewValidationError("invalid transmission type")
	}
	switch input.FuelType {
	case models.FuelGasoline, models.FuelEthanol, models.FuelFlex, models.FuelDiesel, models.FuelElectric, models.FuelHybrid:
	default:
		return nil, models.NewValidationError("invalid fuel type")
	}
	if input.Mileage < 0 {
		return nil, models.NewValidationError("mileage cannot be negative")
	}
	if input.NextMaintenance < 0 {
		return nil, models.NewValidationError("nextMaintenance cannot be negative")
	}
	if input.LastMaintenanceMileage < 0 {
		return nil, models.NewValidationError("lastMaintenanceMileage cannot be negative")
	}
	if input.LastMaintenanceMileage > input.Mileage {
		return nil, models.NewValidationError("lastMaintenanceMileage cannot exceed mileage")
	}
	status := input.Status
	if status == "" {
		status = models.VehicleStatusAvailable
	}
	if !models.ValidVehicleStatus(status) {
		return nil, models.NewValidationError("invalid status: use available or maintenance")
	}

	if existing, err := s.vehicleRepo.GetByPlate(ctx, plate); err == nil && existing != nil {
		return nil, models.NewConflictError("A vehicle with this license plate already exists")
	} else if err != nil && !models.IsCode(err, models.CodeNotFound) {
		return nil, err
	}

	vehicle := &models.Vehicle{
		Brand:                  strings.TrimSpace(input.Brand),
		Model:                  strings.TrimSpace(input.Model),
		Year:                   input.Year,
		LicensePlate:           plate,
		Color:                  strings.TrimSpace(input.Color),
		Mileage:                input.Mileage,
		Status:                 status,
		TransmissionType:       input.TransmissionType,
		FuelType:               input.FuelType,
		Passengers:             input.Passengers,
		NextMaintenance:        input.NextMaintenance,
		LastMaintenanceMileage: input.LastMaintenanceMileage,
	}
	if vehicle.MaintenanceDue() {
		vehicle.Status = models.VehicleStatusMaintenance
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehicles returns all vehicles, most recently registered first.
func (s *VehicleService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

// FindByPlate looks a vehicle up by its normalized license plate.
func (s *VehicleService) FindByPlate(ctx context.Context, plate string) (*models.Vehicle, error) {
	p := validation.NormalizePlate(plate)
	if p == "" {
		return nil, models.NewValidationError("license plate is required")
	}
	return s.vehicleRepo.GetByPlate(ctx, p)
}

// UpdateMileage stores a new odometer reading. Mileage is monotonic: a
// reading below the current one signals bad data upstream and is rejected,
// never clamped. Reaching the maintenance threshold forces the vehicle out
// of service, overriding any prior manual "available" setting.
func (s *VehicleService) UpdateMileage(ctx context.Context, plate string, mileage int) (*models.Vehicle, error) {
	if mileage < 0 {
		return nil, models.NewValidationError("mileage cannot be negative")
	}

	vehicle, err := s.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	if mileage < vehicle.Mileage {
		return nil, models.NewValidationError("mileage cannot decrease")
	}

	vehicle.Mileage = mileage
	if vehicle.MaintenanceDue() && vehicle.Status != models.VehicleStatusMaintenance {
		vehicle.Status = models.VehicleStatusMaintenance
		observability.MaintenanceTransitions.WithLabelValues("threshold").Inc()
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// SetStatusOverride unconditionally sets the vehicle's status. This is the
// administrative escape hatch: it can set "available" while mileage is past
// the threshold and is deliberately not re-validated against it.
func (s *VehicleService) SetStatusOverride(ctx context.Context, plate string, status models.VehicleStatus) (*models.Vehicle, error) {
	if !models.ValidVehicleStatus(status) {
		return nil, models.NewValidationError("invalid status: use available or maintenance")
	}

	vehicle, err := s.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	if vehicle.Status != status {
		observability.MaintenanceTransitions.WithLabelValues("override").Inc()
	}
	vehicle.Status = status

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// RecordMaintenance marks a completed service: the current reading becomes
// the maintenance baseline, the next threshold must be strictly ahead of
// it, and the vehicle always returns to service.
func (s *VehicleService) RecordMaintenance(ctx context.Context, plate string, newThreshold int) (*models.Vehicle, error) {
	if newThreshold < 0 {
		return nil, models.NewValidationError("newThreshold cannot be negative")
	}

	vehicle, err := s.FindByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	if newThreshold <= vehicle.Mileage {
		return nil, models.NewValidationError("newThreshold must be greater than the current mileage")
	}

	vehicle.LastMaintenanceMileage = vehicle.Mileage
	vehicle.NextMaintenance = newThreshold
	vehicle.Status = models.VehicleStatusAvailable
	observability.MaintenanceTransitions.WithLabelValues("completed").Inc()

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// AssertInService loads the vehicle by id and fails with a conflict when it
// is under maintenance. It always reads live state: availability can change
// between a request's submission and its adjudication.
func (s *VehicleService) AssertInService(ctx context.Context, vehicleID string) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.InService() {
		observability.ReservationConflicts.WithLabelValues(observability.ConflictMaintenance).Inc()
		return nil, models.NewConflictError("Vehicle under maintenance cannot be rented")
	}
	return vehicle, nil
}
