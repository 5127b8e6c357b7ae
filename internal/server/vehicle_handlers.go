package server

import (
	"motorpool/internal/models"
	"motorpool/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createVehicleRequest struct {
	Brand                  string `json:"brand"`
	Model                  string `json:"model"`
	Year                   int    `json:"year"`
	LicensePlate           string `json:"license_plate"`
	Color                  string `json:"color"`
	Mileage                int    `json:"mileage"`
	Status                 string `json:"status"`
	TransmissionType       string `json:"transmission_type"`
	FuelType               string `json:"fuel_type"`
	Passengers             int    `json:"passengers"`
	NextMaintenance        int    `json:"next_maintenance"`
	LastMaintenanceMileage int    `json:"last_maintenance_mileage"`
}

// CreateVehicle handles POST /api/vehicles.
func (s *Server) CreateVehicle(c *fiber.Ctx) error {
	var req createVehicleRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	vehicle, err := s.vehicleService.CreateVehicle(c.UserContext(), service.CreateVehicleInput{
		Brand:                  req.Brand,
		Model:                  req.Model,
		Year:                   req.Year,
		LicensePlate:           req.LicensePlate,
		Color:                  req.Color,
		Mileage:                req.Mileage,
		Status:                 models.VehicleStatus(req.Status),
		TransmissionType:       models.TransmissionType(req.TransmissionType),
		FuelType:               models.FuelType(req.FuelType),
		Passengers:             req.Passengers,
		NextMaintenance:        req.NextMaintenance,
		LastMaintenanceMileage: req.LastMaintenanceMileage,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

// ListVehicles handles GET /api/vehicles.
func (s *Server) ListVehicles(c *fiber.Ctx) error {
	vehicles, err := s.vehicleService.ListVehicles(c.UserContext())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(vehicles)
}

// GetVehicleByPlate handles GET /api/vehicles/:plate.
func (s *Server) GetVehicleByPlate(c *fiber.Ctx) error {
	vehicle, err := s.vehicleService.FindByPlate(c.UserContext(), c.Params("plate"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(vehicle)
}

type updateMileageRequest struct {
	Mileage *int `json:"mileage"`
}

// UpdateVehicleMileage handles PATCH /api/vehicles/:plate/mileage.
func (s *Server) UpdateVehicleMileage(c *fiber.Ctx) error {
	var req updateMileageRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}
	if req.Mileage == nil {
		return handleError(c, models.NewValidationError("mileage is required and must be a number"))
	}

	vehicle, err := s.vehicleService.UpdateMileage(c.UserContext(), c.Params("plate"), *req.Mileage)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(vehicle)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetVehicleStatus handles PATCH /api/vehicles/:plate/status. This is the
// manual override escape hatch and bypasses the mileage-derived rules.
func (s *Server) SetVehicleStatus(c *fiber.Ctx) error {
	var req setStatusRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	vehicle, err := s.vehicleService.SetStatusOverride(c.UserContext(), c.Params("plate"), models.VehicleStatus(req.Status))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(vehicle)
}

type recordMaintenanceRequest struct {
	NextMaintenance *int `json:"next_maintenance"`
}

// RecordVehicleMaintenance handles POST /api/vehicles/:plate/maintenance.
func (s *Server) RecordVehicleMaintenance(c *fiber.Ctx) error {
	var req recordMaintenanceRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}
	if req.NextMaintenance == nil {
		return handleError(c, models.NewValidationError("next_maintenance is required and must be a number"))
	}

	vehicle, err := s.vehicleService.RecordMaintenance(c.UserContext(), c.Params("plate"), *req.NextMaintenance)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(vehicle)
}
