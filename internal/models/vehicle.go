package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleStatus is the operational state of a fleet vehicle.
type VehicleStatus string

const (
	// VehicleStatusAvailable means the vehicle can be rented.
	VehicleStatusAvailable VehicleStatus = "available"
	// VehicleStatusMaintenance means the vehicle is out of service and
	// blocks new rental requests.
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// ValidVehicleStatus reports whether s is a known status value.
func ValidVehicleStatus(s VehicleStatus) bool {
	return s == VehicleStatusAvailable || s == VehicleStatusMaintenance
}

// TransmissionType enumerates vehicle transmissions.
type TransmissionType string

const (
	TransmissionManual    TransmissionType = "manual"
	TransmissionAutomatic TransmissionType = "automatic"
)

// FuelType enumerates vehicle fuel systems.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelEthanol  FuelType = "ethanol"
	FuelFlex     FuelType = "flex"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
)

// Vehicle is a fleet vehicle with its maintenance bookkeeping. Mileage is
// monotonically non-decreasing; LastMaintenanceMileage never exceeds
// Mileage; status is forced to maintenance whenever Mileage reaches
// NextMaintenance, unless an administrative override intervened.
type Vehicle struct {
	ID                     string           `gorm:"primaryKey;size:36" json:"id"`
	Brand                  string           `gorm:"size:80;not null" json:"brand"`
	Model                  string           `gorm:"size:80;not null" json:"model"`
	Year                   int              `gorm:"not null" json:"year"`
	LicensePlate           string           `gorm:"size:10;uniqueIndex;not null" json:"license_plate"`
	Color                  string           `gorm:"size:40;not null" json:"color"`
	Mileage                int              `gorm:"not null;default:0" json:"mileage"`
	Status                 VehicleStatus    `gorm:"type:varchar(16);not null;default:'available';index" json:"status"`
	TransmissionType       TransmissionType `gorm:"type:varchar(16);not null" json:"transmission_type"`
	FuelType               FuelType         `gorm:"type:varchar(16);not null" json:"fuel_type"`
	Passengers             int              `gorm:"not null" json:"passengers"`
	NextMaintenance        int              `gorm:"not null" json:"next_maintenance"`
	LastMaintenanceMileage int              `gorm:"not null;default:0" json:"last_maintenance_mileage"`
	CreatedAt              time.Time        `json:"created_at"`
	UpdatedAt              time.Time        `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (v *Vehicle) BeforeCreate(_ *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// MaintenanceDue reports whether the mileage reading has reached the
// maintenance threshold. Crossing it forces the vehicle out of service;
// only a manual override can put it back before maintenance is recorded.
func (v *Vehicle) MaintenanceDue() bool {
	return v.Mileage >= v.NextMaintenance
}

// InService reports whether the vehicle can take new rental requests.
func (v *Vehicle) InService() bool {
	return v.Status == VehicleStatusAvailable
}
