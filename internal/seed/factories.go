// Package seed provides helpers to create demo data for the fleet database.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"motorpool/internal/daterange"
	"motorpool/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, rnd: rand.New(rand.NewSource(seed))}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:  gofakeit.Name(),
		Email: fmt.Sprintf("%s.%s@%s", strings.ToLower(gofakeit.FirstName()), gofakeit.UUID()[:8], gofakeit.DomainName()),
		Role:  models.UserRoleUser,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// CreateVehicle constructs and persists a sample vehicle with plausible
// maintenance bookkeeping.
func (f *Factory) CreateVehicle(overrides ...func(*models.Vehicle)) (*models.Vehicle, error) {
	car := gofakeit.Car()
	mileage := gofakeit.Number(5000, 120000)

	vehicle := &models.Vehicle{
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         gofakeit.Number(2015, time.Now().Year()),
		LicensePlate: f.plate(),
		Color:        gofakeit.Color(),
		Mileage:      mileage,
		Status:       models.VehicleStatusAvailable,
		// Next service due somewhere within the usual 10k interval.
		NextMaintenance:        mileage + gofakeit.Number(500, 10000),
		LastMaintenanceMileage: max(0, mileage-gofakeit.Number(1000, 9000)),
		TransmissionType:       f.pickTransmission(),
		FuelType:               f.pickFuel(),
		Passengers:             gofakeit.Number(2, 7),
	}

	for _, override := range overrides {
		override(vehicle)
	}

	if err := f.db.Create(vehicle).Error; err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// CreateRentalRequest constructs and persists a request tying a user to a
// vehicle over an inclusive day range starting daysFromNow from today.
func (f *Factory) CreateRentalRequest(user *models.User, vehicle *models.Vehicle, daysFromNow, spanDays int, overrides ...func(*models.RentalRequest)) (*models.RentalRequest, error) {
	start := daterange.Today().AddDate(0, 0, daysFromNow)
	end := start.AddDate(0, 0, spanDays-1)

	request := &models.RentalRequest{
		UserID:    user.ID,
		VehicleID: vehicle.ID,
		StartDate: start,
		EndDate:   end,
		Purpose:   gofakeit.Sentence(6),
		Status:    models.RentalStatusPending,
	}

	for _, override := range overrides {
		override(request)
	}

	if err := f.db.Create(request).Error; err != nil {
		return nil, fmt.Errorf("create rental request: %w", err)
	}
	return request, nil
}

// plate produces a Mercosul-style license plate (LLLNLNN).
func (f *Factory) plate() string {
	return strings.ToUpper(gofakeit.LetterN(3)) + gofakeit.DigitN(1) + strings.ToUpper(gofakeit.LetterN(1)) + gofakeit.DigitN(2)
}

func (f *Factory) pickTransmission() models.TransmissionType {
	if f.rnd.Intn(2) == 0 {
		return models.TransmissionManual
	}
	return models.TransmissionAutomatic
}

func (f *Factory) pickFuel() models.FuelType {
	fuels := []models.FuelType{
		models.FuelGasoline, models.FuelEthanol, models.FuelFlex,
		models.FuelDiesel, models.FuelElectric, models.FuelHybrid,
	}
	return fuels[f.rnd.Intn(len(fuels))]
}
