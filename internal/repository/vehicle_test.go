package repository

import (
	"context"
	"testing"

	"motorpool/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(plate string) *models.Vehicle {
	return &models.Vehicle{
		Brand:            "Fiat",
		Model:            "Argo",
		Year:             2024,
		LicensePlate:     plate,
		Color:            "silver",
		Mileage:          45000,
		Status:           models.VehicleStatusAvailable,
		TransmissionType: models.TransmissionManual,
		FuelType:         models.FuelFlex,
		Passengers:       5,
		NextMaintenance:  50000,
	}
}

func TestVehicleCreateAndGet(t *testing.T) {
	repo := NewVehicleRepository(openTestDB(t))
	ctx := context.Background()

	v := newTestVehicle("ABC1D23")
	require.NoError(t, repo.Create(ctx, v))
	require.NotEmpty(t, v.ID, "BeforeCreate should assign a uuid")

	byID, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABC1D23", byID.LicensePlate)

	byPlate, err := repo.GetByPlate(ctx, "ABC1D23")
	require.NoError(t, err)
	assert.Equal(t, v.ID, byPlate.ID)
}

func TestVehicleCreateDuplicatePlateConflicts(t *testing.T) {
	repo := NewVehicleRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestVehicle("ABC1D23")))

	// The unique-index violation must surface as a Conflict, not Internal:
	// this is the backstop when two creates race past the service pre-check.
	err := repo.Create(ctx, newTestVehicle("ABC1D23"))
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeConflict), "got %v", err)
}

func TestVehicleGetNotFound(t *testing.T) {
	repo := NewVehicleRepository(openTestDB(t))
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "missing")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))

	_, err = repo.GetByPlate(ctx, "ZZZ9999")
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}

func TestVehicleSavePersistsMutations(t *testing.T) {
	repo := NewVehicleRepository(openTestDB(t))
	ctx := context.Background()

	v := newTestVehicle("ABC1D23")
	require.NoError(t, repo.Create(ctx, v))

	v.Mileage = 50000
	v.Status = models.VehicleStatusMaintenance
	require.NoError(t, repo.Save(ctx, v))

	got, err := repo.GetByID(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, 50000, got.Mileage)
	assert.Equal(t, models.VehicleStatusMaintenance, got.Status)
}

func TestVehicleList(t *testing.T) {
	repo := NewVehicleRepository(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestVehicle("ABC1D23")))
	require.NoError(t, repo.Create(ctx, newTestVehicle("DEF4G56")))

	vehicles, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)
}
