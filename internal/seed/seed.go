package seed

import (
	"fmt"
	"log"

	"motorpool/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Seeder orchestrates demo-data population.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Requests go first so foreign keys never
// dangle mid-wipe.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.RentalRequest{},
		&models.Vehicle{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates numUsers requesters plus one well-known admin account.
func (s *Seeder) SeedUsers(numUsers int) ([]*models.User, error) {
	admin, err := s.factory.CreateUser(func(u *models.User) {
		u.Name = "Fleet Admin"
		u.Email = "admin@motorpool.local"
		u.Role = models.UserRoleAdmin
	})
	if err != nil {
		return nil, err
	}

	users := []*models.User{admin}
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	log.Printf("Seeded %d users (1 admin)", len(users))
	return users, nil
}

// SeedFleet creates numVehicles vehicles. Roughly one in six is parked in
// maintenance so the demo fleet exercises the blocked-request path.
func (s *Seeder) SeedFleet(numVehicles int) ([]*models.Vehicle, error) {
	vehicles := make([]*models.Vehicle, 0, numVehicles)
	for i := 0; i < numVehicles; i++ {
		inShop := i%6 == 5
		vehicle, err := s.factory.CreateVehicle(func(v *models.Vehicle) {
			if inShop {
				v.Status = models.VehicleStatusMaintenance
				v.NextMaintenance = v.Mileage
			}
		})
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}

	log.Printf("Seeded %d vehicles", len(vehicles))
	return vehicles, nil
}

// SeedRequests creates numRequests rental requests spread across the given
// users and vehicles. At most one request per vehicle is approved, so the
// seeded data never violates the no-overlapping-approvals invariant.
func (s *Seeder) SeedRequests(users []*models.User, vehicles []*models.Vehicle, numRequests int) ([]*models.RentalRequest, error) {
	if len(users) == 0 || len(vehicles) == 0 {
		return nil, fmt.Errorf("cannot seed requests without users and vehicles")
	}

	approvedVehicles := make(map[string]bool)
	requests := make([]*models.RentalRequest, 0, numRequests)

	for i := 0; i < numRequests; i++ {
		user := users[gofakeit.Number(0, len(users)-1)]
		vehicle := vehicles[gofakeit.Number(0, len(vehicles)-1)]
		daysFromNow := gofakeit.Number(1, 60)
		span := gofakeit.Number(1, 5)

		request, err := s.factory.CreateRentalRequest(user, vehicle, daysFromNow, span, func(r *models.RentalRequest) {
			if vehicle.InService() && !approvedVehicles[vehicle.ID] && gofakeit.Bool() {
				r.Status = models.RentalStatusApproved
				r.AdminNotes = "approved during seeding"
				approvedVehicles[vehicle.ID] = true
			} else if gofakeit.Number(0, 4) == 0 {
				r.Status = models.RentalStatusRejected
				r.AdminNotes = "rejected during seeding"
			}
		})
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	log.Printf("Seeded %d rental requests", len(requests))
	return requests, nil
}
