package service

import (
	"context"
	"sort"
	"time"

	"motorpool/internal/daterange"
	"motorpool/internal/models"
	"motorpool/internal/repository"

	"github.com/google/uuid"
)

// In-memory fakes with copy semantics: reads hand out copies so a service
// mutation only sticks after an explicit Save, mirroring a real store.

type memUserRepo struct {
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (m *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	cp := u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, models.NewNotFoundError("User", email)
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type memVehicleRepo struct {
	vehicles map[string]models.Vehicle
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{vehicles: make(map[string]models.Vehicle)}
}

func (m *memVehicleRepo) GetByID(_ context.Context, id string) (*models.Vehicle, error) {
	v, ok := m.vehicles[id]
	if !ok {
		return nil, models.NewNotFoundError("Vehicle", id)
	}
	cp := v
	return &cp, nil
}

func (m *memVehicleRepo) GetByPlate(_ context.Context, plate string) (*models.Vehicle, error) {
	for _, v := range m.vehicles {
		if v.LicensePlate == plate {
			cp := v
			return &cp, nil
		}
	}
	return nil, models.NewNotFoundError("Vehicle", plate)
}

func (m *memVehicleRepo) List(_ context.Context) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, 0, len(m.vehicles))
	for _, v := range m.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (m *memVehicleRepo) Create(_ context.Context, vehicle *models.Vehicle) error {
	if vehicle.ID == "" {
		vehicle.ID = uuid.NewString()
	}
	m.vehicles[vehicle.ID] = *vehicle
	return nil
}

func (m *memVehicleRepo) Save(_ context.Context, vehicle *models.Vehicle) error {
	m.vehicles[vehicle.ID] = *vehicle
	return nil
}

type memRentalRepo struct {
	requests map[string]models.RentalRequest
	clock    time.Time
}

func newMemRentalRepo() *memRentalRepo {
	return &memRentalRepo{
		requests: make(map[string]models.RentalRequest),
		clock:    time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memRentalRepo) GetByID(_ context.Context, id string) (*models.RentalRequest, error) {
	r, ok := m.requests[id]
	if !ok {
		return nil, models.NewNotFoundError("Rental request", id)
	}
	cp := r
	return &cp, nil
}

func (m *memRentalRepo) List(_ context.Context, status models.RentalStatus) ([]models.RentalRequest, error) {
	out := make([]models.RentalRequest, 0, len(m.requests))
	for _, r := range m.requests {
		if status != "" && r.Status != status {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *memRentalRepo) Create(_ context.Context, request *models.RentalRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.CreatedAt.IsZero() {
		// Deterministic, strictly increasing creation times.
		m.clock = m.clock.Add(time.Minute)
		request.CreatedAt = m.clock
	}
	m.requests[request.ID] = *request
	return nil
}

func (m *memRentalRepo) Save(_ context.Context, request *models.RentalRequest) error {
	m.requests[request.ID] = *request
	return nil
}

func (m *memRentalRepo) FindOpenDuplicate(_ context.Context, userID, vehicleID string, period daterange.Range) (*models.RentalRequest, error) {
	for _, r := range m.requests {
		if r.UserID != userID || r.VehicleID != vehicleID {
			continue
		}
		if r.Status != models.RentalStatusPending && r.Status != models.RentalStatusApproved {
			continue
		}
		if r.StartDate.Equal(period.Start) && r.EndDate.Equal(period.End) {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRentalRepo) FindApprovedOverlap(_ context.Context, vehicleID string, period daterange.Range, excludeID string) (*models.RentalRequest, error) {
	for _, r := range m.requests {
		if r.VehicleID != vehicleID || r.Status != models.RentalStatusApproved {
			continue
		}
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if r.Period().Overlaps(period) {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRentalRepo) Transaction(_ context.Context, fn func(repository.RentalRequestRepository) error) error {
	return fn(m)
}
