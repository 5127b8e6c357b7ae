package repository

import (
	"context"
	"errors"
	"strings"

	"motorpool/internal/database"
	"motorpool/internal/daterange"
	"motorpool/internal/models"

	"gorm.io/gorm"
)

// openStatuses are the states in which a request blocks an identical
// resubmission for the same user, vehicle, and period.
var openStatuses = []models.RentalStatus{
	models.RentalStatusPending,
	models.RentalStatusApproved,
}

// RentalRequestRepository defines the interface for rental request data
// operations. Lookup helpers return (nil, nil) when no row matches so
// callers can distinguish "no conflict" from a store failure.
type RentalRequestRepository interface {
	GetByID(ctx context.Context, id string) (*models.RentalRequest, error)
	// List returns requests most recent first, optionally filtered by status
	// ("" means all).
	List(ctx context.Context, status models.RentalStatus) ([]models.RentalRequest, error)
	Create(ctx context.Context, request *models.RentalRequest) error
	Save(ctx context.Context, request *models.RentalRequest) error
	// FindOpenDuplicate returns a pending or approved request by the same
	// user for the same vehicle with exactly the same period.
	FindOpenDuplicate(ctx context.Context, userID, vehicleID string, period daterange.Range) (*models.RentalRequest, error)
	// FindApprovedOverlap returns an approved request for the vehicle whose
	// inclusive range intersects the given period, excluding excludeID
	// ("" excludes nothing).
	FindApprovedOverlap(ctx context.Context, vehicleID string, period daterange.Range, excludeID string) (*models.RentalRequest, error)
	// Transaction runs fn against a repository bound to a database
	// transaction; fn's error rolls the transaction back and is returned.
	Transaction(ctx context.Context, fn func(RentalRequestRepository) error) error
}

type rentalRequestRepository struct {
	db *gorm.DB
}

// NewRentalRequestRepository creates a new rental request repository
func NewRentalRequestRepository(db *gorm.DB) RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id string) (*models.RentalRequest, error) {
	var request models.RentalRequest
	if err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Rental request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *rentalRequestRepository) List(ctx context.Context, status models.RentalStatus) ([]models.RentalRequest, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.RentalRequest
	if err := q.Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *rentalRequestRepository) Create(ctx context.Context, request *models.RentalRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *rentalRequestRepository) Save(ctx context.Context, request *models.RentalRequest) error {
	if err := r.db.WithContext(ctx).Save(request).Error; err != nil {
		return translateConstraint(err)
	}
	return nil
}

func (r *rentalRequestRepository) FindOpenDuplicate(ctx context.Context, userID, vehicleID string, period daterange.Range) (*models.RentalRequest, error) {
	var request models.RentalRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ? AND start_date = ? AND end_date = ? AND status IN ?",
			userID, vehicleID, period.Start, period.End, openStatuses).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *rentalRequestRepository) FindApprovedOverlap(ctx context.Context, vehicleID string, period daterange.Range, excludeID string) (*models.RentalRequest, error) {
	// Inclusive intersection: [s1,e1] and [s2,e2] overlap iff s1 <= e2 and e1 >= s2.
	q := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			vehicleID, models.RentalStatusApproved, period.End, period.Start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var request models.RentalRequest
	if err := q.First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &request, nil
}

func (r *rentalRequestRepository) Transaction(ctx context.Context, fn func(RentalRequestRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&rentalRequestRepository{db: tx})
	})
}

// translateConstraint maps a violation of the approved-overlap exclusion
// constraint to a Conflict. The constraint fires when a concurrent approval
// won the race after the application-level re-check had already passed.
func translateConstraint(err error) error {
	if strings.Contains(err.Error(), database.ApprovedOverlapConstraint) {
		return models.NewConflictError("Vehicle already has an approved reservation for an overlapping period")
	}
	return models.NewInternalError(err)
}
