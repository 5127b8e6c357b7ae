package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"motorpool/internal/daterange"
	"motorpool/internal/models"
	"motorpool/internal/observability"
	"motorpool/internal/repository"
	"motorpool/internal/validation"
)

// RentalService adjudicates rental requests against a vehicle's calendar.
// Only approved requests hold dates: concurrent pending requests for
// overlapping periods may coexist and are resolved at approval time.
type RentalService struct {
	rentalRepo repository.RentalRequestRepository
	userRepo   repository.UserRepository
	vehicles   *VehicleService
	maxDays    int

	// now is the clock used for the "no past start date" rule; tests
	// replace it to pin the current day.
	now func() time.Time
}

// NewRentalService returns a new RentalService. maxDays caps the inclusive
// day span of a single request.
func NewRentalService(
	rentalRepo repository.RentalRequestRepository,
	userRepo repository.UserRepository,
	vehicles *VehicleService,
	maxDays int,
) *RentalService {
	return &RentalService{
		rentalRepo: rentalRepo,
		userRepo:   userRepo,
		vehicles:   vehicles,
		maxDays:    maxDays,
		now:        time.Now,
	}
}

// CreateRequestInput carries the already-parsed fields for request creation.
// Dates are ISO date strings; time-of-day, if present, is discarded.
type CreateRequestInput struct {
	UserID    string
	VehicleID string
	StartDate string
	EndDate   string
	Purpose   string
}

// normalizePeriod parses and validates the requested period: both bounds
// snap to midnight UTC, the end must not precede the start, the inclusive
// span must not exceed maxDays, and the start must not precede today.
func (s *RentalService) normalizePeriod(startDate, endDate string) (daterange.Range, error) {
	start, err := daterange.ParseDay(startDate)
	if err != nil {
		return daterange.Range{}, models.NewValidationError("invalid startDate: " + err.Error())
	}
	end, err := daterange.ParseDay(endDate)
	if err != nil {
		return daterange.Range{}, models.NewValidationError("invalid endDate: " + err.Error())
	}

	period := daterange.Range{Start: start, End: end}
	if !period.Valid() {
		return daterange.Range{}, models.NewValidationError("endDate cannot be before startDate")
	}
	if period.Days() > s.maxDays {
		return daterange.Range{}, models.NewValidationError(fmt.Sprintf("rental period cannot exceed %d days", s.maxDays))
	}
	if period.Start.Before(daterange.Day(s.now())) {
		return daterange.Range{}, models.NewValidationError("startDate cannot be in the past")
	}
	return period, nil
}

// CreateRequest validates and persists a new pending rental request.
// Pending requests never block each other; only an identical open request
// (same user, vehicle, and exact period) or an approved overlapping
// reservation rejects creation.
func (s *RentalService) CreateRequest(ctx context.Context, input CreateRequestInput) (*models.RentalRequest, error) {
	userID := strings.TrimSpace(input.UserID)
	if userID == "" {
		return nil, models.NewValidationError("userId is required")
	}
	vehicleID := strings.TrimSpace(input.VehicleID)
	if vehicleID == "" {
		return nil, models.NewValidationError("vehicleId is required")
	}
	purpose, err := validation.ValidatePurpose(input.Purpose)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	period, err := s.normalizePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.vehicles.AssertInService(ctx, vehicleID); err != nil {
		return nil, err
	}

	duplicate, err := s.rentalRepo.FindOpenDuplicate(ctx, userID, vehicleID, period)
	if err != nil {
		return nil, err
	}
	if duplicate != nil {
		observability.ReservationConflicts.WithLabelValues(observability.ConflictDuplicate).Inc()
		return nil, models.NewConflictError("Duplicate request for the same vehicle and period")
	}

	overlap, err := s.rentalRepo.FindApprovedOverlap(ctx, vehicleID, period, "")
	if err != nil {
		return nil, err
	}
	if overlap != nil {
		observability.ReservationConflicts.WithLabelValues(observability.ConflictOverlap).Inc()
		return nil, models.NewConflictError("Vehicle already has an approved reservation for an overlapping period")
	}

	request := &models.RentalRequest{
		UserID:    userID,
		VehicleID: vehicleID,
		StartDate: period.Start,
		EndDate:   period.End,
		Purpose:   purpose,
		Status:    models.RentalStatusPending,
	}
	if err := s.rentalRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// AdminCreateReservation creates a request on behalf of another user. The
// acting admin must exist; the request itself follows the exact same rules
// as a user-submitted one.
func (s *RentalService) AdminCreateReservation(ctx context.Context, adminUserID string, input CreateRequestInput) (*models.RentalRequest, error) {
	adminID := strings.TrimSpace(adminUserID)
	if adminID == "" {
		return nil, models.NewValidationError("adminUserId is required")
	}
	if _, err := s.userRepo.GetByID(ctx, adminID); err != nil {
		return nil, err
	}
	return s.CreateRequest(ctx, input)
}

// Approve transitions a pending request to approved. Approving an already
// approved request is an idempotent no-op; approving a rejected one fails.
// The vehicle's availability and the overlap check are re-validated at
// decision time inside a transaction, because state may have changed while
// the request sat pending; the store's exclusion constraint backstops the
// residual race between two concurrent approvals.
func (s *RentalService) Approve(ctx context.Context, requestID, adminNotes string) (*models.RentalRequest, error) {
	id := strings.TrimSpace(requestID)
	if id == "" {
		return nil, models.NewValidationError("requestId is required")
	}
	notes, err := validation.ValidateAdminNotes(adminNotes)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	var result *models.RentalRequest
	transitioned := false
	err = s.rentalRepo.Transaction(ctx, func(txRepo repository.RentalRequestRepository) error {
		request, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		switch request.Status {
		case models.RentalStatusRejected:
			observability.ReservationConflicts.WithLabelValues(observability.ConflictState).Inc()
			return models.NewConflictError("A rejected request cannot be approved")
		case models.RentalStatusApproved:
			result = request
			return nil
		}

		if _, err := s.vehicles.AssertInService(ctx, request.VehicleID); err != nil {
			return err
		}

		period := request.Period()
		if !period.Valid() {
			return models.NewInternalError(fmt.Errorf("stored request %s has an invalid period", request.ID))
		}

		overlap, err := txRepo.FindApprovedOverlap(ctx, request.VehicleID, period, request.ID)
		if err != nil {
			return err
		}
		if overlap != nil {
			observability.ReservationConflicts.WithLabelValues(observability.ConflictOverlap).Inc()
			return models.NewConflictError("Vehicle already has an approved reservation for an overlapping period")
		}

		request.Status = models.RentalStatusApproved
		request.AdminNotes = notes
		if err := txRepo.Save(ctx, request); err != nil {
			return err
		}
		result = request
		transitioned = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		observability.ReservationDecisions.WithLabelValues("approved").Inc()
	}
	return result, nil
}

// Reject transitions a pending request to rejected. Rejecting an already
// rejected request is an idempotent no-op; rejecting an approved one fails
// and must go through a separate cancellation flow instead.
func (s *RentalService) Reject(ctx context.Context, requestID, adminNotes string) (*models.RentalRequest, error) {
	id := strings.TrimSpace(requestID)
	if id == "" {
		return nil, models.NewValidationError("requestId is required")
	}
	notes, err := validation.ValidateAdminNotes(adminNotes)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	var result *models.RentalRequest
	transitioned := false
	err = s.rentalRepo.Transaction(ctx, func(txRepo repository.RentalRequestRepository) error {
		request, err := txRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		switch request.Status {
		case models.RentalStatusRejected:
			result = request
			return nil
		case models.RentalStatusApproved:
			observability.ReservationConflicts.WithLabelValues(observability.ConflictState).Inc()
			return models.NewConflictError("An approved request cannot be rejected; cancel it instead")
		}

		request.Status = models.RentalStatusRejected
		request.AdminNotes = notes
		if err := txRepo.Save(ctx, request); err != nil {
			return err
		}
		result = request
		transitioned = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if transitioned {
		observability.ReservationDecisions.WithLabelValues("rejected").Inc()
	}
	return result, nil
}

// List returns all requests most recent first, optionally filtered by
// status.
func (s *RentalService) List(ctx context.Context, statusFilter string) ([]models.RentalRequest, error) {
	status := models.RentalStatus(strings.TrimSpace(statusFilter))
	if status != "" && !models.ValidRentalStatus(status) {
		return nil, models.NewValidationError("invalid status filter: use pending, approved or rejected")
	}
	return s.rentalRepo.List(ctx, status)
}
