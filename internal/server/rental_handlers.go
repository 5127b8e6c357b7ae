package server

import (
	"motorpool/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createRentalRequest struct {
	UserID    string `json:"user_id"`
	VehicleID string `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Purpose   string `json:"purpose"`
}

func (r createRentalRequest) toInput() service.CreateRequestInput {
	return service.CreateRequestInput{
		UserID:    r.UserID,
		VehicleID: r.VehicleID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Purpose:   r.Purpose,
	}
}

// CreateRentalRequest handles POST /api/rentals.
func (s *Server) CreateRentalRequest(c *fiber.Ctx) error {
	var req createRentalRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	request, err := s.rentalService.CreateRequest(c.UserContext(), req.toInput())
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

type adminCreateRentalRequest struct {
	AdminUserID string `json:"admin_user_id"`
	createRentalRequest
}

// AdminCreateReservation handles POST /api/rentals/admin, letting an
// administrator file a request on behalf of another user.
func (s *Server) AdminCreateReservation(c *fiber.Ctx) error {
	var req adminCreateRentalRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	request, err := s.rentalService.AdminCreateReservation(c.UserContext(), req.AdminUserID, req.toInput())
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

type decisionRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// ApproveRentalRequest handles PATCH /api/rentals/:id/approve.
func (s *Server) ApproveRentalRequest(c *fiber.Ctx) error {
	var req decisionRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	request, err := s.rentalService.Approve(c.UserContext(), c.Params("id"), req.AdminNotes)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(request)
}

// RejectRentalRequest handles PATCH /api/rentals/:id/reject.
func (s *Server) RejectRentalRequest(c *fiber.Ctx) error {
	var req decisionRequest
	if err := parseBody(c, &req); err != nil {
		return handleError(c, err)
	}

	request, err := s.rentalService.Reject(c.UserContext(), c.Params("id"), req.AdminNotes)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(request)
}

// ListRentalRequests handles GET /api/rentals. An optional status query
// parameter filters by lifecycle state.
func (s *Server) ListRentalRequests(c *fiber.Ctx) error {
	requests, err := s.rentalService.List(c.UserContext(), c.Query("status"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(requests)
}
