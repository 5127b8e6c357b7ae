package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"motorpool/internal/daterange"
)

// RentalStatus defines lifecycle states for rental requests.
type RentalStatus string

const (
	// RentalStatusPending indicates the request is awaiting adjudication.
	RentalStatusPending RentalStatus = "pending"
	// RentalStatusApproved indicates the request holds its date range on
	// the vehicle's calendar.
	RentalStatusApproved RentalStatus = "approved"
	// RentalStatusRejected indicates the request was denied. Rejected is
	// terminal: a rejected request can never be resurrected.
	RentalStatusRejected RentalStatus = "rejected"
)

// ValidRentalStatus reports whether s is a known status value.
func ValidRentalStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusPending, RentalStatusApproved, RentalStatusRejected:
		return true
	}
	return false
}

// RentalRequest is a user-submitted request to rent a vehicle for an
// inclusive span of calendar days. User and vehicle are foreign references,
// not snapshots. StartDate and EndDate are always midnight UTC.
type RentalRequest struct {
	ID         string       `gorm:"primaryKey;size:36" json:"id"`
	UserID     string       `gorm:"size:36;not null;index" json:"user_id"`
	User       *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VehicleID  string       `gorm:"size:36;not null;index:idx_rental_vehicle_period" json:"vehicle_id"`
	Vehicle    *Vehicle     `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	StartDate  time.Time    `gorm:"not null;index:idx_rental_vehicle_period" json:"start_date"`
	EndDate    time.Time    `gorm:"not null;index:idx_rental_vehicle_period" json:"end_date"`
	Purpose    string       `gorm:"size:300;not null" json:"purpose"`
	Status     RentalStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	AdminNotes string       `gorm:"size:500" json:"admin_notes"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (r *RentalRequest) BeforeCreate(_ *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Period returns the request's inclusive day range.
func (r *RentalRequest) Period() daterange.Range {
	return daterange.New(r.StartDate, r.EndDate)
}
