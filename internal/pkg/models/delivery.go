package models

import (
	"time"
)

// DeliveryStatus represents the per-package delivery state.
type DeliveryStatus string

const (
	DeliveryStatusAssigned  DeliveryStatus = "assigned"
	DeliveryStatusPickedUp  DeliveryStatus = "picked_up"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// deliveryTransitions is the forward-only transition table.
var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusAssigned:  {DeliveryStatusPickedUp},
	DeliveryStatusPickedUp:  {DeliveryStatusDelivered},
	DeliveryStatusDelivered: {},
}

// Valid reports whether s is a known delivery status.
func (s DeliveryStatus) Valid() bool {
	_, ok := deliveryTransitions[s]
	return ok
}

// CanTransitionTo reports whether the move from s to next is legal.
func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Delivery tracks one package from assignment to hand-over. RiderID is
// nulled if the driver profile is removed.
type Delivery struct {
	ID          string         `json:"id" db:"id"`
	PackageID   string         `json:"package_id" db:"package_id"`
	Status      DeliveryStatus `json:"delivery_status" db:"delivery_status"`
	Address     string         `json:"address" db:"address"`
	Notes       string         `json:"delivery_notes" db:"delivery_notes"`
	RiderID     *int64         `json:"rider_id,omitempty" db:"rider_id"`
	AssignedAt  time.Time      `json:"assigned_at" db:"assigned_at"`
	PickedUpAt  *time.Time     `json:"picked_up_at,omitempty" db:"picked_up_at"`
	DeliveredAt *time.Time     `json:"delivered_at,omitempty" db:"delivered_at"`
}

// DeliveryInput is one entry in a bulk delivery create request.
type DeliveryInput struct {
	PackageID string `json:"package_id" validate:"required"`
	Address   string `json:"address" validate:"required"`
}

// DeliveryCreateRequest creates deliveries for packages of an assigned
// order.
type DeliveryCreateRequest struct {
	Deliveries []DeliveryInput `json:"deliveries" validate:"required"`
}

// DeliveryUpdateRequest moves a delivery along its lifecycle.
type DeliveryUpdateRequest struct {
	PackageID      string         `json:"package_id" validate:"required"`
	DeliveryStatus DeliveryStatus `json:"delivery_status" validate:"required"`
	DeliveryNotes  string         `json:"delivery_notes"`
}
