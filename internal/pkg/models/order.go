package models

import (
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Active reports whether the order still occupies its driver. Only
// pending and assigned orders count against a driver's availability.
func (s OrderStatus) Active() bool {
	return s == OrderStatusPending || s == OrderStatusAssigned
}

// Order is a bulk-delivery order placed by a customer. The driver
// reference is nil until matching or an admin assignment succeeds.
type Order struct {
	ID            string      `json:"id" db:"id"`
	CustomerID    int64       `json:"customer_id" db:"customer_id"`
	DriverID      *int64      `json:"driver_id,omitempty" db:"driver_id"`
	PickupAddress string      `json:"pickup_address" db:"pickup_address"`
	TotalPrice    float64     `json:"total_price" db:"total_price"`
	Status        OrderStatus `json:"order_status" db:"order_status"`
	CancelReason  *string     `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

// Package is one parcel inside an order. Receiver name and phone are
// mandatory at creation.
type Package struct {
	ID            string    `json:"id" db:"id"`
	OrderID       string    `json:"order_id" db:"order_id"`
	Description   string    `json:"description" db:"description"`
	Dimensions    string    `json:"dimensions" db:"dimensions"`
	Value         float64   `json:"value" db:"value"`
	Fragile       bool      `json:"fragile" db:"fragile"`
	ReceiverName  string    `json:"receiver_name" db:"receiver_name"`
	ReceiverPhone string    `json:"receiver_phone" db:"receiver_phone"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// OrderCreateRequest is the payload for placing an order.
type OrderCreateRequest struct {
	PickupAddress string `json:"pickup_address" validate:"required"`
}

// OrderAssignRequest is the admin payload for explicit driver assignment.
type OrderAssignRequest struct {
	OrderID     string `json:"order_id" validate:"required"`
	DriverEmail string `json:"driver_email" validate:"required"`
}

// OrderCancelRequest is the customer payload for cancelling an order.
type OrderCancelRequest struct {
	OrderID      string `json:"order_id" validate:"required"`
	CancelReason string `json:"cancel_reason"`
}

// PackageInput is one package inside a bulk create request.
type PackageInput struct {
	Description   string  `json:"description"`
	Dimensions    string  `json:"dimensions"`
	Value         float64 `json:"value"`
	Fragile       bool    `json:"fragile"`
	ReceiverName  string  `json:"receiver_name" validate:"required"`
	ReceiverPhone string  `json:"receiver_phone" validate:"required"`
	PaymentMethod string  `json:"payment_method"`
	Amount        float64 `json:"amount"`
}

// PackageCreateRequest adds packages to an existing order.
type PackageCreateRequest struct {
	OrderID  string         `json:"order_id" validate:"required"`
	Packages []PackageInput `json:"packages" validate:"required"`
}

// PackageUpdateRequest updates the receiver details of a package.
type PackageUpdateRequest struct {
	PackageID     string `json:"package_id" validate:"required"`
	ReceiverName  string `json:"receiver_name" validate:"required"`
	ReceiverPhone string `json:"receiver_phone" validate:"required"`
}
