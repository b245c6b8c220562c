package models

import (
	"time"
)

// PaymentStatus is system-controlled; clients never write it.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Payment methods.
const (
	PaymentMethodCash        = "cash"
	PaymentMethodMobileMoney = "mobile_money"
)

// Payment is the ledger record for one package. Created pending alongside
// the package and marked paid when its delivery completes.
type Payment struct {
	ID                   string        `json:"id" db:"id"`
	PackageID            string        `json:"package_id" db:"package_id"`
	Amount               float64       `json:"amount" db:"amount"`
	Method               string        `json:"payment_method" db:"payment_method"`
	Status               PaymentStatus `json:"payment_status" db:"payment_status"`
	TransactionReference string        `json:"transaction_reference" db:"transaction_reference"`
	PaidAt               *time.Time    `json:"paid_at,omitempty" db:"paid_at"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
}
