package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Business identifiers are a 3-letter prefix plus the first 8 hex digits
// of a fresh UUID, uppercased: 12 characters total.

func generateID(prefix string) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return prefix + strings.ToUpper(hex[:8])
}

// GenerateOrderID returns a new ORD identifier.
func GenerateOrderID() string {
	return generateID("ORD")
}

// GeneratePackageID returns a new PKG identifier.
func GeneratePackageID() string {
	return generateID("PKG")
}

// GenerateDeliveryID returns a new DEL identifier.
func GenerateDeliveryID() string {
	return generateID("DEL")
}

// GenerateTransactionID returns a new TXN identifier.
func GenerateTransactionID() string {
	return generateID("TXN")
}
