package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateIDs_Format(t *testing.T) {
	cases := []struct {
		name   string
		gen    func() string
		prefix string
	}{
		{"order", GenerateOrderID, "ORD"},
		{"package", GeneratePackageID, "PKG"},
		{"delivery", GenerateDeliveryID, "DEL"},
		{"transaction", GenerateTransactionID, "TXN"},
	}

	pattern := regexp.MustCompile(`^[A-Z]{3}[0-9A-F]{8}$`)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := tc.gen()
			assert.Len(t, id, 12)
			assert.Equal(t, tc.prefix, id[:3])
			assert.Regexp(t, pattern, id)
		})
	}
}

func TestGenerateIDs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateOrderID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
