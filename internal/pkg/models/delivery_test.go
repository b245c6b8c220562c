package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatusValid(t *testing.T) {
	assert.True(t, DeliveryStatusAssigned.Valid())
	assert.True(t, DeliveryStatusPickedUp.Valid())
	assert.True(t, DeliveryStatusDelivered.Valid())
	assert.False(t, DeliveryStatus("lost").Valid())
	assert.False(t, DeliveryStatus("").Valid())
}

func TestDeliveryStatusTransitions(t *testing.T) {
	all := []DeliveryStatus{
		DeliveryStatusAssigned,
		DeliveryStatusPickedUp,
		DeliveryStatusDelivered,
	}

	allowed := map[DeliveryStatus]DeliveryStatus{
		DeliveryStatusAssigned: DeliveryStatusPickedUp,
		DeliveryStatusPickedUp: DeliveryStatusDelivered,
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from] == to
			assert.Equalf(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestOrderStatusActive(t *testing.T) {
	assert.True(t, OrderStatusPending.Active())
	assert.True(t, OrderStatusAssigned.Active())
	assert.False(t, OrderStatusInTransit.Active())
	assert.False(t, OrderStatusDelivered.Active())
	assert.False(t, OrderStatusCancelled.Active())
}
