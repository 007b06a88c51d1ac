package services_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/policy"
	"logistics/internal/core/domain/model/user"
	"logistics/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancellationFeeCalculator_Calculate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	customerPolicy, _ := policy.NewCancellationPolicy(user.Customer, 10, 60)
	customerTight, _ := policy.NewCancellationPolicy(user.Customer, 25, 15)
	adminPolicy, _ := policy.NewCancellationPolicy(user.Admin, 100, 60)
	calc := services.NewCancellationFeeCalculator(policy.NewTable(customerPolicy, customerTight, adminPolicy))

	orderWithPickupIn := func(t *testing.T, d time.Duration) *order.Order {
		t.Helper()
		customerID := kernel.NewUUID()
		o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
			CustomerID:   customerID,
			AddressID:    kernel.NewUUID(),
			PickupTime:   now.Add(d),
			DeliveryTime: now.Add(d + 2*time.Hour),
			Price:        1000,
		}, customerID, now)
		require.NoError(t, err)
		return o
	}

	tests := []struct {
		name     string
		role     user.Role
		toPickup time.Duration
		want     float64
	}{
		{"outside every window", user.Customer, 2 * time.Hour, 0},
		{"exactly at the window edge", user.Customer, time.Hour, 100},
		{"within the wide window", user.Customer, 30 * time.Minute, 100},
		{"within the tight window", user.Customer, 10 * time.Minute, 250},
		{"admin full fee", user.Admin, 30 * time.Minute, 1000},
		{"role without policy", user.Worker, 10 * time.Minute, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := orderWithPickupIn(t, tt.toPickup)

			fee := calc.Calculate(o, tt.role, now)

			assert.InDelta(t, tt.want, fee, 0.0001)
			assert.GreaterOrEqual(t, fee, 0.0)
			assert.LessOrEqual(t, fee, o.Price())
		})
	}
}
