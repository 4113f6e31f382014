package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleOrders() []Order {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return []Order{
		{
			ID:        "o1",
			Items:     []OrderItem{{Name: "Sardine Burger", Price: 90}},
			Total:     90,
			Customer:  "Amina",
			Location:  "medina",
			Status:    StatusPending,
			Timestamp: base,
		},
		{
			ID:        "o2",
			Items:     []OrderItem{{Name: "Crispy Fish Burger", Price: 95}, {Name: "Sardine Burger", Price: 90}},
			Total:     185,
			Customer:  "Youssef",
			Location:  "rooftop",
			Status:    StatusCompleted,
			Timestamp: base.Add(26 * time.Hour),
		},
		{
			ID:        "o3",
			Items:     []OrderItem{{Name: "Po Boy Sandwich", Price: 70}},
			Total:     70,
			Customer:  "Sara",
			Location:  "",
			Status:    StatusCancelled,
			Timestamp: base.Add(49 * time.Hour),
		},
	}
}

func TestSnapshotFoldEquivalence(t *testing.T) {
	orders := sampleOrders()

	incremental := NewAnalyticsSnapshot()
	for i := range orders {
		incremental.Apply(&orders[i])
	}

	replayed := FoldOrders(orders)

	assert.Equal(t, replayed, incremental)
}

func TestSnapshotApply(t *testing.T) {
	orders := sampleOrders()
	snap := FoldOrders(orders)

	assert.Equal(t, int64(3), snap.TotalOrders)
	assert.InDelta(t, 345.0, snap.TotalRevenue, 1e-9)

	// Empty locations are left out of the per-location map.
	assert.Equal(t, map[string]int64{"medina": 1, "rooftop": 1}, snap.OrdersByLocation)

	assert.Equal(t, ItemStats{Count: 2, TotalRevenue: 180}, snap.PopularItems["Sardine Burger"])
	assert.Equal(t, ItemStats{Count: 1, TotalRevenue: 95}, snap.PopularItems["Crispy Fish Burger"])

	// Day keys are UTC dates.
	assert.Equal(t, map[string]int64{
		"2025-03-10": 1,
		"2025-03-11": 1,
		"2025-03-12": 1,
	}, snap.OrdersByDay)
}

func TestSnapshotApplyInitializesNilMaps(t *testing.T) {
	snap := &AnalyticsSnapshot{}
	orders := sampleOrders()

	assert.NotPanics(t, func() { snap.Apply(&orders[0]) })
	assert.Equal(t, int64(1), snap.TotalOrders)
	assert.Equal(t, int64(1), snap.OrdersByLocation["medina"])
}

func TestSnapshotDayKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	order := Order{
		ID:        "o1",
		Items:     []OrderItem{{Name: "Po Boy Sandwich", Price: 70}},
		Total:     70,
		Customer:  "Sara",
		Location:  "casa",
		Status:    StatusPending,
		Timestamp: time.Date(2025, 3, 11, 2, 0, 0, 0, loc), // 2025-03-10 21:00 UTC
	}

	snap := NewAnalyticsSnapshot()
	snap.Apply(&order)

	assert.Equal(t, int64(1), snap.OrdersByDay["2025-03-10"])
}
