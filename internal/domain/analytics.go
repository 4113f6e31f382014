package domain

import "time"

// DayKeyFormat is the calendar-day key used by the snapshot's ordersByDay
// map: the order timestamp truncated to its UTC date.
const DayKeyFormat = "2006-01-02"

type ItemStats struct {
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// AnalyticsSnapshot is the running-aggregate document, maintained as a
// fold over order creation events. Replaying every order through Apply
// must reproduce the snapshot exactly.
type AnalyticsSnapshot struct {
	TotalOrders      int64                `json:"totalOrders"`
	TotalRevenue     float64              `json:"totalRevenue"`
	OrdersByLocation map[string]int64     `json:"ordersByLocation"`
	PopularItems     map[string]ItemStats `json:"popularItems"`
	OrdersByDay      map[string]int64     `json:"ordersByDay"`
}

func NewAnalyticsSnapshot() *AnalyticsSnapshot {
	return &AnalyticsSnapshot{
		OrdersByLocation: map[string]int64{},
		PopularItems:     map[string]ItemStats{},
		OrdersByDay:      map[string]int64{},
	}
}

// Apply folds one order creation into the snapshot.
func (s *AnalyticsSnapshot) Apply(order *Order) {
	if s.OrdersByLocation == nil {
		s.OrdersByLocation = map[string]int64{}
	}
	if s.PopularItems == nil {
		s.PopularItems = map[string]ItemStats{}
	}
	if s.OrdersByDay == nil {
		s.OrdersByDay = map[string]int64{}
	}

	s.TotalOrders++
	s.TotalRevenue += order.Total

	if order.Location != "" {
		s.OrdersByLocation[order.Location]++
	}

	for _, item := range order.Items {
		stats := s.PopularItems[item.Name]
		stats.Count++
		stats.TotalRevenue += item.Price
		s.PopularItems[item.Name] = stats
	}

	s.OrdersByDay[order.Timestamp.In(time.UTC).Format(DayKeyFormat)]++
}

// FoldOrders rebuilds a snapshot from scratch by replaying the order list
// in creation order.
func FoldOrders(orders []Order) *AnalyticsSnapshot {
	snap := NewAnalyticsSnapshot()
	for i := range orders {
		snap.Apply(&orders[i])
	}
	return snap
}
