package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"fishburger-backend/internal/domain"
	"fishburger-backend/internal/repository"
)

// Period scopes the on-demand analytics recomputation. Anything else
// behaves like PeriodAll.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

const trendDays = 7

type ReportMetrics struct {
	TotalRevenue float64 `json:"totalRevenue"`
	TotalOrders  int     `json:"totalOrders"`
	AvgOrder     float64 `json:"avgOrder"`
	ActiveOrders int     `json:"activeOrders"`
}

type SalesTrend struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type ReportCharts struct {
	SalesTrend          SalesTrend `json:"salesTrend"`
	LocationPerformance []int      `json:"locationPerformance"`
	OrderStatus         []int      `json:"orderStatus"`
}

// ReportItem is one popular-item row. EstimatedGrowthPercent is a
// placeholder with no data behind it and stays absent.
type ReportItem struct {
	Name                   string  `json:"name"`
	Orders                 int     `json:"orders"`
	Revenue                float64 `json:"revenue"`
	EstimatedGrowthPercent *int    `json:"estimatedGrowthPercent,omitempty"`
}

type AnalyticsReport struct {
	Metrics      ReportMetrics `json:"metrics"`
	Charts       ReportCharts  `json:"charts"`
	PopularItems []ReportItem  `json:"popularItems"`
}

// PopularItem is one row of the snapshot-backed all-time ranking.
type PopularItem struct {
	Name         string  `json:"name"`
	Count        int64   `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type AnalyticsService struct {
	orders    repository.OrderRepository
	snapshots repository.AnalyticsRepository
	log       *slog.Logger
	now       func() time.Time
}

func NewAnalyticsService(orders repository.OrderRepository, snapshots repository.AnalyticsRepository, log *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		orders:    orders,
		snapshots: snapshots,
		log:       log,
		now:       time.Now,
	}
}

// SetClock overrides the reporting clock.
func (s *AnalyticsService) SetClock(now func() time.Time) {
	s.now = now
}

// RecordOrder folds one created order into the persisted snapshot.
func (s *AnalyticsService) RecordOrder(ctx context.Context, order *domain.Order) error {
	_, err := s.snapshots.Update(func(snap *domain.AnalyticsSnapshot) {
		snap.Apply(order)
	})
	return err
}

func (s *AnalyticsService) Snapshot(ctx context.Context) (*domain.AnalyticsSnapshot, error) {
	return s.snapshots.Load()
}

// PopularItems ranks the snapshot's items by all-time order count.
func (s *AnalyticsService) PopularItems(ctx context.Context) ([]PopularItem, error) {
	snap, err := s.snapshots.Load()
	if err != nil {
		return nil, err
	}

	items := make([]PopularItem, 0, len(snap.PopularItems))
	for name, stats := range snap.PopularItems {
		items = append(items, PopularItem{Name: name, Count: stats.Count, TotalRevenue: stats.TotalRevenue})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

// Report recomputes the period-scoped metrics fresh from the order list,
// never from the snapshot.
func (s *AnalyticsService) Report(ctx context.Context, period string) (*AnalyticsReport, error) {
	orders, err := s.orders.FindAll()
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := periodStart(period, now)

	inScope := make([]domain.Order, 0, len(orders))
	for i := range orders {
		if !orders[i].Timestamp.Before(start) {
			inScope = append(inScope, orders[i])
		}
	}

	var totalRevenue float64
	for i := range inScope {
		totalRevenue += inScope[i].Total
	}

	avgOrder := 0.0
	if len(inScope) > 0 {
		avgOrder = totalRevenue / float64(len(inScope))
	}

	// Active orders span the full list regardless of period.
	activeOrders := 0
	for i := range orders {
		if orders[i].Status.Active() {
			activeOrders++
		}
	}

	report := &AnalyticsReport{
		Metrics: ReportMetrics{
			TotalRevenue: totalRevenue,
			TotalOrders:  len(inScope),
			AvgOrder:     avgOrder,
			ActiveOrders: activeOrders,
		},
		Charts: ReportCharts{
			SalesTrend:          salesTrend(inScope, now),
			LocationPerformance: locationPerformance(inScope),
			OrderStatus:         statusBreakdown(orders),
		},
		PopularItems: topItems(inScope, 5),
	}
	return report, nil
}

func periodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.AddDate(0, 0, -trendDays)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		return time.Unix(0, 0)
	}
}

// salesTrend buckets in-scope revenue over the last 7 calendar days,
// keyed by full date internally; the weekday label is derived only for
// the response so same-label days can never collide.
func salesTrend(inScope []domain.Order, now time.Time) SalesTrend {
	byDate := make(map[string]float64, trendDays)
	keys := make([]string, 0, trendDays)
	labels := make([]string, 0, trendDays)

	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format(domain.DayKeyFormat)
		keys = append(keys, key)
		labels = append(labels, day.Format("Mon"))
		byDate[key] = 0
	}

	for i := range inScope {
		key := inScope[i].Timestamp.In(now.Location()).Format(domain.DayKeyFormat)
		if _, ok := byDate[key]; ok {
			byDate[key] += inScope[i].Total
		}
	}

	data := make([]float64, 0, trendDays)
	for _, key := range keys {
		data = append(data, byDate[key])
	}
	return SalesTrend{Labels: labels, Data: data}
}

// locationPerformance counts in-scope orders per known branch, in fixed
// order; unknown locations are excluded from this vector only.
func locationPerformance(inScope []domain.Order) []int {
	counts := make([]int, len(domain.KnownLocations))
	for i := range inScope {
		for j, loc := range domain.KnownLocations {
			if inScope[i].Location == loc {
				counts[j]++
				break
			}
		}
	}
	return counts
}

// statusBreakdown reports completed, preparing, pending and
// out-for-delivery counts over the full list; cancelled and ready are
// deliberately omitted.
func statusBreakdown(orders []domain.Order) []int {
	tracked := []domain.OrderStatus{
		domain.StatusCompleted,
		domain.StatusPreparing,
		domain.StatusPending,
		domain.StatusOutForDelivery,
	}

	counts := make([]int, len(tracked))
	for i := range orders {
		for j, st := range tracked {
			if orders[i].Status == st {
				counts[j]++
				break
			}
		}
	}
	return counts
}

func topItems(inScope []domain.Order, limit int) []ReportItem {
	type agg struct {
		orders  int
		revenue float64
	}
	byName := map[string]agg{}
	for i := range inScope {
		for _, item := range inScope[i].Items {
			a := byName[item.Name]
			a.orders++
			a.revenue += item.Price
			byName[item.Name] = a
		}
	}

	items := make([]ReportItem, 0, len(byName))
	for name, a := range byName {
		items = append(items, ReportItem{Name: name, Orders: a.orders, Revenue: a.revenue})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Orders != items[j].Orders {
			return items[i].Orders > items[j].Orders
		}
		return items[i].Name < items[j].Name
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
