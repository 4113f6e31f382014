package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"fishburger-backend/internal/apperr"
	"fishburger-backend/internal/domain"
	"fishburger-backend/internal/services"
)

const analyticsCacheTTL = 10 * time.Second

var cacheablePeriods = []string{
	services.PeriodToday,
	services.PeriodWeek,
	services.PeriodMonth,
	services.PeriodAll,
}

type Handler struct {
	orders    *services.OrderService
	analytics *services.AnalyticsService
	chef      *services.ChefService
	rdb       *redis.Client
	log       *slog.Logger
}

// NewHandler wires the API layer. rdb may be nil; caching is then skipped.
func NewHandler(orders *services.OrderService, analytics *services.AnalyticsService, chef *services.ChefService, rdb *redis.Client, log *slog.Logger) *Handler {
	return &Handler{orders: orders, analytics: analytics, chef: chef, rdb: rdb, log: log}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/:id", h.GetOrder)
	api.PATCH("/orders/:id/status", h.UpdateOrderStatus)
	api.GET("/dashboard/kitchen", h.KitchenDashboard)
	api.GET("/dashboard/delivery", h.DeliveryDashboard)
	api.POST("/chef/recommend", h.Recommend)
	api.GET("/analytics", h.Analytics)
	api.GET("/analytics/popular-items", h.PopularItems)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Fish Burger Backend is running!",
	})
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.InvalidErr("Missing required fields: items, total, customer"))
		return
	}

	draft := domain.OrderDraft{
		Items:    req.Items,
		Total:    req.Total,
		Customer: req.Customer,
		Location: req.Location,
	}

	order, err := h.orders.Create(c.Request.Context(), draft)
	if err != nil {
		fail(c, err)
		return
	}

	ordersCreated.Inc()
	h.invalidateAnalyticsCache()

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"order":   order,
		"message": "Order created successfully!",
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	filter := services.ListFilter{
		Location: c.Query("location"),
		Status:   c.Query("status"),
	}
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.Limit = n
		}
	}

	orders, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(orders),
		"orders":  orders,
	})
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperr.InvalidErr("Invalid request body"))
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Actor)
	if err != nil {
		fail(c, err)
		return
	}

	statusUpdates.Inc()
	h.invalidateAnalyticsCache()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
		"message": "Order status updated successfully!",
	})
}

func (h *Handler) KitchenDashboard(c *gin.Context) {
	orders, err := h.orders.KitchenOrders(c.Request.Context(), c.Query("location"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

func (h *Handler) DeliveryDashboard(c *gin.Context) {
	orders, err := h.orders.DeliveryOrders(c.Request.Context(), c.Query("location"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

func (h *Handler) Recommend(c *gin.Context) {
	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Craving == "" {
		fail(c, apperr.InvalidErr("Craving is required"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"recommendation": h.chef.Recommend(req.Craving),
	})
}

func (h *Handler) Analytics(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodToday)

	cacheKey := analyticsCacheKey(period)
	if h.rdb != nil && cacheKey != "" {
		if cached, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	report, err := h.analytics.Report(c.Request.Context(), period)
	if err != nil {
		fail(c, err)
		return
	}

	body := gin.H{
		"success":      true,
		"metrics":      report.Metrics,
		"charts":       report.Charts,
		"popularItems": report.PopularItems,
	}

	if h.rdb != nil && cacheKey != "" {
		if data, err := json.Marshal(body); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey, data, analyticsCacheTTL)
		}
	}

	c.JSON(http.StatusOK, body)
}

func (h *Handler) PopularItems(c *gin.Context) {
	items, err := h.analytics.PopularItems(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "popularItems": items})
}

func analyticsCacheKey(period string) string {
	for _, p := range cacheablePeriods {
		if p == period {
			return "analytics:report:" + period
		}
	}
	return ""
}

func (h *Handler) invalidateAnalyticsCache() {
	if h.rdb == nil {
		return
	}
	keys := make([]string, 0, len(cacheablePeriods))
	for _, p := range cacheablePeriods {
		keys = append(keys, analyticsCacheKey(p))
	}
	h.rdb.Del(context.Background(), keys...)
}
