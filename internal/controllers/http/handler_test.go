package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"fishburger-backend/internal/repository/jsonfile"
	"fishburger-backend/internal/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := jsonfile.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	analyticsSvc := services.NewAnalyticsService(store.Orders, store.Analytics, logger)
	orderSvc := services.NewOrderService(store.Orders, analyticsSvc, nil, logger)
	chefSvc := services.NewChefService()

	handler := NewHandler(orderSvc, analyticsSvc, chefSvc, nil, logger)
	return NewRouter(handler, logger)
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func createOrder(t *testing.T, r *gin.Engine, body map[string]any) map[string]any {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/orders", body)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode(t, w)
	return resp["order"].(map[string]any)
}

func sampleOrderBody() map[string]any {
	return map[string]any{
		"items":    []map[string]any{{"name": "Sardine Burger", "price": 60}},
		"total":    60,
		"customer": "Amina",
		"location": "medina",
	}
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "Fish Burger Backend is running!", resp["message"])
}

func TestCreateOrder(t *testing.T) {
	r := setupRouter(t)

	order := createOrder(t, r, sampleOrderBody())
	assert.NotEmpty(t, order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "medina", order["location"])
	assert.Equal(t, 60.0, order["total"])
}

func TestCreateOrderMissingFields(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/orders", map[string]any{"total": 60})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Contains(t, resp["error"], "Missing required fields")
}

func TestGetOrder(t *testing.T) {
	r := setupRouter(t)
	order := createOrder(t, r, sampleOrderBody())

	w := doJSON(r, http.MethodGet, "/api/orders/"+order["id"].(string), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, order["id"], resp["order"].(map[string]any)["id"])

	w = doJSON(r, http.MethodGet, "/api/orders/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", decode(t, w)["error"])
}

func TestUpdateOrderStatus(t *testing.T) {
	r := setupRouter(t)
	order := createOrder(t, r, sampleOrderBody())
	id := order["id"].(string)

	w := doJSON(r, http.MethodPatch, "/api/orders/"+id+"/status", map[string]any{"status": "preparing"})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	updated := resp["order"].(map[string]any)
	assert.Equal(t, "preparing", updated["status"])
	assert.NotEmpty(t, updated["updatedAt"])
}

func TestUpdateOrderStatusRejectsBogus(t *testing.T) {
	r := setupRouter(t)
	order := createOrder(t, r, sampleOrderBody())
	id := order["id"].(string)

	w := doJSON(r, http.MethodPatch, "/api/orders/"+id+"/status", map[string]any{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Invalid status")

	// The order is unchanged.
	w = doJSON(r, http.MethodGet, "/api/orders/"+id, nil)
	assert.Equal(t, "pending", decode(t, w)["order"].(map[string]any)["status"])
}

func TestUpdateOrderStatusUnknownID(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPatch, "/api/orders/nope/status", map[string]any{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrdersFiltersAndLimit(t *testing.T) {
	r := setupRouter(t)

	locations := []string{"medina", "medina", "rooftop", "casa", "medina"}
	for _, loc := range locations {
		body := sampleOrderBody()
		body["location"] = loc
		createOrder(t, r, body)
	}

	w := doJSON(r, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 5.0, resp["count"])

	w = doJSON(r, http.MethodGet, "/api/orders?location=medina", nil)
	assert.Equal(t, 3.0, decode(t, w)["count"])

	w = doJSON(r, http.MethodGet, "/api/orders?limit=2", nil)
	resp = decode(t, w)
	assert.Equal(t, 2.0, resp["count"])

	w = doJSON(r, http.MethodGet, "/api/orders?status=pending&location=rooftop", nil)
	assert.Equal(t, 1.0, decode(t, w)["count"])
}

func TestDashboards(t *testing.T) {
	r := setupRouter(t)

	first := createOrder(t, r, sampleOrderBody())
	second := createOrder(t, r, sampleOrderBody())

	// Move the second order into the delivery half of the pipeline.
	w := doJSON(r, http.MethodPatch, "/api/orders/"+second["id"].(string)+"/status", map[string]any{"status": "ready"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/dashboard/kitchen", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 1.0, resp["count"])
	kitchenOrders := resp["orders"].([]any)
	assert.Equal(t, first["id"], kitchenOrders[0].(map[string]any)["id"])

	w = doJSON(r, http.MethodGet, "/api/dashboard/delivery", nil)
	resp = decode(t, w)
	assert.Equal(t, 1.0, resp["count"])
	deliveryOrders := resp["orders"].([]any)
	assert.Equal(t, second["id"], deliveryOrders[0].(map[string]any)["id"])
}

func TestRecommend(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/chef/recommend", map[string]any{"craving": "I want something spicy and crispy"})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	rec := resp["recommendation"].(map[string]any)
	assert.Equal(t, "Crispy Fish Burger", rec["dish"])

	w = doJSON(r, http.MethodPost, "/api/chef/recommend", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Craving is required", decode(t, w)["error"])
}

func TestAnalyticsAfterCreate(t *testing.T) {
	r := setupRouter(t)
	createOrder(t, r, sampleOrderBody())

	w := doJSON(r, http.MethodGet, "/api/analytics?period=all", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)

	metrics := resp["metrics"].(map[string]any)
	assert.GreaterOrEqual(t, metrics["totalOrders"].(float64), 1.0)
	assert.GreaterOrEqual(t, metrics["totalRevenue"].(float64), 60.0)
	assert.GreaterOrEqual(t, metrics["activeOrders"].(float64), 1.0)

	charts := resp["charts"].(map[string]any)
	trend := charts["salesTrend"].(map[string]any)
	assert.Len(t, trend["labels"].([]any), 7)
	assert.Len(t, trend["data"].([]any), 7)
	assert.Len(t, charts["locationPerformance"].([]any), 3)
	assert.Len(t, charts["orderStatus"].([]any), 4)

	popular := resp["popularItems"].([]any)
	assert.NotEmpty(t, popular)
	top := popular[0].(map[string]any)
	assert.Equal(t, "Sardine Burger", top["name"])
	_, hasGrowth := top["estimatedGrowthPercent"]
	assert.False(t, hasGrowth)
}

func TestPopularItemsEndpoint(t *testing.T) {
	r := setupRouter(t)

	createOrder(t, r, sampleOrderBody())
	body := sampleOrderBody()
	body["items"] = []map[string]any{
		{"name": "Sardine Burger", "price": 60},
		{"name": "Po Boy Sandwich", "price": 70},
	}
	body["total"] = 130
	createOrder(t, r, body)

	w := doJSON(r, http.MethodGet, "/api/analytics/popular-items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)

	items := resp["popularItems"].([]any)
	assert.Len(t, items, 2)
	top := items[0].(map[string]any)
	assert.Equal(t, "Sardine Burger", top["name"])
	assert.Equal(t, 2.0, top["count"])
}

func TestUnmatchedRoute(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w)["error"])
}
