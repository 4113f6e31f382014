package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fishburger_orders_created_total",
		Help: "Orders accepted through the API.",
	})
	statusUpdates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fishburger_order_status_updates_total",
		Help: "Successful order status transitions.",
	})
)
