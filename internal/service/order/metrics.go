package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OrdersCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "orders_completed_total",
		Help: "Total number of orders marked as completed",
	},
)
