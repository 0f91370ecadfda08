package assignment_backlog

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"lavka/pkg/logger"
)

var BacklogOrders = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "assignment_backlog_orders",
		Help: "Uncompleted orders in today's assignments",
	},
)

// AssignmentBacklog периодически публикует, сколько назначенных на сегодня заказов еще не доставлено.
type AssignmentBacklog struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	now      func() time.Time
}

func NewAssignmentBacklog(log logger.Logger, service Service, interval time.Duration) *AssignmentBacklog {
	return &AssignmentBacklog{
		log:      log,
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

func (a *AssignmentBacklog) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentBacklog) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	year, month, day := a.now().UTC().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	backlog, err := a.service.CountBacklog(ctxWithTimeout, today)
	if err != nil {
		return err
	}

	BacklogOrders.Set(float64(backlog))
	if backlog > 0 {
		a.log.With(
			logger.NewField("date", today.Format(time.DateOnly)),
			logger.NewField("orders", backlog),
		).Info("assignment backlog")
	}
	return nil
}

func (a *AssignmentBacklog) Info() string {
	return "assignment backlog"
}
