package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"lavka/internal/apperr"
	"lavka/internal/entities"
	"lavka/internal/pkg/config"
	"lavka/internal/pkg/kafka"
	"lavka/internal/pkg/postgres"
	"lavka/pkg/logger"
)

const (
	batchSize = 100
	pageSize  = 500
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeFn, err := openSeeder(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			return postgres.Migrate(cmd.Context(), s.log, s.pool)
		},
	}
}

func couriersCmd() *cobra.Command {
	var (
		count   int
		regions int
	)

	cmd := &cobra.Command{
		Use:   "couriers",
		Short: "Create fake couriers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeFn, err := openSeeder(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			gen := newGenerator(regions)
			bar := progressbar.Default(int64(count), "couriers")
			for done := 0; done < count; {
				batch := make([]entities.CourierCreate, min(batchSize, count-done))
				for i := range batch {
					batch[i] = gen.courier()
				}
				if _, err := s.app.CourierService.CreateCouriers(cmd.Context(), batch); err != nil {
					return fmt.Errorf("create couriers: %w", err)
				}
				done += len(batch)
				_ = bar.Add(len(batch))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "How many couriers to create")
	cmd.Flags().IntVar(&regions, "regions", 5, "Regions are drawn from 1..regions")
	return cmd
}

func ordersCmd() *cobra.Command {
	var (
		count   int
		regions int
	)

	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Create fake orders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, closeFn, err := openSeeder(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			gen := newGenerator(regions)
			bar := progressbar.Default(int64(count), "orders")
			for done := 0; done < count; {
				batch := make([]entities.OrderCreate, min(batchSize, count-done))
				for i := range batch {
					batch[i] = gen.order()
				}
				if _, err := s.app.OrderService.CreateOrders(cmd.Context(), batch); err != nil {
					return fmt.Errorf("create orders: %w", err)
				}
				done += len(batch)
				_ = bar.Add(len(batch))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 50, "How many orders to create")
	cmd.Flags().IntVar(&regions, "regions", 5, "Regions are drawn from 1..regions")
	return cmd
}

func assignCmd() *cobra.Command {
	var (
		rawDate  string
		maxGroup int
	)

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign free uncompleted orders to couriers for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDate(rawDate)
			if err != nil {
				return err
			}

			s, closeFn, err := openSeeder(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			return s.assign(cmd.Context(), date, maxGroup)
		},
	}

	cmd.Flags().StringVar(&rawDate, "date", "", "Assignment date YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&maxGroup, "max-group", 3, "Max orders in one group")
	return cmd
}

func completeCmd() *cobra.Command {
	var (
		rawDate  string
		kafkaCfg config.Kafka
	)

	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Publish completion events for assigned orders of a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseDate(rawDate)
			if err != nil {
				return err
			}

			s, closeFn, err := openSeeder(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			producer, err := kafka.NewProducer(cmd.Context(), s.log, &kafkaCfg)
			if err != nil {
				return fmt.Errorf("kafka producer: %w", err)
			}
			defer func() {
				if err := producer.Close(); err != nil {
					s.log.Error("close producer", logger.NewField("error", err))
				}
			}()

			return s.complete(cmd.Context(), date, producer)
		},
	}

	cmd.Flags().StringVar(&rawDate, "date", "", "Assignment date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&kafkaCfg.Brokers, "kafka-brokers", "localhost:9092", "Comma separated broker list")
	cmd.Flags().StringVar(&kafkaCfg.Topic, "kafka-topic", "order-completed", "Completion events topic")
	cmd.Flags().StringVar(&kafkaCfg.Sarama.Version, "kafka-version", "3.6.0", "Kafka protocol version")
	return cmd
}

func (s *seeder) assign(ctx context.Context, date time.Time, maxGroup int) error {
	couriers, err := collect(ctx, s.app.CourierService.GetCouriers)
	if err != nil {
		return fmt.Errorf("couriers: %w", err)
	}
	if len(couriers) == 0 {
		return errors.New("no couriers, run `seeder couriers` first")
	}

	orders, err := collect(ctx, s.app.OrderService.GetOrders)
	if err != nil {
		return fmt.Errorf("orders: %w", err)
	}

	assigned, err := s.app.AssignmentService.ListAssignments(ctx, date, nil)
	if err != nil {
		return fmt.Errorf("assignments: %w", err)
	}
	busy := make(map[int64]struct{})
	for _, c := range assigned {
		for _, group := range c.Groups {
			for _, o := range group.Orders {
				busy[o.ID] = struct{}{}
			}
		}
	}

	free := orders[:0]
	for _, o := range orders {
		if _, ok := busy[o.ID]; !ok && !o.IsCompleted() {
			free = append(free, o)
		}
	}

	plan := planAssignments(date, couriers, free, maxGroup)
	bar := progressbar.Default(int64(len(plan)), "assignments")
	for _, create := range plan {
		_, err := s.app.AssignmentService.CreateAssignment(ctx, create)
		switch {
		case err == nil:
		case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrNotFound):
			s.log.Warn("assignment skipped",
				logger.NewField("courier_id", create.CourierID),
				logger.NewField("detail", apperr.Detail(err)),
			)
		default:
			return fmt.Errorf("create assignment: %w", err)
		}
		_ = bar.Add(1)
	}
	return nil
}

func (s *seeder) complete(ctx context.Context, date time.Time, producer *kafka.Producer) error {
	assigned, err := s.app.AssignmentService.ListAssignments(ctx, date, nil)
	if err != nil {
		return fmt.Errorf("assignments: %w", err)
	}

	var events []kafka.OrderCompletedEvent
	gen := newGenerator(1)
	for _, c := range assigned {
		for _, group := range c.Groups {
			for _, o := range group.Orders {
				events = append(events, kafka.OrderCompletedEvent{
					OrderID:      o.ID,
					CourierID:    c.CourierID,
					CompleteTime: gen.completeTime(date),
				})
			}
		}
	}

	bar := progressbar.Default(int64(len(events)), "events")
	for _, event := range events {
		if err := producer.PublishOrderCompleted(ctx, event); err != nil {
			return fmt.Errorf("publish order %d: %w", event.OrderID, err)
		}
		_ = bar.Add(1)
	}
	return nil
}

// collect вычитывает все страницы списка.
func collect[T any](ctx context.Context, page func(ctx context.Context, offset, limit int) ([]T, error)) ([]T, error) {
	var all []T
	for offset := 0; ; offset += pageSize {
		items, err := page(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < pageSize {
			return all, nil
		}
	}
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		year, month, day := time.Now().UTC().Date()
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: expected YYYY-MM-DD: %w", raw, err)
	}
	return date, nil
}
