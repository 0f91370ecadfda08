//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"lavka/internal/handlers/rest/courier_get"
	"lavka/internal/handlers/rest/courier_meta_info_get"
	"lavka/internal/handlers/rest/couriers_assignments_get"
	"lavka/internal/handlers/rest/couriers_get"
	"lavka/internal/handlers/rest/couriers_post"
	"lavka/internal/handlers/rest/order_get"
	"lavka/internal/handlers/rest/orders_complete_post"
	"lavka/internal/handlers/rest/orders_get"
	"lavka/internal/handlers/rest/orders_post"
	"lavka/internal/handlers/tasks/assignment_backlog"
	"lavka/internal/pkg/config"
	"lavka/internal/pkg/factory/courier_meta"
	"lavka/internal/pkg/metrics"
	"lavka/internal/repository"

	assignmentRepo "lavka/internal/repository/assignment"
	courierRepo "lavka/internal/repository/courier"
	orderRepo "lavka/internal/repository/order"
	assignmentService "lavka/internal/service/assignment"
	courierService "lavka/internal/service/courier"
	orderService "lavka/internal/service/order"

	"lavka/pkg/background"
	"lavka/pkg/logger"
	"lavka/pkg/querier"
	"lavka/pkg/retrier"
	"lavka/pkg/retrier/backoff_adapter"
	"lavka/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	BacklogInterval time.Duration
)

type Application struct {
	ServiceCourier    ServiceCourier
	ServiceOrder      ServiceOrder
	ServiceAssignment ServiceAssignment
	BackgroundWorkers *background.Worker
}

type ServiceCourier interface {
	couriers_post.Service
	courier_get.Service
	couriers_get.Service
	courier_meta_info_get.Service
}

type ServiceOrder interface {
	orders_post.Service
	order_get.Service
	orders_get.Service
	orders_complete_post.Service
}

type ServiceAssignment interface {
	couriers_assignments_get.Service
}

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,
	provideSerializableRetrier,

	provideCourierRepository,
	provideOrderRepository,
	provideAssignmentRepository,

	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(courierService.OrderRepository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(assignmentService.Repository), new(*assignmentRepo.Repository)),
	wire.Bind(new(assignmentService.OrderRepository), new(*orderRepo.Repository)),

	wire.Bind(new(courierService.TxManager), new(*tx.Manager)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	wire.Bind(new(assignmentService.TxManager), new(*tx.Manager)),

	wire.Bind(new(orderService.Retrier), new(*backoff_adapter.Retrier)),
	wire.Bind(new(assignmentService.Retrier), new(*backoff_adapter.Retrier)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		provideBacklogInterval,

		provideServiceCourier,
		provideServiceOrder,
		provideServiceAssignment,
		courier_meta.New,

		provideAssignmentBacklogTask,
		metrics.NewSystemCollector,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceAssignment), new(*assignmentService.Assignment)),

		wire.Bind(new(courierService.MetaInfoFactory), new(*courier_meta.MetaInfoFactory)),
		wire.Bind(new(assignment_backlog.Service), new(*assignmentService.Assignment)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-completed)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		provideServiceOrder,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

type SeederApp struct {
	CourierService    *courierService.Courier
	OrderService      *orderService.Order
	AssignmentService *assignmentService.Assignment
}

// InitializeSeederApp для CLI генератора данных (cmd/seeder)
func InitializeSeederApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
) (*SeederApp, error) {
	wire.Build(
		repositorySet,
		provideServiceCourier,
		provideServiceOrder,
		provideServiceAssignment,
		courier_meta.New,

		wire.Bind(new(courierService.MetaInfoFactory), new(*courier_meta.MetaInfoFactory)),

		wire.Struct(new(SeederApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

// provideSerializableRetrier повторяет только конфликты serializable транзакций,
// остальные ошибки сразу уходят вызывающему.
func provideSerializableRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrier.Config{
		InitialInterval: 10 * time.Millisecond,
		MaxInterval:     200 * time.Millisecond,
		MaxElapsedTime:  2 * time.Second,
		Randomization:   0.5,
		Multiplier:      2,
		MaxRetries:      5,
		ShouldRetry:     repository.IsSerializationFailure,
		OnRetry:         repository.CountSerializationRetry,
	})
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAssignmentRepository(querier *querier.Querier) *assignmentRepo.Repository {
	return assignmentRepo.New(querier)
}

func provideServiceCourier(
	repository courierService.Repository,
	orderRepository courierService.OrderRepository,
	metaFactory courierService.MetaInfoFactory,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, orderRepository, metaFactory, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
	retrier orderService.Retrier,
) *orderService.Order {
	return orderService.New(repository, txManager, retrier)
}

func provideServiceAssignment(
	repository assignmentService.Repository,
	orderRepository assignmentService.OrderRepository,
	txManager assignmentService.TxManager,
	retrier assignmentService.Retrier,
) *assignmentService.Assignment {
	return assignmentService.New(repository, orderRepository, txManager, retrier)
}

func provideBacklogInterval(cfg *config.Config) BacklogInterval {
	return BacklogInterval(cfg.Tasks.AssignmentBacklogInterval)
}

func provideAssignmentBacklogTask(
	log logger.Logger,
	service assignment_backlog.Service,
	interval BacklogInterval,
) *assignment_backlog.AssignmentBacklog {
	return assignment_backlog.NewAssignmentBacklog(log, service, time.Duration(interval))
}

func provideTaskList(
	assignmentBacklogTask *assignment_backlog.AssignmentBacklog,
	systemCollector *metrics.SystemCollector,
) []background.Task {
	return []background.Task{
		assignmentBacklogTask,
		systemCollector,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
