package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
	"lavka/pkg/logger"
)

// Task периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info имя задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker крутит набор задач до отмены контекста.
type Worker struct {
	log   workerLogger
	tasks []Task
	group *errgroup.Group
}

// New прогревает задачи: каждая выполняется один раз синхронно, ошибка или паника
// прогрева возвращается сразу. После этого задачи запускаются по тикеру до отмены ctx.
func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
		group: &errgroup.Group{},
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("init panic: %v", r)
					log.Error("task panic during init",
						logger.NewField("task", task.Info()),
						logger.NewField("recover", r),
						logger.NewField("stack", string(debug.Stack())),
					)
				}
			}()
			log.Info("initializing",
				logger.NewField("task", task.Info()),
			)
			return task.Do(initCtx)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.group.Go(func() error {
			worker.runBackgroundTask(ctx, task)
			return nil
		})
	}

	return worker, nil
}

// Wait блокируется, пока все задачи не остановятся.
func (w *Worker) Wait() {
	_ = w.group.Wait()
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	log := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("TTL", ttl),
		)
		return
	}
	log.Info("starting periodic execution",
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("stopping task (context cancelled)")
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, log, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, log logger.Logger, task Task) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("background task panic",
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		log.Error("background task failed",
			logger.NewField("error", err),
		)
	}
}
