// Package retrier общий контракт повторов с экспоненциальной задержкой.
package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type (
	ShouldRetryFunc func(error) bool

	// NotifyFunc вызывается перед каждым повтором: ошибка попытки и пауза до следующей.
	NotifyFunc func(err error, next time.Duration)
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения по числу попыток, только MaxElapsedTime
	MaxRetries uint64

	// nil - повторяются все ошибки
	ShouldRetry ShouldRetryFunc

	OnRetry NotifyFunc
}
