package backoff_adapter

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"lavka/pkg/retrier"
)

// Retrier реализация retrier.Retrier поверх cenkalti/backoff.
type Retrier struct {
	config retrier.Config
}

func New(config retrier.Config) *Retrier {
	return &Retrier{config: config}
}

// ExecuteWithContext повторяет fn, пока она возвращает ошибку, которую разрешает ShouldRetry,
// и не исчерпаны MaxRetries и MaxElapsedTime. Возвращается ошибка последней попытки.
func (r *Retrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	return backoff.RetryNotify(r.operation(ctx, fn), backoff.WithContext(r.policy(), ctx), r.notify())
}

func (r *Retrier) policy() backoff.BackOff {
	var b backoff.BackOff = backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.config.InitialInterval),
		backoff.WithMaxInterval(r.config.MaxInterval),
		backoff.WithMaxElapsedTime(r.config.MaxElapsedTime),
		backoff.WithRandomizationFactor(r.config.Randomization),
		backoff.WithMultiplier(r.config.Multiplier),
	)
	if r.config.MaxRetries > 0 {
		b = backoff.WithMaxRetries(b, r.config.MaxRetries)
	}
	return b
}

func (r *Retrier) operation(ctx context.Context, fn func(context.Context) error) backoff.Operation {
	return func() error {
		err := fn(ctx)
		if err != nil && r.config.ShouldRetry != nil && !r.config.ShouldRetry(err) {
			return backoff.Permanent(err)
		}
		return err
	}
}

func (r *Retrier) notify() backoff.Notify {
	if r.config.OnRetry == nil {
		return nil
	}
	return func(err error, next time.Duration) {
		r.config.OnRetry(err, next)
	}
}
