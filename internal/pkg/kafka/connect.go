package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"lavka/pkg/logger"
	"lavka/pkg/retrier"
	"lavka/pkg/retrier/backoff_adapter"
)

// брокеры в docker-compose поднимаются дольше postgres
var connectRetry = retrier.Config{
	InitialInterval: 1 * time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

// waitForBrokers ждет, пока кластер ответит на запрос метаданных.
func waitForBrokers(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) error {
	retryCfg := connectRetry
	retryCfg.OnRetry = func(err error, next time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", next.String()),
		).Warn("kafka is not reachable yet")
	}

	started := time.Now()
	err := backoff_adapter.New(retryCfg).ExecuteWithContext(ctx, func(context.Context) error {
		return fetchMetadata(log, brokers, cfg)
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("waited", time.Since(started).String()),
	).Info("Kafka connection established")
	return nil
}

func fetchMetadata(log logger.Logger, brokers []string, cfg *sarama.Config) error {
	client, err := sarama.NewClient(brokers, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close Kafka metadata client",
				logger.NewField("error", err),
			)
		}
	}()

	return client.RefreshMetadata()
}
