package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"
	"lavka/internal/pkg/config"
	"lavka/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	if cfg.Sarama.Version != "" {
		version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
		if err != nil {
			return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
		}
		saramaConfig.Version = version
	}
	// SyncProducer требует оба флага
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll

	brokers := cfg.BrokerList()
	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	if err := waitForBrokers(ctx, producerLog, brokers, saramaConfig); err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}

	return newProducer(producerLog, producer, cfg.Topic), nil
}

func newProducer(log logger.Logger, producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) PublishOrderCompleted(ctx context.Context, event OrderCompletedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send order %d completed event: %w", event.OrderID, err)
	}

	p.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("order completed event published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
