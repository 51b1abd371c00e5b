package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
)

const (
	TopicContentEvents = "content.events"
	TopicMediaEvents   = "media.events"
)

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
	MediaEventsWriter   *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	mediaWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicMediaEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
		MediaEventsWriter:   mediaWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload service.ContentEvent) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal content event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(payload.Resource),
		Value: value,
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish content event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) PublishMediaEvent(ctx context.Context, payload service.MediaEvent) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal media event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(payload.PublicID),
		Value: value,
	}
	if err := c.MediaEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish media event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() error {
	var firstErr error
	for _, w := range []*kafka.Writer{c.ContentEventsWriter, c.MediaEventsWriter} {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
