package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer реализует EventProducer. Ключ сообщения - ID профиля покупателя,
// чтобы события одного покупателя попадали в одну партицию и аналитика
// читала их по порядку.
type Producer struct {
	Writer WriterInterface
	Logger *zap.SugaredLogger
}

func NewProducer(brokers []string, topic string, logger *zap.SugaredLogger) *Producer {
	return &Producer{
		Writer: &writerAdapter{
			Writer: &kgo.Writer{
				Addr:     kgo.TCP(brokers...),
				Topic:    topic,
				Balancer: &kgo.Hash{},
			},
		},
		Logger: logger,
	}
}

// writerAdapter подгоняет *kgo.Writer под WriterInterface
type writerAdapter struct {
	Writer *kgo.Writer
}

func (w *writerAdapter) WriteMessages(ctx context.Context, msgs ...kgo.Message) error {
	return w.Writer.WriteMessages(ctx, msgs...)
}

func (w *writerAdapter) Close() error {
	return w.Writer.Close()
}

func (p *Producer) SendEvent(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.Writer.WriteMessages(ctx, kgo.Message{
		Key:   []byte(event.UserID),
		Value: value,
	})
	if err != nil {
		p.Logger.Errorf("Failed to write event for profile %s: %v", event.UserID, err)
		return err
	}

	return nil
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
