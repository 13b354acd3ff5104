package kafka

import (
	"context"
	"encoding/json"
	"errors"

	kgo "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Consumer реализует EventConsumer: читает события покупательского
// поведения и скармливает их обработчику по одному.
type Consumer struct {
	Reader ReaderInterface
	Logger *zap.SugaredLogger
}

// NewConsumer принимает список брокеров целиком - тот же, что уходит
// в NewProducer, чтобы у обоих бинарей был один контракт конфига.
func NewConsumer(brokers []string, topic, groupID string, logger *zap.SugaredLogger) EventConsumer {
	return &Consumer{
		Reader: &readerAdapter{
			Reader: kgo.NewReader(kgo.ReaderConfig{
				Brokers:  brokers,
				Topic:    topic,
				GroupID:  groupID,
				MinBytes: 10e3, // 10KB
				MaxBytes: 10e6, // 10MB
			}),
		},
		Logger: logger,
	}
}

// readerAdapter подгоняет *kgo.Reader под ReaderInterface
type readerAdapter struct {
	Reader *kgo.Reader
}

func (r *readerAdapter) ReadMessage(ctx context.Context) (kgo.Message, error) {
	return r.Reader.ReadMessage(ctx)
}

func (r *readerAdapter) Close() error {
	return r.Reader.Close()
}

// Consume крутит цикл чтения до отмены контекста. Битые сообщения и
// ошибки обработчика логируются и пропускаются - поток не останавливается
// из-за одного плохого события.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, Event) error) {
	for {
		msg, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.Logger.Errorf("Failed to read message: %v", err)
			continue
		}

		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.Logger.Errorf("Failed to unmarshal event: %v", err)
			continue
		}

		if err := handler(ctx, event); err != nil {
			c.Logger.Errorf("Failed to process event for profile %s: %v", event.UserID, err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.Reader.Close()
}
