package analytics

import (
	"context"

	"go.uber.org/zap"

	"socialsh-front/internal/kafka"
)

// Веса событий: чем ближе действие к покупке, тем оно ценнее
const (
	weightSearch    = 1
	weightView      = 2
	weightAddToCart = 3
	weightPurchase  = 5
)

type Service struct {
	repo   AnalyticsRepo
	logger *zap.SugaredLogger
}

func NewService(repo AnalyticsRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.UserID == "" {
		return nil // Игнорируем события без пользователя
	}

	var weight int
	switch event.Type {
	case kafka.EventTypeSearch:
		weight = weightSearch
	case kafka.EventTypeView:
		weight = weightView
	case kafka.EventTypeAddToCart:
		weight = weightAddToCart
	case kafka.EventTypePurchase:
		weight = weightPurchase
	default:
		s.logger.Warnf("unknown event type: %s", event.Type)
		return nil
	}

	weights := make(map[string]int)
	for _, productID := range event.ProductIDs {
		weights[productID] += weight
	}

	if len(weights) == 0 {
		return nil
	}

	return s.repo.UpdatePreferences(ctx, event.UserID, weights)
}

func (s *Service) GetTopProducts(ctx context.Context, userID string, limit int) ([]string, error) {
	return s.repo.GetTopProducts(ctx, userID, limit)
}
