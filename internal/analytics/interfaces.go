package analytics

import (
	"context"

	"socialsh-front/internal/kafka"
)

// AnalyticsRepo — интерфейс репозитория для работы с предпочтениями покупателей.
type AnalyticsRepo interface {
	UpdatePreferences(ctx context.Context, userID string, weights map[string]int) error
	GetTopProducts(ctx context.Context, userID string, limit int) ([]string, error)
}

// AnalyticsService — интерфейс сервиса аналитики.
type AnalyticsService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	GetTopProducts(ctx context.Context, userID string, limit int) ([]string, error)
}
