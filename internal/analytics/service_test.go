package analytics

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"socialsh-front/internal/kafka"
)

// fakeRepo нужен для «подмены» AnalyticsRepo в тестах.
type fakeRepo struct {
	called      bool
	lastUserID  string
	lastWeights map[string]int
	returnErr   error
}

func (f *fakeRepo) UpdatePreferences(ctx context.Context, userID string, weights map[string]int) error {
	f.called = true
	f.lastUserID = userID
	// копируем map, чтобы избежать мутирования извне
	f.lastWeights = make(map[string]int)
	for k, v := range weights {
		f.lastWeights[k] = v
	}
	return f.returnErr
}

func (f *fakeRepo) GetTopProducts(ctx context.Context, userID string, limit int) ([]string, error) {
	// не требуется для тестирования ProcessEvent
	return nil, nil
}

func TestService_ProcessEvent_EmptyUserID(t *testing.T) {
	repo := &fakeRepo{}
	logger := zapTestLogger(t)
	service := NewService(repo, logger)

	ctx := context.Background()
	evt := kafka.Event{
		UserID:     "", // пустой user
		Type:       kafka.EventTypeView,
		ProductIDs: []string{"p1"},
	}

	err := service.ProcessEvent(ctx, evt)
	if err != nil {
		t.Errorf("expected no error when userID is empty, got %v", err)
	}
	if repo.called {
		t.Errorf("expected repo.UpdatePreferences NOT to be called when userID is empty")
	}
}

func TestService_ProcessEvent_Weights(t *testing.T) {
	tests := []struct {
		name      string
		eventType kafka.EventType
		expected  map[string]int
	}{
		{
			name:      "поиск",
			eventType: kafka.EventTypeSearch,
			expected:  map[string]int{"p1": 1},
		},
		{
			name:      "просмотр",
			eventType: kafka.EventTypeView,
			expected:  map[string]int{"p1": 2},
		},
		{
			name:      "добавление в корзину",
			eventType: kafka.EventTypeAddToCart,
			expected:  map[string]int{"p1": 3},
		},
		{
			name:      "покупка",
			eventType: kafka.EventTypePurchase,
			expected:  map[string]int{"p1": 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := NewService(repo, zapTestLogger(t))

			evt := kafka.Event{
				UserID:     "u-1",
				Type:       tt.eventType,
				ProductIDs: []string{"p1"},
			}

			if err := service.ProcessEvent(context.Background(), evt); err != nil {
				t.Errorf("ProcessEvent returned unexpected error: %v", err)
			}

			if !repo.called {
				t.Fatalf("expected repo.UpdatePreferences to be called")
			}
			if repo.lastUserID != "u-1" {
				t.Errorf("expected userID u-1, got %s", repo.lastUserID)
			}
			if !reflect.DeepEqual(repo.lastWeights, tt.expected) {
				t.Errorf("expected weights %v, got %v", tt.expected, repo.lastWeights)
			}
		})
	}
}

// Событие покупки с несколькими товарами даёт вес каждому из них
func TestService_ProcessEvent_MultipleProducts(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID:     "u-1",
		Type:       kafka.EventTypePurchase,
		ProductIDs: []string{"p1", "p2", "p1"},
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Errorf("ProcessEvent returned unexpected error: %v", err)
	}

	expected := map[string]int{"p1": 10, "p2": 5}
	if !reflect.DeepEqual(repo.lastWeights, expected) {
		t.Errorf("expected weights %v, got %v", expected, repo.lastWeights)
	}
}

// Поисковое событие без товаров не трогает репозиторий
func TestService_ProcessEvent_NoProducts(t *testing.T) {
	repo := &fakeRepo{}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID: "u-1",
		Type:   kafka.EventTypeSearch,
		Query:  "hoodie",
	}

	if err := service.ProcessEvent(context.Background(), evt); err != nil {
		t.Errorf("ProcessEvent returned unexpected error: %v", err)
	}
	if repo.called {
		t.Errorf("expected repo.UpdatePreferences NOT to be called without products")
	}
}

func TestService_ProcessEvent_RepoError(t *testing.T) {
	repo := &fakeRepo{returnErr: errors.New("db is down")}
	service := NewService(repo, zapTestLogger(t))

	evt := kafka.Event{
		UserID:     "u-1",
		Type:       kafka.EventTypeView,
		ProductIDs: []string{"p1"},
	}

	if err := service.ProcessEvent(context.Background(), evt); err == nil {
		t.Errorf("expected error from ProcessEvent, got nil")
	}
}
