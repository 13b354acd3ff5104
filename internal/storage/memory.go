package storage

import (
	"context"
	"sync"

	myErr "socialsh-front/internal/types/errors"
)

// MemoryStorage - map в памяти. Используется в тестах и как деградированный
// режим, когда ни Redis, ни Postgres не доступны при старте: магазин
// продолжает работать, корзина просто не переживет перезапуск процесса.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string]string),
	}
}

func (ms *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	value, ok := ms.values[key]
	if !ok {
		return "", myErr.ErrNotFound
	}

	return value, nil
}

func (ms *MemoryStorage) Set(_ context.Context, key string, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.values[key] = value

	return nil
}
