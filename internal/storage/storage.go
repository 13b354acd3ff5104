package storage

import "context"

// Storage - порт key-value хранилища для клиентского состояния (корзины).
// Значение - непрозрачный текстовый блоб, ключ единый и well-known на профиль.
//
//go:generate mockgen -source=storage.go -destination=../mocks/mock_storage.go -package=mocks
type Storage interface {
	// Get возвращает значение по ключу.
	// Если ключа нет - myErr.ErrNotFound
	Get(ctx context.Context, key string) (string, error)
	// Set кладет значение по ключу, перезаписывая прежнее
	Set(ctx context.Context, key string, value string) error
}
