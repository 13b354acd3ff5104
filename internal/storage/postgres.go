package storage

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	myErr "socialsh-front/internal/types/errors"
)

// PostgresStorage - альтернативная реализация Storage поверх таблицы
// kv_store(key TEXT PRIMARY KEY, value TEXT). Выбирается конфигом,
// когда Redis в окружении не поднят.
type PostgresStorage struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresStorage(db *sql.DB, logger *zap.SugaredLogger) *PostgresStorage {
	return &PostgresStorage{
		DB:     db,
		Logger: logger,
	}
}

func (ps *PostgresStorage) Get(ctx context.Context, key string) (string, error) {
	query := `
	SELECT value FROM kv_store
	WHERE key = $1
	`
	var value string
	err := ps.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", myErr.ErrNotFound
		}

		ps.Logger.Errorf("Ошибка при чтении ключа %v: %v", key, err)
		return "", myErr.ErrStorageInternal
	}

	return value, nil
}

func (ps *PostgresStorage) Set(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO kv_store(key, value)
	VALUES ($1, $2) ON CONFLICT (key)
	DO UPDATE SET value = EXCLUDED.value
	`
	_, err := ps.DB.ExecContext(ctx, query, key, value)
	if err != nil {
		ps.Logger.Errorf("Ошибка при записи ключа %v: %v", key, err)
		return myErr.ErrStorageInternal
	}

	return nil
}
