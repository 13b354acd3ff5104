package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	myErr "socialsh-front/internal/types/errors"
)

func setupPostgres(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("ошибка при создании mock db: %s", err)
	}

	logger := zaptest.NewLogger(t).Sugar()
	ps := NewPostgresStorage(db, logger)

	cleanup := func() {
		db.Close()
	}

	return ps, mock, cleanup
}

func TestPostgresStorageGet(t *testing.T) {
	tests := []struct {
		name          string
		mockBehavior  func(mock sqlmock.Sqlmock)
		expectedValue string
		expectedError error
	}{
		{
			name: "успешное чтение",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"value"}).AddRow(`[{"productId":"p1"}]`)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
					WithArgs("socialsh_cart:u1").
					WillReturnRows(rows)
			},
			expectedValue: `[{"productId":"p1"}]`,
			expectedError: nil,
		},
		{
			name: "ключа нет",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
					WithArgs("socialsh_cart:u1").
					WillReturnRows(sqlmock.NewRows([]string{"value"}))
			},
			expectedError: myErr.ErrNotFound,
		},
		{
			name: "ошибка БД",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_store WHERE key = $1")).
					WithArgs("socialsh_cart:u1").
					WillReturnError(errors.New("db failure"))
			},
			expectedError: myErr.ErrStorageInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, mock, cleanup := setupPostgres(t)
			defer cleanup()

			tt.mockBehavior(mock)

			val, err := ps.Get(context.Background(), "socialsh_cart:u1")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedValue, val)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresStorageSet(t *testing.T) {
	tests := []struct {
		name          string
		mockBehavior  func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "успешная запись",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store(key, value) VALUES ($1, $2)")).
					WithArgs("socialsh_cart:u1", "[]").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectedError: nil,
		},
		{
			name: "ошибка БД",
			mockBehavior: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_store(key, value) VALUES ($1, $2)")).
					WithArgs("socialsh_cart:u1", "[]").
					WillReturnError(errors.New("db error"))
			},
			expectedError: myErr.ErrStorageInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, mock, cleanup := setupPostgres(t)
			defer cleanup()

			tt.mockBehavior(mock)

			err := ps.Set(context.Background(), "socialsh_cart:u1", "[]")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError))
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
