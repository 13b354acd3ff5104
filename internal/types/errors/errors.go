package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	ErrStorageInternal = errors.New("storage internal error")
	ErrNotFound        = errors.New("record not found")
	ErrNoAuth          = errors.New("authorization required")
	ErrForbidden       = errors.New("admin rights required")

	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionIsExpired = errors.New("session is expired")

	ErrBadID      = errors.New("bad id")
	ErrBadSlug    = errors.New("bad slug")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrEmptyQuery = errors.New("search query is empty")

	ErrInvalidJSONPayload = errors.New("invalid JSON payload")

	// ErrUpstream - внешнее API магазина ответило ошибкой
	ErrUpstream = errors.New("shop api error")
	// ErrUnauthorized - внешнее API вернуло 401/403, токен невалидный
	ErrUnauthorized = errors.New("shop api: unauthorized")
)

type ErrorServer struct {
	Message string `json:"message"`
}

func (e *ErrorServer) Error() string {
	return e.Message
}

/*
NewErrorServer
Функция имеет возможность принимать "nil ошибку"
при получении nil наша функция понимает, что нам
просто надо отдать саксесс клиенту
*/
func NewErrorServer(err error) ErrorServer {
	if err == nil {
		return ErrorServer{
			Message: "success",
		}
	}

	return ErrorServer{
		Message: err.Error(),
	}
}

func SendErrorTo(w http.ResponseWriter, err error, statusCode int, logger *zap.SugaredLogger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if errEncode := json.NewEncoder(w).Encode(NewErrorServer(err)); errEncode != nil {
		logger.Error(errEncode)
	}
}
