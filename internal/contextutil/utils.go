package contextutil

import (
	"context"

	"socialsh-front/internal/middleware"
)

// GetTokenFromContext извлекает access-токен внешнего API из контекста
func GetTokenFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.Access, true
}

// GetProfileIDFromContext извлекает идентификатор профиля корзины из контекста
func GetProfileIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.ProfileID, true
}
